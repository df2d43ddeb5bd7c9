package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories that share one *gorm.DB, which is either the
// connection pool or an open transaction.
type Store struct {
	db *gorm.DB

	Users         *UserRepository
	Teams         *TeamRepository
	Boards        *BoardRepository
	Calendars     *CalendarRepository
	Lists         *ListRepository
	Cards         *CardRepository
	Labels        *LabelRepository
	Checklists    *ChecklistRepository
	Audits        *AuditRepository
	Notifications *NotificationRepository
	Grants        *GrantRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         NewUserRepository(db),
		Teams:         NewTeamRepository(db),
		Boards:        NewBoardRepository(db),
		Calendars:     NewCalendarRepository(db),
		Lists:         NewListRepository(db),
		Cards:         NewCardRepository(db),
		Labels:        NewLabelRepository(db),
		Checklists:    NewChecklistRepository(db),
		Audits:        NewAuditRepository(db),
		Notifications: NewNotificationRepository(db),
		Grants:        NewGrantRepository(db),
	}
}

// Transaction runs fn against a Store bound to a single transaction. Returning
// an error from fn rolls every write back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
