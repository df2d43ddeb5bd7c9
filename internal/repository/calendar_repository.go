package repository

import (
	"context"
	"errors"

	"lello/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) Create(ctx context.Context, calendar *model.Calendar) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(calendar).Error
}

func (r *CalendarRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) (*model.Calendar, error) {
	var calendar model.Calendar
	err := r.db.WithContext(ctx).First(&calendar, "board_id = ?", boardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, err
	}
	return &calendar, nil
}

func (r *CalendarRepository) CreateEvent(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(event).Error
}

// EventsByBoardID returns the events of the board's calendar ordered by date.
func (r *CalendarRepository) EventsByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Joins("JOIN calendars ON calendars.id = events.calendar_id").
		Where("calendars.board_id = ?", boardID).
		Order("events.date").
		Find(&events).Error
	return events, err
}
