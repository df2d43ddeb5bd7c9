package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Calendar belongs to exactly one board and collects the events derived from
// activity on it.
type Calendar struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

func (c *Calendar) BeforeCreate(*gorm.DB) error {
	assignID(&c.ID)
	return nil
}

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CalendarID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"size:150;not null"`
	Description *string   `gorm:"size:250"`
	URL         *string
	Date        time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Calendar Calendar `gorm:"foreignKey:CalendarID;constraint:OnDelete:CASCADE"`
}

func (e *Event) BeforeCreate(*gorm.DB) error {
	assignID(&e.ID)
	return nil
}
