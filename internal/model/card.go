package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Card struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ListID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title          string          `gorm:"not null"`
	Description    string
	Number         *int
	HoursEstimated decimal.Decimal `gorm:"type:decimal(4,2);not null"`
	HoursDone      decimal.Decimal `gorm:"type:decimal(4,2);not null"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	List      List       `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	Assignees []User     `gorm:"many2many:card_assignees"`
	Labels    []Label    `gorm:"many2many:card_labels"`
	Checklist *Checklist `gorm:"foreignKey:CardID"`
}

func (c *Card) BeforeCreate(*gorm.DB) error {
	assignID(&c.ID)
	return nil
}

type Label struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"not null"`
	Color string    `gorm:"not null"`

	Cards []Card `gorm:"many2many:card_labels"`
}

func (l *Label) BeforeCreate(*gorm.DB) error {
	assignID(&l.ID)
	return nil
}

// Checklist breaks a card down into elements. A card has at most one.
type Checklist struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name   string    `gorm:"not null"`

	Elements []Element `gorm:"foreignKey:ChecklistID"`
}

func (c *Checklist) BeforeCreate(*gorm.DB) error {
	assignID(&c.ID)
	return nil
}

type Element struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChecklistID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text        string    `gorm:"not null"`
	Done        bool      `gorm:"not null"`
	Position    int       `gorm:"not null"`
}

func (e *Element) BeforeCreate(*gorm.DB) error {
	assignID(&e.ID)
	return nil
}
