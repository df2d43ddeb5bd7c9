package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Board struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"not null"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	TeamID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner User  `gorm:"foreignKey:OwnerID"`
	Team  *Team `gorm:"foreignKey:TeamID"`
}

func (b *Board) BeforeCreate(*gorm.DB) error {
	assignID(&b.ID)
	return nil
}

type List struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

func (l *List) BeforeCreate(*gorm.DB) error {
	assignID(&l.ID)
	return nil
}
