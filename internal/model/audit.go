package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectKind tags the entity an audit entry was written for.
type SubjectKind string

const (
	SubjectBoard SubjectKind = "board"
	SubjectList  SubjectKind = "list"
	SubjectCard  SubjectKind = "card"
	SubjectLabel SubjectKind = "label"
)

// Audit is an append-only record of a mutating request. BoardID carries no
// foreign key so the trail outlives the board it describes.
type Audit struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	HTTPMethod  string      `gorm:"column:http_method;not null"`
	URL         string      `gorm:"column:url;not null"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	BoardID     *uuid.UUID  `gorm:"type:uuid;index"`
	SubjectKind SubjectKind `gorm:"type:varchar(16);not null;index:idx_audits_subject"`
	SubjectID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_audits_subject"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
}

func (a *Audit) BeforeCreate(*gorm.DB) error {
	assignID(&a.ID)
	return nil
}

type Notification struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"not null"`
	Description   string
	TransmitterID uuid.UUID `gorm:"type:uuid;not null"`
	ReceiverID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (n *Notification) BeforeCreate(*gorm.DB) error {
	assignID(&n.ID)
	return nil
}
