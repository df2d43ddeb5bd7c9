package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Capability names a right over one specific instance.
type Capability string

const (
	CapabilityChangeBoard Capability = "change_board"
	CapabilityDeleteBoard Capability = "delete_board"
	CapabilityShareBoard  Capability = "share_board"

	// CapabilityManageTeam lets a user add members to a team. It is granted to
	// the team's creator and is never shared through a board.
	CapabilityManageTeam Capability = "manage_team"
)

// BoardCapabilities are granted to whoever creates a board.
var BoardCapabilities = []Capability{
	CapabilityChangeBoard,
	CapabilityDeleteBoard,
	CapabilityShareBoard,
}

// Valid reports whether c can be shared over a board.
func (c Capability) Valid() bool {
	switch c {
	case CapabilityChangeBoard, CapabilityDeleteBoard, CapabilityShareBoard:
		return true
	}
	return false
}

// CapabilityGrant records that UserID holds Capability over InstanceID.
type CapabilityGrant struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Capability Capability `gorm:"type:varchar(32);not null;uniqueIndex:idx_capability_grants_unique"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_capability_grants_unique;index"`
	InstanceID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_capability_grants_unique;index"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}

func (g *CapabilityGrant) BeforeCreate(*gorm.DB) error {
	assignID(&g.ID)
	return nil
}
