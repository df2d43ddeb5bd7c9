package model

import (
	"github.com/google/uuid"
)

// assignID fills in a primary key before insert so the schema does not depend
// on a database-side uuid generator.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every persisted entity in dependency order.
func All() []any {
	return []any{
		&User{},
		&Team{},
		&Board{},
		&Calendar{},
		&Event{},
		&List{},
		&Label{},
		&Card{},
		&Checklist{},
		&Element{},
		&Audit{},
		&Notification{},
		&CapabilityGrant{},
	}
}
