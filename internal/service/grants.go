package service

import (
	"context"
	"fmt"
	"strings"

	"lello/internal/model"
	"lello/internal/repository"

	"github.com/google/uuid"
)

// ShareBoard grants the user registered under email a capability over the
// board.
func (s *Service) ShareBoard(ctx context.Context, boardID uuid.UUID, email string, capability model.Capability) (*model.User, error) {
	if !capability.Valid() {
		return nil, &ValidationError{Field: "capability", Message: fmt.Sprintf("unknown capability %q", capability)}
	}

	var user *model.User
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Boards.GetByID(ctx, boardID); err != nil {
			return err
		}
		var err error
		user, err = tx.Users.FindByEmail(ctx, strings.ToLower(email))
		if err != nil {
			return err
		}
		if user == nil {
			return repository.ErrUserNotFound
		}
		return tx.Grants.Grant(ctx, capability, user.ID, boardID)
	})
	if err != nil {
		return nil, s.failed("share board", err)
	}
	return user, nil
}

// RevokeShare removes every capability userID holds over the board. The
// owner's own grants cannot be revoked.
func (s *Service) RevokeShare(ctx context.Context, boardID, userID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		board, err := tx.Boards.GetByID(ctx, boardID)
		if err != nil {
			return err
		}
		if board.OwnerID == userID {
			return &ValidationError{Field: "user_id", Message: "the board owner keeps their capabilities"}
		}
		return tx.Grants.Revoke(ctx, userID, boardID)
	})
	return s.failed("revoke share", err)
}

// Grants lists the capability grants scoped to the board.
func (s *Service) Grants(ctx context.Context, boardID uuid.UUID) ([]model.CapabilityGrant, error) {
	return s.store.Grants.ForInstance(ctx, boardID)
}
