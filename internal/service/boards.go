package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lello/internal/model"
	"lello/internal/repository"

	"github.com/google/uuid"
)

type BoardAttrs struct {
	Name   string
	TeamID *uuid.UUID
}

type BoardPatch struct {
	Name   *string
	TeamID *uuid.UUID
}

// CreateBoard stores a board owned by actor together with its calendar and
// grants actor the board capabilities.
func (s *Service) CreateBoard(ctx context.Context, actor uuid.UUID, attrs BoardAttrs) (*model.Board, error) {
	if strings.TrimSpace(attrs.Name) == "" {
		return nil, required("name")
	}

	board := &model.Board{
		Name:    attrs.Name,
		OwnerID: actor,
		TeamID:  attrs.TeamID,
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if attrs.TeamID != nil {
			if _, err := tx.Teams.GetByID(ctx, *attrs.TeamID); err != nil {
				return err
			}
		}
		if err := tx.Boards.Create(ctx, board); err != nil {
			return fmt.Errorf("create board: %w", err)
		}
		if err := tx.Calendars.Create(ctx, &model.Calendar{BoardID: board.ID}); err != nil {
			return fmt.Errorf("create calendar: %w", err)
		}
		for _, c := range model.BoardCapabilities {
			if err := tx.Grants.Grant(ctx, c, actor, board.ID); err != nil {
				return fmt.Errorf("grant %s: %w", c, err)
			}
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  http.MethodPost,
			url:     collectionURL(resourceBoards),
			kind:    model.SubjectBoard,
			subject: board.ID,
			board:   &board.ID,
		})
	})
	if err != nil {
		return nil, s.failed("create board", err)
	}
	return board, nil
}

// UpdateBoard applies the non-nil fields of patch. method is PUT or PATCH and
// is recorded in the audit.
func (s *Service) UpdateBoard(ctx context.Context, actor, id uuid.UUID, patch BoardPatch, method string) (*model.Board, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, required("name")
	}

	var board *model.Board
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		board, err = tx.Boards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			board.Name = *patch.Name
		}
		if patch.TeamID != nil {
			if _, err := tx.Teams.GetByID(ctx, *patch.TeamID); err != nil {
				return err
			}
			board.TeamID = patch.TeamID
		}
		if err := tx.Boards.Update(ctx, board); err != nil {
			return fmt.Errorf("update board: %w", err)
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  method,
			url:     instanceURL(resourceBoards, id),
			kind:    model.SubjectBoard,
			subject: id,
			board:   &id,
		})
	})
	if err != nil {
		return nil, s.failed("update board", err)
	}
	return board, nil
}

// DestroyBoard deletes the board and everything under it. Destroying a board
// that does not exist succeeds without writing an audit.
func (s *Service) DestroyBoard(ctx context.Context, actor, id uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Boards.Delete(ctx, id); err != nil {
			return err
		}
		if err := tx.Grants.RevokeInstance(ctx, id); err != nil {
			return fmt.Errorf("revoke grants: %w", err)
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  http.MethodDelete,
			url:     instanceURL(resourceBoards, id),
			kind:    model.SubjectBoard,
			subject: id,
			board:   &id,
		})
	})
	if errors.Is(err, repository.ErrBoardNotFound) {
		return nil
	}
	return s.failed("destroy board", err)
}

func (s *Service) GetBoard(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	return s.store.Boards.GetByID(ctx, id)
}

// Boards returns the boards owned by actor.
func (s *Service) Boards(ctx context.Context, actor uuid.UUID) ([]model.Board, error) {
	return s.store.Boards.GetOwned(ctx, actor)
}
