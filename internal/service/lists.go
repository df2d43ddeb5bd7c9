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

type ListAttrs struct {
	BoardID  uuid.UUID
	Name     string
	Position int
}

type ListPatch struct {
	Name     *string
	Position *int
}

// CreateList adds a list to an existing board and notifies the board owner.
// A missing board is reported as repository.ErrBoardNotFound.
func (s *Service) CreateList(ctx context.Context, actor uuid.UUID, attrs ListAttrs) (*model.List, error) {
	if strings.TrimSpace(attrs.Name) == "" {
		return nil, required("name")
	}

	list := &model.List{
		BoardID:  attrs.BoardID,
		Name:     attrs.Name,
		Position: attrs.Position,
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		board, err := tx.Boards.GetByID(ctx, attrs.BoardID)
		if err != nil {
			return err
		}
		if list.Position == 0 {
			maxPosition, err := tx.Lists.GetMaxPosition(ctx, board.ID)
			if err != nil {
				return fmt.Errorf("list position: %w", err)
			}
			list.Position = maxPosition + 1
		}
		if err := tx.Lists.Create(ctx, list); err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		if err := s.audit(ctx, tx, actor, auditEntry{
			method:  http.MethodPost,
			url:     collectionURL(resourceLists),
			kind:    model.SubjectList,
			subject: list.ID,
			board:   &board.ID,
		}); err != nil {
			return err
		}
		return s.notify(ctx, tx, actor, board.OwnerID,
			"New list",
			fmt.Sprintf("List \"%s\" was created on board \"%s\"", list.Name, board.Name),
		)
	})
	if err != nil {
		return nil, s.failed("create list", err)
	}
	return list, nil
}

func (s *Service) UpdateList(ctx context.Context, actor, id uuid.UUID, patch ListPatch, method string) (*model.List, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, required("name")
	}

	var list *model.List
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		list, err = tx.Lists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			list.Name = *patch.Name
		}
		if patch.Position != nil {
			list.Position = *patch.Position
		}
		if err := tx.Lists.Update(ctx, list); err != nil {
			return fmt.Errorf("update list: %w", err)
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  method,
			url:     instanceURL(resourceLists, id),
			kind:    model.SubjectList,
			subject: id,
			board:   &list.BoardID,
		})
	})
	if err != nil {
		return nil, s.failed("update list", err)
	}
	return list, nil
}

// DestroyList deletes the list and its cards. The owning board id is read
// before the delete so the audit can still reference it.
func (s *Service) DestroyList(ctx context.Context, actor, id uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		list, err := tx.Lists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		boardID := list.BoardID
		if err := tx.Lists.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  http.MethodDelete,
			url:     instanceURL(resourceLists, id),
			kind:    model.SubjectList,
			subject: id,
			board:   &boardID,
		})
	})
	if errors.Is(err, repository.ErrListNotFound) {
		return nil
	}
	return s.failed("destroy list", err)
}

func (s *Service) GetList(ctx context.Context, id uuid.UUID) (*model.List, error) {
	return s.store.Lists.GetByID(ctx, id)
}

func (s *Service) Lists(ctx context.Context) ([]model.List, error) {
	return s.store.Lists.GetAll(ctx)
}

// ListsOfBoard returns the board's lists ordered by position.
func (s *Service) ListsOfBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	return s.store.Lists.GetByBoardID(ctx, boardID)
}
