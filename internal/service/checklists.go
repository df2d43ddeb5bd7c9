package service

import (
	"context"
	"errors"
	"strings"

	"lello/internal/model"
	"lello/internal/repository"

	"github.com/google/uuid"
)

// ChecklistOfCard returns the card's checklist, or nil when the card has
// none. Absence is not an error.
func (s *Service) ChecklistOfCard(ctx context.Context, cardID uuid.UUID) (*model.Checklist, error) {
	checklist, err := s.store.Checklists.GetByCardID(ctx, cardID)
	if errors.Is(err, repository.ErrChecklistNotFound) {
		return nil, nil
	}
	return checklist, err
}

// SetChecklist creates the card's checklist or renames it.
func (s *Service) SetChecklist(ctx context.Context, cardID uuid.UUID, name string) (*model.Checklist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, required("name")
	}

	var checklist *model.Checklist
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Cards.GetByID(ctx, cardID); err != nil {
			return err
		}
		var err error
		checklist, err = tx.Checklists.Upsert(ctx, cardID, name)
		return err
	})
	if err != nil {
		return nil, s.failed("set checklist", err)
	}
	return checklist, nil
}

// AddElement appends an element to the card's checklist.
func (s *Service) AddElement(ctx context.Context, cardID uuid.UUID, text string) (*model.Element, error) {
	if strings.TrimSpace(text) == "" {
		return nil, required("text")
	}

	var element *model.Element
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		checklist, err := tx.Checklists.GetByCardID(ctx, cardID)
		if err != nil {
			return err
		}
		element, err = tx.Checklists.AddElement(ctx, checklist.ID, text)
		return err
	})
	if err != nil {
		return nil, s.failed("add element", err)
	}
	return element, nil
}
