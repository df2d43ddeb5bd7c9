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

type LabelAttrs struct {
	Name  string
	Color string
}

type LabelPatch struct {
	Name  *string
	Color *string
}

func (s *Service) CreateLabel(ctx context.Context, actor uuid.UUID, attrs LabelAttrs) (*model.Label, error) {
	if strings.TrimSpace(attrs.Name) == "" {
		return nil, required("name")
	}
	if strings.TrimSpace(attrs.Color) == "" {
		return nil, required("color")
	}

	label := &model.Label{Name: attrs.Name, Color: attrs.Color}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Labels.Create(ctx, label); err != nil {
			return fmt.Errorf("create label: %w", err)
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  http.MethodPost,
			url:     collectionURL(resourceLabels),
			kind:    model.SubjectLabel,
			subject: label.ID,
		})
	})
	if err != nil {
		return nil, s.failed("create label", err)
	}
	return label, nil
}

func (s *Service) UpdateLabel(ctx context.Context, actor, id uuid.UUID, patch LabelPatch, method string) (*model.Label, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, required("name")
	}
	if patch.Color != nil && strings.TrimSpace(*patch.Color) == "" {
		return nil, required("color")
	}

	var label *model.Label
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		label, err = tx.Labels.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			label.Name = *patch.Name
		}
		if patch.Color != nil {
			label.Color = *patch.Color
		}
		if err := tx.Labels.Update(ctx, label); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  method,
			url:     instanceURL(resourceLabels, id),
			kind:    model.SubjectLabel,
			subject: id,
		})
	})
	if err != nil {
		return nil, s.failed("update label", err)
	}
	return label, nil
}

func (s *Service) DestroyLabel(ctx context.Context, actor, id uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Labels.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, auditEntry{
			method:  http.MethodDelete,
			url:     instanceURL(resourceLabels, id),
			kind:    model.SubjectLabel,
			subject: id,
		})
	})
	if errors.Is(err, repository.ErrLabelNotFound) {
		return nil
	}
	return s.failed("destroy label", err)
}

func (s *Service) GetLabel(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	return s.store.Labels.GetByID(ctx, id)
}

func (s *Service) Labels(ctx context.Context) ([]model.Label, error) {
	return s.store.Labels.GetAll(ctx)
}
