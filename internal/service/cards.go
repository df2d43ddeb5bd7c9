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
	"github.com/shopspring/decimal"
)

const (
	eventTitleMax       = 150
	eventDescriptionMax = 250
)

type CardAttrs struct {
	ListID         uuid.UUID
	Title          string
	Description    string
	Number         *int
	HoursEstimated decimal.Decimal
	HoursDone      decimal.Decimal
}

type CardPatch struct {
	ListID         *uuid.UUID
	Title          *string
	Description    *string
	Number         *int
	HoursEstimated *decimal.Decimal
	HoursDone      *decimal.Decimal
}

func validateHours(field string, d decimal.Decimal) error {
	if err := model.ValidateHours(d); err != nil {
		return &ValidationError{Field: field, Message: err.Error()}
	}
	return nil
}

// CreateCard adds a card to an existing list. Through the list it resolves the
// board and the board's calendar, then writes the audit, a notification to the
// board owner and a calendar event.
func (s *Service) CreateCard(ctx context.Context, actor uuid.UUID, attrs CardAttrs) (*model.Card, error) {
	if strings.TrimSpace(attrs.Title) == "" {
		return nil, required("title")
	}
	if err := validateHours("hours_estimated", attrs.HoursEstimated); err != nil {
		return nil, err
	}
	if err := validateHours("hours_done", attrs.HoursDone); err != nil {
		return nil, err
	}

	card := &model.Card{
		ListID:         attrs.ListID,
		Title:          attrs.Title,
		Description:    attrs.Description,
		Number:         attrs.Number,
		HoursEstimated: attrs.HoursEstimated,
		HoursDone:      attrs.HoursDone,
		CreatedBy:      actor,
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		list, err := tx.Lists.GetByID(ctx, attrs.ListID)
		if err != nil {
			return err
		}
		board, err := tx.Boards.GetByID(ctx, list.BoardID)
		if err != nil {
			return err
		}
		calendar, err := tx.Calendars.GetByBoardID(ctx, board.ID)
		if errors.Is(err, repository.ErrCalendarNotFound) {
			return ErrCalendarMissing
		}
		if err != nil {
			return err
		}

		actorName := actor.String()
		if user, err := tx.Users.GetByID(ctx, actor); err == nil {
			actorName = user.Name
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		if err := tx.Cards.Create(ctx, card); err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		if err := s.audit(ctx, tx, actor, auditEntry{
			method:  http.MethodPost,
			url:     collectionURL(resourceCards),
			kind:    model.SubjectCard,
			subject: card.ID,
			board:   &board.ID,
		}); err != nil {
			return err
		}
		if err := s.notify(ctx, tx, actor, board.OwnerID,
			"New card",
			fmt.Sprintf("Card \"%s\" was created in list \"%s\"", card.Title, list.Name),
		); err != nil {
			return err
		}

		description := fmt.Sprintf("Card created by: %s, list %s, board %s, calendar %s",
			actorName, list.ID, board.ID, calendar.ID)
		event := &model.Event{
			CalendarID:  calendar.ID,
			Title:       truncate("New card: "+card.Title, eventTitleMax),
			Description: ptr(truncate(description, eventDescriptionMax)),
			Date:        s.now(),
		}
		if err := tx.Calendars.CreateEvent(ctx, event); err != nil {
			return fmt.Errorf("write event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.failed("create card", err)
	}
	return card, nil
}

// UpdateCard applies the non-nil fields of patch. A card may only move to a
// list on the same board.
func (s *Service) UpdateCard(ctx context.Context, actor, id uuid.UUID, patch CardPatch, method string) (*model.Card, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, required("title")
	}
	if patch.HoursEstimated != nil {
		if err := validateHours("hours_estimated", *patch.HoursEstimated); err != nil {
			return nil, err
		}
	}
	if patch.HoursDone != nil {
		if err := validateHours("hours_done", *patch.HoursDone); err != nil {
			return nil, err
		}
	}

	var card *model.Card
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		card, err = tx.Cards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		list, err := tx.Lists.GetByID(ctx, card.ListID)
		if err != nil {
			return err
		}
		if patch.ListID != nil && *patch.ListID != card.ListID {
			target, err := tx.Lists.GetByID(ctx, *patch.ListID)
			if err != nil {
				return err
			}
			if target.BoardID != list.BoardID {
				return &ValidationError{Field: "list", Message: "cannot move card to a list on another board"}
			}
			card.ListID = target.ID
		}
		if patch.Title != nil {
			card.Title = *patch.Title
		}
		if patch.Description != nil {
			card.Description = *patch.Description
		}
		if patch.Number != nil {
			card.Number = patch.Number
		}
		if patch.HoursEstimated != nil {
			card.HoursEstimated = *patch.HoursEstimated
		}
		if patch.HoursDone != nil {
			card.HoursDone = *patch.HoursDone
		}
		if err := tx.Cards.Update(ctx, card); err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return s.audit(ctx, tx, actor, cardAudit(method, card.ID, list.BoardID))
	})
	if err != nil {
		return nil, s.failed("update card", err)
	}
	return card, nil
}

// DestroyCard deletes the card. Destroying a missing card succeeds without an
// audit.
func (s *Service) DestroyCard(ctx context.Context, actor, id uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		card, err := tx.Cards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		list, err := tx.Lists.GetByID(ctx, card.ListID)
		if err != nil {
			return err
		}
		if err := tx.Cards.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, cardAudit(http.MethodDelete, id, list.BoardID))
	})
	if errors.Is(err, repository.ErrCardNotFound) {
		return nil
	}
	return s.failed("destroy card", err)
}

// AttachLabel puts an existing label on a card.
func (s *Service) AttachLabel(ctx context.Context, actor, cardID, labelID uuid.UUID) error {
	return s.changeCardLinks(ctx, "attach label", actor, cardID, func(tx *repository.Store) error {
		if _, err := tx.Labels.GetByID(ctx, labelID); err != nil {
			return err
		}
		return tx.Cards.AddLabel(ctx, cardID, labelID)
	})
}

func (s *Service) DetachLabel(ctx context.Context, actor, cardID, labelID uuid.UUID) error {
	return s.changeCardLinks(ctx, "detach label", actor, cardID, func(tx *repository.Store) error {
		return tx.Cards.RemoveLabel(ctx, cardID, labelID)
	})
}

// AssignUser adds an existing user to the card's assignees.
func (s *Service) AssignUser(ctx context.Context, actor, cardID, userID uuid.UUID) error {
	return s.changeCardLinks(ctx, "assign user", actor, cardID, func(tx *repository.Store) error {
		if _, err := tx.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		return tx.Cards.AssignUser(ctx, cardID, userID)
	})
}

func (s *Service) UnassignUser(ctx context.Context, actor, cardID, userID uuid.UUID) error {
	return s.changeCardLinks(ctx, "unassign user", actor, cardID, func(tx *repository.Store) error {
		return tx.Cards.UnassignUser(ctx, cardID, userID)
	})
}

// changeCardLinks edits a card relation. The card itself counts as updated.
func (s *Service) changeCardLinks(ctx context.Context, op string, actor, cardID uuid.UUID, change func(tx *repository.Store) error) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		card, err := tx.Cards.GetByID(ctx, cardID)
		if err != nil {
			return err
		}
		list, err := tx.Lists.GetByID(ctx, card.ListID)
		if err != nil {
			return err
		}
		if err := change(tx); err != nil {
			return err
		}
		return s.audit(ctx, tx, actor, cardAudit(http.MethodPut, cardID, list.BoardID))
	})
	return s.failed(op, err)
}

func cardAudit(method string, cardID, boardID uuid.UUID) auditEntry {
	return auditEntry{
		method:  method,
		url:     instanceURL(resourceCards, cardID),
		kind:    model.SubjectCard,
		subject: cardID,
		board:   &boardID,
	}
}

func (s *Service) GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	return s.store.Cards.GetByID(ctx, id)
}

func (s *Service) Cards(ctx context.Context) ([]model.Card, error) {
	return s.store.Cards.GetAll(ctx)
}

// CardsOfList returns the list's cards with labels and assignees.
func (s *Service) CardsOfList(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	return s.store.Cards.GetByListID(ctx, listID)
}
