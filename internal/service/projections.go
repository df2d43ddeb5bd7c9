package service

import (
	"context"
	"fmt"

	"lello/internal/model"

	"github.com/google/uuid"
)

// AuditsOfBoard walks board → lists → cards and returns every audit written
// for any of them or naming the board directly.
func (s *Service) AuditsOfBoard(ctx context.Context, boardID uuid.UUID) ([]model.Audit, error) {
	listIDs, err := s.store.Lists.IDsByBoardID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("lists of board: %w", err)
	}
	cardIDs, err := s.store.Cards.IDsByListIDs(ctx, listIDs)
	if err != nil {
		return nil, fmt.Errorf("cards of lists: %w", err)
	}
	return s.store.Audits.ForBoard(ctx, boardID, listIDs, cardIDs)
}

// CalendarEventsOfBoard returns the events of the board's calendar.
func (s *Service) CalendarEventsOfBoard(ctx context.Context, boardID uuid.UUID) ([]model.Event, error) {
	return s.store.Calendars.EventsByBoardID(ctx, boardID)
}

// NotificationsFor returns the notifications addressed to userID.
func (s *Service) NotificationsFor(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.store.Notifications.GetByReceiver(ctx, userID)
}
