// Package service runs every mutation of boards, lists, cards and labels
// together with the audit, notification and calendar writes it implies, and
// serves the read projections over them.
//
// Each mutation is one transaction: the primary write happens first because
// the side effects reference its generated id, and a failing side effect rolls
// the primary write back.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"lello/internal/model"
	"lello/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCalendarMissing means a board exists without the calendar that is
// created alongside every board.
var ErrCalendarMissing = errors.New("integrity error: board has no calendar")

// ValidationError reports a request field that failed a constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field string) error {
	return &ValidationError{Field: field, Message: "this field is required"}
}

const (
	resourceBoards = "boards"
	resourceLists  = "lists"
	resourceCards  = "cards"
	resourceLabels = "labels"
)

// collectionURL and instanceURL build the audit url strings. Their exact
// shape is part of the stored data.
func collectionURL(resource string) string {
	return "/" + resource + "/"
}

func instanceURL(resource string, id uuid.UUID) string {
	return "/" + resource + "/" + id.String() + "/"
}

type Service struct {
	store *repository.Store
	log   *zap.Logger
	now   func() time.Time
}

func New(store *repository.Store, log *zap.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

type auditEntry struct {
	method  string
	url     string
	kind    model.SubjectKind
	subject uuid.UUID
	board   *uuid.UUID
}

func (s *Service) audit(ctx context.Context, tx *repository.Store, actor uuid.UUID, e auditEntry) error {
	err := tx.Audits.Create(ctx, &model.Audit{
		HTTPMethod:  e.method,
		URL:         e.url,
		UserID:      actor,
		BoardID:     e.board,
		SubjectKind: e.kind,
		SubjectID:   e.subject,
	})
	if err != nil {
		return fmt.Errorf("write audit %s %s: %w", e.method, e.url, err)
	}
	return nil
}

func (s *Service) notify(ctx context.Context, tx *repository.Store, from, to uuid.UUID, title, description string) error {
	err := tx.Notifications.Create(ctx, &model.Notification{
		Title:         title,
		Description:   description,
		TransmitterID: from,
		ReceiverID:    to,
	})
	if err != nil {
		return fmt.Errorf("write notification %q: %w", title, err)
	}
	return nil
}

// failed logs errors that are not the caller's fault and passes err through.
func (s *Service) failed(op string, err error) error {
	var verr *ValidationError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound), errors.As(err, &verr):
	default:
		s.log.Error("Mutation rolled back", zap.String("op", op), zap.Error(err))
	}
	return err
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func ptr[T any](v T) *T {
	return &v
}
