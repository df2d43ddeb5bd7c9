package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every entity specific not-found error so callers
// can match either.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrTeamNotFound      = fmt.Errorf("team %w", ErrNotFound)
	ErrBoardNotFound     = fmt.Errorf("board %w", ErrNotFound)
	ErrCalendarNotFound  = fmt.Errorf("calendar %w", ErrNotFound)
	ErrListNotFound      = fmt.Errorf("list %w", ErrNotFound)
	ErrCardNotFound      = fmt.Errorf("card %w", ErrNotFound)
	ErrLabelNotFound     = fmt.Errorf("label %w", ErrNotFound)
	ErrChecklistNotFound = fmt.Errorf("checklist %w", ErrNotFound)
)
