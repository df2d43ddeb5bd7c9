package handler

import (
	"time"

	"lello/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BoardResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	TeamID    *uuid.UUID `json:"team_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ListResponse struct {
	ID       uuid.UUID `json:"id"`
	BoardID  uuid.UUID `json:"board_id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
}

type CardResponse struct {
	ID             uuid.UUID       `json:"id"`
	ListID         uuid.UUID       `json:"list_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Number         *int            `json:"number"`
	HoursEstimated decimal.Decimal `json:"hours_estimated"`
	HoursDone      decimal.Decimal `json:"hours_done"`
	CreatedBy      uuid.UUID       `json:"created_by"`
	Labels         []LabelResponse `json:"labels"`
	AssignedTo     []UserResponse  `json:"assigned_to"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type LabelResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

type ElementResponse struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Done     bool      `json:"done"`
	Position int       `json:"position"`
}

type ChecklistResponse struct {
	ID       uuid.UUID         `json:"id"`
	CardID   uuid.UUID         `json:"card_id"`
	Name     string            `json:"name"`
	Elements []ElementResponse `json:"elements"`
}

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	CalendarID  uuid.UUID `json:"calendar_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         *string   `json:"url"`
	Date        time.Time `json:"date"`
}

type AuditResponse struct {
	ID         uuid.UUID  `json:"id"`
	HTTPMethod string     `json:"http_method"`
	URL        string     `json:"url"`
	UserID     uuid.UUID  `json:"user_id"`
	BoardID    *uuid.UUID `json:"board_id"`
	Subject    string     `json:"subject"`
	SubjectID  uuid.UUID  `json:"subject_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

type NotificationResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TransmitterID uuid.UUID `json:"transmitter_id"`
	ReceiverID    uuid.UUID `json:"receiver_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type TeamResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Members   []UserResponse `json:"members"`
	CreatedAt time.Time      `json:"created_at"`
}

type GrantResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Capability string    `json:"capability"`
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID.String(), Email: u.Email, Name: u.Name}
}

func newTeamResponse(t *model.Team) TeamResponse {
	return TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		Members:   mapSlice(t.Members, newUserResponse),
		CreatedAt: t.CreatedAt,
	}
}

func newBoardResponse(b *model.Board) BoardResponse {
	return BoardResponse{
		ID:        b.ID,
		Name:      b.Name,
		OwnerID:   b.OwnerID,
		TeamID:    b.TeamID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func newListResponse(l *model.List) ListResponse {
	return ListResponse{ID: l.ID, BoardID: l.BoardID, Name: l.Name, Position: l.Position}
}

func newLabelResponse(l *model.Label) LabelResponse {
	return LabelResponse{ID: l.ID, Name: l.Name, Color: l.Color}
}

func newCardResponse(c *model.Card) CardResponse {
	return CardResponse{
		ID:             c.ID,
		ListID:         c.ListID,
		Title:          c.Title,
		Description:    c.Description,
		Number:         c.Number,
		HoursEstimated: c.HoursEstimated,
		HoursDone:      c.HoursDone,
		CreatedBy:      c.CreatedBy,
		Labels:         mapSlice(c.Labels, newLabelResponse),
		AssignedTo:     mapSlice(c.Assignees, newUserResponse),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func newChecklistResponse(c *model.Checklist) ChecklistResponse {
	return ChecklistResponse{
		ID:       c.ID,
		CardID:   c.CardID,
		Name:     c.Name,
		Elements: mapSlice(c.Elements, newElementResponse),
	}
}

func newElementResponse(e *model.Element) ElementResponse {
	return ElementResponse{ID: e.ID, Text: e.Text, Done: e.Done, Position: e.Position}
}

func newEventResponse(e *model.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		CalendarID:  e.CalendarID,
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Date:        e.Date,
	}
}

func newAuditResponse(a *model.Audit) AuditResponse {
	return AuditResponse{
		ID:         a.ID,
		HTTPMethod: a.HTTPMethod,
		URL:        a.URL,
		UserID:     a.UserID,
		BoardID:    a.BoardID,
		Subject:    string(a.SubjectKind),
		SubjectID:  a.SubjectID,
		CreatedAt:  a.CreatedAt,
	}
}

func newNotificationResponse(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		Title:         n.Title,
		Description:   n.Description,
		TransmitterID: n.TransmitterID,
		ReceiverID:    n.ReceiverID,
		CreatedAt:     n.CreatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
