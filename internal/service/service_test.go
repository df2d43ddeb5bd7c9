package service_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"lello/internal/database"
	"lello/internal/model"
	"lello/internal/repository"
	"lello/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc   *service.Service
	store *repository.Store
	db    *gorm.DB
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "lello.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	store := repository.NewStore(db)
	return &fixture{
		svc:   service.New(store, zap.NewNop()),
		store: store,
		db:    db,
	}
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	t.Helper()
	u := &model.User{Email: name + "@example.com", Name: name, HashedPassword: "x"}
	require.NoError(t, f.store.Users.Create(context.Background(), u))
	return u
}

func (f *fixture) count(t *testing.T, m any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := f.db.Model(m)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestCreateBoard_AuditCalendarAndGrants(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	other := f.user(t, "other")

	board, err := f.svc.CreateBoard(ctx, owner.ID, service.BoardAttrs{Name: "Roadmap"})
	require.NoError(t, err)

	assert.Equal(t, owner.ID, board.OwnerID)
	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, "url = ? AND user_id = ?", "/boards/", owner.ID))
	assert.EqualValues(t, 1, f.count(t, &model.Calendar{}, "board_id = ?", board.ID))

	ok, err := f.store.Grants.Check(ctx, model.CapabilityDeleteBoard, owner.ID, board.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.store.Grants.Check(ctx, model.CapabilityDeleteBoard, other.ID, board.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateBoard_Validation(t *testing.T) {
	f := setup(t)
	owner := f.user(t, "owner")

	_, err := f.svc.CreateBoard(context.Background(), owner.ID, service.BoardAttrs{Name: "  "})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	missingTeam := uuid.New()
	_, err = f.svc.CreateBoard(context.Background(), owner.ID, service.BoardAttrs{Name: "B", TeamID: &missingTeam})
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
	assert.EqualValues(t, 0, f.count(t, &model.Board{}, ""))
}

func TestDestroy_MissingIsNoop(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.user(t, "u")

	assert.NoError(t, f.svc.DestroyBoard(ctx, u.ID, uuid.New()))
	assert.NoError(t, f.svc.DestroyList(ctx, u.ID, uuid.New()))
	assert.NoError(t, f.svc.DestroyCard(ctx, u.ID, uuid.New()))
	assert.NoError(t, f.svc.DestroyLabel(ctx, u.ID, uuid.New()))

	assert.EqualValues(t, 0, f.count(t, &model.Audit{}, ""))
}

func TestCreateList_NotifiesBoardOwner(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	member := f.user(t, "member")

	board, err := f.svc.CreateBoard(ctx, owner.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)

	first, err := f.svc.CreateList(ctx, member.ID, service.ListAttrs{BoardID: board.ID, Name: "Todo"})
	require.NoError(t, err)
	second, err := f.svc.CreateList(ctx, owner.ID, service.ListAttrs{BoardID: board.ID, Name: "Done"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)

	notes, err := f.svc.NotificationsFor(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	for _, n := range notes {
		assert.Equal(t, "New list", n.Title)
		assert.Equal(t, owner.ID, n.ReceiverID)
	}
	assert.EqualValues(t, 0, f.count(t, &model.Notification{}, "receiver_id = ?", member.ID))
}

func TestCreateList_MissingBoard(t *testing.T) {
	f := setup(t)
	u := f.user(t, "u")

	_, err := f.svc.CreateList(context.Background(), u.ID, service.ListAttrs{BoardID: uuid.New(), Name: "L"})
	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
	assert.EqualValues(t, 0, f.count(t, &model.Audit{}, ""))
}

func TestCreateList_SideEffectFailureRollsBack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	board, err := f.svc.CreateBoard(ctx, owner.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, f.db.Migrator().DropTable(&model.Notification{}))

	_, err = f.svc.CreateList(ctx, owner.ID, service.ListAttrs{BoardID: board.ID, Name: "L"})
	require.Error(t, err)

	assert.EqualValues(t, 0, f.count(t, &model.List{}, ""))
	assert.EqualValues(t, 0, f.count(t, &model.Audit{}, "url = ?", "/lists/"))
}

func TestCreateCard_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	board, err := f.svc.CreateBoard(ctx, owner.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)
	list, err := f.svc.CreateList(ctx, owner.ID, service.ListAttrs{BoardID: board.ID, Name: "L"})
	require.NoError(t, err)

	_, err = f.svc.CreateCard(ctx, owner.ID, service.CardAttrs{
		ListID:         list.ID,
		Title:          "Too precise",
		HoursEstimated: decimal.RequireFromString("1.234"),
	})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "hours_estimated", verr.Field)

	_, err = f.svc.CreateCard(ctx, owner.ID, service.CardAttrs{ListID: uuid.New(), Title: "Orphan"})
	assert.ErrorIs(t, err, repository.ErrListNotFound)

	assert.EqualValues(t, 0, f.count(t, &model.Card{}, ""))
	assert.EqualValues(t, 0, f.count(t, &model.Event{}, ""))
}

func TestCreateCard_MissingCalendar(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	board, err := f.svc.CreateBoard(ctx, owner.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)
	list, err := f.svc.CreateList(ctx, owner.ID, service.ListAttrs{BoardID: board.ID, Name: "L"})
	require.NoError(t, err)

	require.NoError(t, f.db.Where("board_id = ?", board.ID).Delete(&model.Calendar{}).Error)

	_, err = f.svc.CreateCard(ctx, owner.ID, service.CardAttrs{ListID: list.ID, Title: "C"})
	assert.ErrorIs(t, err, service.ErrCalendarMissing)
	assert.EqualValues(t, 0, f.count(t, &model.Card{}, ""))
}

func TestBoardScenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u1 := f.user(t, "u1")
	u2 := f.user(t, "u2")

	board, err := f.svc.CreateBoard(ctx, u1.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)
	list, err := f.svc.CreateList(ctx, u2.ID, service.ListAttrs{BoardID: board.ID, Name: "L"})
	require.NoError(t, err)
	card, err := f.svc.CreateCard(ctx, u2.ID, service.CardAttrs{
		ListID:         list.ID,
		Title:          "Fix bug",
		HoursEstimated: decimal.RequireFromString("2.5"),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, "subject_kind = ? AND subject_id = ?", model.SubjectBoard, board.ID))
	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, "url = ? AND subject_id = ? AND user_id = ?", "/lists/", list.ID, u2.ID))
	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, "url = ? AND subject_id = ? AND user_id = ?", "/cards/", card.ID, u2.ID))
	assert.EqualValues(t, 2, f.count(t, &model.Notification{}, "receiver_id = ? AND transmitter_id = ?", u1.ID, u2.ID))

	calendar, err := f.store.Calendars.GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	events, err := f.svc.CalendarEventsOfBoard(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, calendar.ID, events[0].CalendarID)
	assert.Equal(t, "New card: Fix bug", events[0].Title)
	require.NotNil(t, events[0].Description)
	assert.Contains(t, *events[0].Description, "u2")
	assert.Contains(t, *events[0].Description, calendar.ID.String())

	stored, err := f.svc.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.5").Equal(stored.HoursEstimated))
	assert.Nil(t, stored.Number)

	require.NoError(t, f.svc.DestroyBoard(ctx, u1.ID, board.ID))

	_, err = f.svc.GetBoard(ctx, board.ID)
	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
	_, err = f.svc.GetList(ctx, list.ID)
	assert.ErrorIs(t, err, repository.ErrListNotFound)
	_, err = f.svc.GetCard(ctx, card.ID)
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
	assert.EqualValues(t, 0, f.count(t, &model.Event{}, ""))
	assert.EqualValues(t, 0, f.count(t, &model.CapabilityGrant{}, "instance_id = ?", board.ID))
	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, "http_method = ? AND url = ?", http.MethodDelete, "/boards/"+board.ID.String()+"/"))
}

func TestAuditsOfBoard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.user(t, "u")

	b1, err := f.svc.CreateBoard(ctx, u.ID, service.BoardAttrs{Name: "B1"})
	require.NoError(t, err)
	l1, err := f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: b1.ID, Name: "L1"})
	require.NoError(t, err)
	c1, err := f.svc.CreateCard(ctx, u.ID, service.CardAttrs{ListID: l1.ID, Title: "C1"})
	require.NoError(t, err)
	title := "C1 renamed"
	_, err = f.svc.UpdateCard(ctx, u.ID, c1.ID, service.CardPatch{Title: &title}, http.MethodPatch)
	require.NoError(t, err)

	b2, err := f.svc.CreateBoard(ctx, u.ID, service.BoardAttrs{Name: "B2"})
	require.NoError(t, err)
	l2, err := f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: b2.ID, Name: "L2"})
	require.NoError(t, err)
	_, err = f.svc.CreateCard(ctx, u.ID, service.CardAttrs{ListID: l2.ID, Title: "C2"})
	require.NoError(t, err)
	_, err = f.svc.CreateLabel(ctx, u.ID, service.LabelAttrs{Name: "urgent", Color: "red"})
	require.NoError(t, err)

	audits, err := f.svc.AuditsOfBoard(ctx, b1.ID)
	require.NoError(t, err)

	urls := make([]string, 0, len(audits))
	seen := make(map[uuid.UUID]bool)
	for _, a := range audits {
		assert.False(t, seen[a.ID], "audit %s returned twice", a.ID)
		seen[a.ID] = true
		urls = append(urls, a.URL)
	}
	assert.ElementsMatch(t, []string{
		"/boards/",
		"/lists/",
		"/cards/",
		"/cards/" + c1.ID.String() + "/",
	}, urls)

	// deleting the card keeps its audits reachable through the board reference
	require.NoError(t, f.svc.DestroyCard(ctx, u.ID, c1.ID))
	audits, err = f.svc.AuditsOfBoard(ctx, b1.ID)
	require.NoError(t, err)
	assert.Len(t, audits, 5)
}

func TestUpdateCard_MoveAcrossBoardsRejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.user(t, "u")

	b1, err := f.svc.CreateBoard(ctx, u.ID, service.BoardAttrs{Name: "B1"})
	require.NoError(t, err)
	b2, err := f.svc.CreateBoard(ctx, u.ID, service.BoardAttrs{Name: "B2"})
	require.NoError(t, err)
	l1, err := f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: b1.ID, Name: "L1"})
	require.NoError(t, err)
	l2, err := f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: b2.ID, Name: "L2"})
	require.NoError(t, err)
	card, err := f.svc.CreateCard(ctx, u.ID, service.CardAttrs{ListID: l1.ID, Title: "C"})
	require.NoError(t, err)

	_, err = f.svc.UpdateCard(ctx, u.ID, card.ID, service.CardPatch{ListID: &l2.ID}, http.MethodPatch)
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestChecklistOfCard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.user(t, "u")
	board, err := f.svc.CreateBoard(ctx, u.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)
	list, err := f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: board.ID, Name: "L"})
	require.NoError(t, err)
	card, err := f.svc.CreateCard(ctx, u.ID, service.CardAttrs{ListID: list.ID, Title: "C"})
	require.NoError(t, err)

	checklist, err := f.svc.ChecklistOfCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Nil(t, checklist)

	_, err = f.svc.AddElement(ctx, card.ID, "first")
	assert.ErrorIs(t, err, repository.ErrChecklistNotFound)

	_, err = f.svc.SetChecklist(ctx, card.ID, "Steps")
	require.NoError(t, err)
	_, err = f.svc.AddElement(ctx, card.ID, "first")
	require.NoError(t, err)
	_, err = f.svc.AddElement(ctx, card.ID, "second")
	require.NoError(t, err)

	checklist, err = f.svc.ChecklistOfCard(ctx, card.ID)
	require.NoError(t, err)
	require.NotNil(t, checklist)
	require.Len(t, checklist.Elements, 2)
	assert.Equal(t, "first", checklist.Elements[0].Text)
	assert.Equal(t, "second", checklist.Elements[1].Text)

	require.NoError(t, f.svc.DestroyCard(ctx, u.ID, card.ID))
	assert.EqualValues(t, 0, f.count(t, &model.Element{}, ""))
}

func TestLabelsAndAssignees(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.user(t, "u")
	helper := f.user(t, "helper")
	board, err := f.svc.CreateBoard(ctx, u.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)
	list, err := f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: board.ID, Name: "L"})
	require.NoError(t, err)
	card, err := f.svc.CreateCard(ctx, u.ID, service.CardAttrs{ListID: list.ID, Title: "C"})
	require.NoError(t, err)
	label, err := f.svc.CreateLabel(ctx, u.ID, service.LabelAttrs{Name: "bug", Color: "red"})
	require.NoError(t, err)

	require.NoError(t, f.svc.AttachLabel(ctx, u.ID, card.ID, label.ID))
	require.NoError(t, f.svc.AssignUser(ctx, u.ID, card.ID, helper.ID))
	assert.ErrorIs(t, f.svc.AttachLabel(ctx, u.ID, card.ID, uuid.New()), repository.ErrLabelNotFound)

	cards, err := f.svc.CardsOfList(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Len(t, cards[0].Labels, 1)
	assert.Equal(t, "bug", cards[0].Labels[0].Name)
	require.Len(t, cards[0].Assignees, 1)
	assert.Equal(t, helper.ID, cards[0].Assignees[0].ID)

	require.NoError(t, f.svc.DestroyLabel(ctx, u.ID, label.ID))
	card2, err := f.svc.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Empty(t, card2.Labels)

	cardURL := "/cards/" + card.ID.String() + "/"
	assert.EqualValues(t, 2, f.count(t, &model.Audit{}, "url = ?", cardURL))
	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, "url = ?", "/labels/"))
	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, "url = ?", "/labels/"+label.ID.String()+"/"))
}

func TestShareBoard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	friend := f.user(t, "friend")
	board, err := f.svc.CreateBoard(ctx, owner.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)

	_, err = f.svc.ShareBoard(ctx, board.ID, "FRIEND@example.com", model.CapabilityDeleteBoard)
	require.NoError(t, err)

	ok, err := f.store.Grants.Check(ctx, model.CapabilityDeleteBoard, friend.ID, board.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.svc.ShareBoard(ctx, board.ID, "nobody@example.com", model.CapabilityDeleteBoard)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	var verr *service.ValidationError
	_, err = f.svc.ShareBoard(ctx, board.ID, "friend@example.com", model.Capability("own_everything"))
	assert.ErrorAs(t, err, &verr)
	assert.ErrorAs(t, f.svc.RevokeShare(ctx, board.ID, owner.ID), &verr)

	require.NoError(t, f.svc.RevokeShare(ctx, board.ID, friend.ID))
	ok, err = f.store.Grants.Check(ctx, model.CapabilityDeleteBoard, friend.ID, board.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateLabel_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.user(t, "u")

	label, err := f.svc.CreateLabel(ctx, u.ID, service.LabelAttrs{Name: "bug", Color: "red"})
	require.NoError(t, err)

	blank := "   "
	var verr *service.ValidationError
	_, err = f.svc.UpdateLabel(ctx, u.ID, label.ID, service.LabelPatch{Name: &blank}, http.MethodPut)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = f.svc.UpdateLabel(ctx, u.ID, label.ID, service.LabelPatch{Color: &blank}, http.MethodPatch)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "color", verr.Field)

	stored, err := f.svc.GetLabel(ctx, label.ID)
	require.NoError(t, err)
	assert.Equal(t, "bug", stored.Name)
	assert.Equal(t, "red", stored.Color)
	assert.EqualValues(t, 1, f.count(t, &model.Audit{}, ""))
}

func TestTeams(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	_, err := f.svc.CreateTeam(ctx, alice.ID, "")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)

	team, err := f.svc.CreateTeam(ctx, alice.ID, "Platform")
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
	assert.Equal(t, alice.ID, team.Members[0].ID)

	ok, err := f.store.Grants.Check(ctx, model.CapabilityManageTeam, alice.ID, team.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	team, err = f.svc.AddTeamMember(ctx, team.ID, bob.ID)
	require.NoError(t, err)
	assert.Len(t, team.Members, 2)

	team, err = f.svc.AddTeamMember(ctx, team.ID, bob.ID)
	require.NoError(t, err)
	assert.Len(t, team.Members, 2)

	_, err = f.svc.AddTeamMember(ctx, team.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = f.svc.AddTeamMember(ctx, uuid.New(), bob.ID)
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)

	board, err := f.svc.CreateBoard(ctx, alice.ID, service.BoardAttrs{Name: "Infra", TeamID: &team.ID})
	require.NoError(t, err)
	require.NotNil(t, board.TeamID)
	assert.Equal(t, team.ID, *board.TeamID)
}

func TestListsAndCards_All(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.user(t, "u")

	board, err := f.svc.CreateBoard(ctx, u.ID, service.BoardAttrs{Name: "B"})
	require.NoError(t, err)
	list, err := f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: board.ID, Name: "Todo"})
	require.NoError(t, err)
	_, err = f.svc.CreateList(ctx, u.ID, service.ListAttrs{BoardID: board.ID, Name: "Done"})
	require.NoError(t, err)
	_, err = f.svc.CreateCard(ctx, u.ID, service.CardAttrs{ListID: list.ID, Title: "Fix bug"})
	require.NoError(t, err)

	lists, err := f.svc.Lists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "Todo", lists[0].Name)

	cards, err := f.svc.Cards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Fix bug", cards[0].Title)
}
