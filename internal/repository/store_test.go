package repository_test

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"lello/internal/database"
	"lello/internal/model"
	"lello/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return repository.NewStore(db)
}

func seedUser(t *testing.T, store *repository.Store, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Name: email, HashedPassword: "x"}
	require.NoError(t, store.Users.Create(context.Background(), u))
	return u
}

func TestGrantRepository(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	u := seedUser(t, store, "u@example.com")
	instance := uuid.New()

	require.NoError(t, store.Grants.Grant(ctx, model.CapabilityDeleteBoard, u.ID, instance))
	require.NoError(t, store.Grants.Grant(ctx, model.CapabilityDeleteBoard, u.ID, instance))

	ok, err := store.Grants.Check(ctx, model.CapabilityDeleteBoard, u.ID, instance)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Grants.Check(ctx, model.CapabilityChangeBoard, u.ID, instance)
	require.NoError(t, err)
	assert.False(t, ok)

	grants, err := store.Grants.ForInstance(ctx, instance)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, "u@example.com", grants[0].User.Email)

	require.NoError(t, store.Grants.RevokeInstance(ctx, instance))
	ok, err = store.Grants.Check(ctx, model.CapabilityDeleteBoard, u.ID, instance)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuditRepository_ForBoard(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	u := seedUser(t, store, "u@example.com")

	boardID, otherBoardID := uuid.New(), uuid.New()
	listID, cardID := uuid.New(), uuid.New()

	write := func(kind model.SubjectKind, subject uuid.UUID, board *uuid.UUID) {
		require.NoError(t, store.Audits.Create(ctx, &model.Audit{
			HTTPMethod:  http.MethodPost,
			URL:         "/" + string(kind) + "s/",
			UserID:      u.ID,
			BoardID:     board,
			SubjectKind: kind,
			SubjectID:   subject,
		}))
	}
	write(model.SubjectBoard, boardID, &boardID)
	write(model.SubjectList, listID, nil)
	write(model.SubjectCard, cardID, &boardID)
	write(model.SubjectCard, uuid.New(), &boardID)
	write(model.SubjectBoard, otherBoardID, &otherBoardID)
	write(model.SubjectLabel, uuid.New(), nil)

	audits, err := store.Audits.ForBoard(ctx, boardID, []uuid.UUID{listID}, []uuid.UUID{cardID})
	require.NoError(t, err)
	assert.Len(t, audits, 4)
	for _, a := range audits {
		assert.NotEqual(t, otherBoardID, a.SubjectID)
		assert.NotEqual(t, model.SubjectLabel, a.SubjectKind)
	}

	audits, err = store.Audits.ForBoard(ctx, boardID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, audits, 3)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	u := seedUser(t, store, "u@example.com")
	boom := errors.New("boom")

	var boardID uuid.UUID
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		board := &model.Board{Name: "B", OwnerID: u.ID}
		if err := tx.Boards.Create(ctx, board); err != nil {
			return err
		}
		boardID = board.ID
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Boards.GetByID(ctx, boardID)
	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
}

func TestBoardRepository_DeleteCascades(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	u := seedUser(t, store, "u@example.com")

	board := &model.Board{Name: "B", OwnerID: u.ID}
	require.NoError(t, store.Boards.Create(ctx, board))
	require.NoError(t, store.Calendars.Create(ctx, &model.Calendar{BoardID: board.ID}))
	list := &model.List{BoardID: board.ID, Name: "L", Position: 1}
	require.NoError(t, store.Lists.Create(ctx, list))
	card := &model.Card{ListID: list.ID, Title: "C", CreatedBy: u.ID}
	require.NoError(t, store.Cards.Create(ctx, card))

	require.NoError(t, store.Boards.Delete(ctx, board.ID))

	_, err := store.Lists.GetByID(ctx, list.ID)
	assert.ErrorIs(t, err, repository.ErrListNotFound)
	_, err = store.Cards.GetByID(ctx, card.ID)
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
	_, err = store.Calendars.GetByBoardID(ctx, board.ID)
	assert.ErrorIs(t, err, repository.ErrCalendarNotFound)

	assert.ErrorIs(t, store.Boards.Delete(ctx, board.ID), repository.ErrBoardNotFound)
}
