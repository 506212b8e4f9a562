package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/client/localdb"
	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := localdb.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, logging.Discard()), db
}

func sampleUser() models.User {
	return models.User{
		ID:       "7",
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "secret1",
		Role:     models.RoleUser,
		Phone:    "+44 20 0000 0000",
	}
}

func TestCurrent_Empty_NoSession(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Current(context.Background())
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestSaveThenCurrent_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	u := sampleUser()

	require.NoError(t, s.Save(ctx, u))

	got, err := s.Current(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(u, got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_ReplacesPriorSession(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleUser()))
	admin := models.User{ID: "1", FullName: "Root", Email: "root@example.com", Role: models.RoleAdmin}
	require.NoError(t, s.Save(ctx, admin))

	got, err := s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, admin, got)
}

func TestSave_RecordsSavedAt(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	fixed := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.Save(ctx, sampleUser()))

	at, err := s.SavedAt(ctx)
	require.NoError(t, err)
	require.True(t, fixed.Equal(at))
}

func TestClear_RemovesSession(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleUser()))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Current(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
	_, err = s.SavedAt(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)

	require.NoError(t, s.Clear(ctx), "clearing twice is fine")
}

func TestCurrent_CorruptPayload_NoSession(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	require.NoError(t, kv.NewSQLiteRepository(db).Set(ctx, common.CurrentUserKey, []byte("{not json")))

	_, err := s.Current(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestCurrent_NullPayload_NoSession(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	require.NoError(t, kv.NewSQLiteRepository(db).Set(ctx, common.CurrentUserKey, []byte("null")))

	_, err := s.Current(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestCurrent_NumericIDFromStore(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	raw := []byte(`{"id":3,"fullName":"Bob","email":"bob@example.com","role":"admin"}`)
	require.NoError(t, kv.NewSQLiteRepository(db).Set(ctx, common.CurrentUserKey, raw))

	got, err := s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, models.ID("3"), got.ID)
	require.True(t, got.Role.IsAdmin())
}

func TestCurrent_UnreadableDB_NoSession(t *testing.T) {
	s, db := newStore(t)
	require.NoError(t, db.Close())

	_, err := s.Current(context.Background())
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestSave_ClosedDB_Error(t *testing.T) {
	s, db := newStore(t)
	require.NoError(t, db.Close())

	err := s.Save(context.Background(), sampleUser())
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrNoSession)
}
