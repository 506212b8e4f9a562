// Package session persists the signed-in user between runs of the client.
//
// The whole user record returned by the store is kept under a single key of
// the local key/value table; every page reads it from there. Anything that
// cannot be turned back into a user (missing key, corrupt JSON, unreadable
// database) is reported as common.ErrNoSession so callers only ever have to
// handle "signed in" or "not signed in".
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/dbx"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"github.com/goccy/go-json"
)

// SavedAtKey holds the RFC 3339 time of the last Save.
const SavedAtKey = common.CurrentUserKey + "SavedAt"

type Store struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log, now: time.Now}
}

// Save replaces the persisted session with user. The record is stored as is.
func (s *Store) Save(ctx context.Context, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	savedAt := s.now().UTC().Format(time.RFC3339)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.CurrentUserKey, payload); err != nil {
			return err
		}
		return repo.Set(ctx, SavedAtKey, []byte(savedAt))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.log.Debug(ctx, "session saved", "user", user.Email, "role", user.Role)
	return nil
}

// Current returns the persisted user. Every failure matches
// common.ErrNoSession.
func (s *Store) Current(ctx context.Context) (models.User, error) {
	raw, err := kv.NewSQLiteRepository(s.db).Get(ctx, common.CurrentUserKey)
	if err != nil {
		s.log.Warn(ctx, "session unreadable", "error", err)
		return models.User{}, fmt.Errorf("%w: %v", common.ErrNoSession, err)
	}
	if raw == nil {
		return models.User{}, common.ErrNoSession
	}

	var user *models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn(ctx, "session corrupt", "error", err)
		return models.User{}, fmt.Errorf("%w: %v", common.ErrNoSession, err)
	}
	if user == nil {
		return models.User{}, common.ErrNoSession
	}

	return *user, nil
}

// SavedAt reports when the session was last saved. It is informational;
// sessions never expire.
func (s *Store) SavedAt(ctx context.Context) (time.Time, error) {
	raw, err := kv.NewSQLiteRepository(s.db).Get(ctx, SavedAtKey)
	if err != nil {
		return time.Time{}, err
	}
	if raw == nil {
		return time.Time{}, common.ErrNoSession
	}
	t, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", SavedAtKey, err)
	}
	return t, nil
}

// Clear removes the session. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.CurrentUserKey); err != nil {
			return err
		}
		return repo.Delete(ctx, SavedAtKey)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.log.Debug(ctx, "session cleared")
	return nil
}
