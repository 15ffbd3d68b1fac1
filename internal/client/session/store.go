// Package session holds the client's authentication session: the durable
// store for the cached user and access token, and the in-memory state shared
// with the presentation layer.
package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dmitrijs2005/volunteam/internal/client/models"
	"github.com/dmitrijs2005/volunteam/internal/client/repositories/cache"
	"github.com/dmitrijs2005/volunteam/internal/dbx"
	"github.com/dmitrijs2005/volunteam/internal/logging"
)

// Store is the fail-soft persistence facade over the cache repository.
//
// Reads report storage failures as "absent" (ok == false) after logging them;
// writes log and swallow failures. Callers therefore never see a storage
// error, but must tolerate an apparent cache miss even right after a write.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo() cache.Repository {
	return cache.NewSQLiteRepository(s.db)
}

// User returns the cached user, or ok == false if it is absent, unreadable,
// or the read failed.
func (s *Store) User(ctx context.Context) (*models.User, bool) {
	data, err := s.repo().Get(ctx, cache.KeyUserInfo)
	if err != nil {
		s.log.Error(ctx, "error reading cached user", "error", err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Error(ctx, "error decoding cached user", "error", err)
		return nil, false
	}
	return &u, true
}

// SetUser stores the user record. Failures are logged and swallowed.
func (s *Store) SetUser(ctx context.Context, u *models.User) {
	data, err := json.Marshal(u)
	if err != nil {
		s.log.Error(ctx, "error encoding user for cache", "error", err)
		return
	}
	if err := s.repo().Set(ctx, cache.KeyUserInfo, data); err != nil {
		s.log.Error(ctx, "error storing user in cache", "error", err)
	}
}

// AccessToken returns the cached bearer token, or ok == false if it is
// absent or the read failed.
func (s *Store) AccessToken(ctx context.Context) (string, bool) {
	data, err := s.repo().Get(ctx, cache.KeyAccessToken)
	if err != nil {
		s.log.Error(ctx, "error reading cached access token", "error", err)
		return "", false
	}
	if data == nil {
		return "", false
	}
	return string(data), true
}

// SetAccessToken stores the bearer token. Failures are logged and swallowed.
func (s *Store) SetAccessToken(ctx context.Context, token string) {
	if err := s.repo().Set(ctx, cache.KeyAccessToken, []byte(token)); err != nil {
		s.log.Error(ctx, "error storing access token in cache", "error", err)
	}
}

// SaveSession persists the user and token in a single transaction, user
// first. The transaction guarantees a restart can never observe a token
// without its user. Failures are logged and swallowed; a lost write only
// costs the user a re-login after restart.
func (s *Store) SaveSession(ctx context.Context, u *models.User, token string) {
	data, err := json.Marshal(u)
	if err != nil {
		s.log.Error(ctx, "error encoding user for cache", "error", err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := cache.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, cache.KeyUserInfo, data); err != nil {
			return err
		}
		return repo.Set(ctx, cache.KeyAccessToken, []byte(token))
	})
	if err != nil {
		s.log.Error(ctx, "error storing session in cache", "error", err)
	}
}

// RemoveUser deletes the cached user record. Failures are logged and swallowed.
func (s *Store) RemoveUser(ctx context.Context) {
	if err := s.repo().Delete(ctx, cache.KeyUserInfo); err != nil {
		s.log.Error(ctx, "error removing user from cache", "error", err)
	}
}

// RemoveAccessToken deletes the cached token. Failures are logged and swallowed.
func (s *Store) RemoveAccessToken(ctx context.Context) {
	if err := s.repo().Delete(ctx, cache.KeyAccessToken); err != nil {
		s.log.Error(ctx, "error removing access token from cache", "error", err)
	}
}

// Clear removes both session records. Failures are logged and swallowed.
func (s *Store) Clear(ctx context.Context) {
	if err := s.repo().Clear(ctx); err != nil {
		s.log.Error(ctx, "error clearing session cache", "error", err)
	}
}
