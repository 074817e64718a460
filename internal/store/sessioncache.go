package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/nrednav/cuid2"

	"github.com/skillswaphq/skillswap/internal/model"
)

// SessionCache maps opaque session handles to member ids for the HTTP
// surface. It lives in an in-memory sqlite database, so sessions vanish
// with the process, same as every other collection here. This is plain
// plumbing, not an authentication token scheme: handles carry no claims
// and are never signed.
type SessionCache struct {
	db *sqlx.DB
}

func NewSessionCache() (*SessionCache, error) {
	db, err := sqlx.Connect("sqlite3", "file:sessioncache.db?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	cache := &SessionCache{db}
	if err := cache.init(); err != nil {
		db.Close()
		return nil, err
	}

	return cache, nil
}

func (s *SessionCache) init() error {
	_, err := s.db.Exec(`create table if not exists session_cache (
		session_id text primary key,
		user_id text not null,
		created_at datetime not null
	)`)
	if err != nil {
		return fmt.Errorf("creating session table: %w", err)
	}
	return nil
}

func (s *SessionCache) Close() error {
	return s.db.Close()
}

// Start issues a fresh handle for the user.
func (s *SessionCache) Start(userID model.UserID) (string, error) {
	sessionID := cuid2.Generate()
	_, err := s.db.Exec(
		"INSERT INTO session_cache (session_id, user_id, created_at) VALUES (?, ?, ?)",
		sessionID, string(userID), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}
	return sessionID, nil
}

// Resolve returns the member id behind a handle.
func (s *SessionCache) Resolve(sessionID string) (model.UserID, error) {
	var userID string
	err := s.db.Get(&userID, "SELECT user_id FROM session_cache WHERE session_id = ?", sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrSessionNotFound
		}
		return "", fmt.Errorf("resolving session: %w", err)
	}
	return model.UserID(userID), nil
}

// End discards a handle. Ending an unknown handle is not an error.
func (s *SessionCache) End(sessionID string) error {
	_, err := s.db.Exec("DELETE FROM session_cache WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
