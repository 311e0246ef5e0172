// Package session keeps the server-side session table: one entry per issued
// token, keyed by the token's jti. Each login gets its own entry, so two
// browser sessions never observe each other's login state. The table is
// snapshotted to a JSON file after every change and reloaded at startup, so
// logins survive a process restart.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jasongilchristp/xrm-by-json/internal/apperr"
)

type entry struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store struct {
	mu       sync.Mutex
	path     string
	sessions map[string]entry
}

// NewStore loads the snapshot at path if present, dropping entries that
// expired while the process was down.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, sessions: make(map[string]entry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, apperr.Persistence("read sessions", err)
	}
	if err := json.Unmarshal(data, &s.sessions); err != nil {
		return nil, apperr.Persistence("read sessions", err)
	}
	now := time.Now()
	for jti, e := range s.sessions {
		if now.After(e.ExpiresAt) {
			delete(s.sessions, jti)
		}
	}
	return s, nil
}

// Put records a session for jti and persists the table.
func (s *Store) Put(jti, username string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[jti] = entry{Username: username, ExpiresAt: expiresAt}
	return s.flush()
}

// Resolve returns the username for jti, or false when the session is
// unknown, revoked or expired.
func (s *Store) Resolve(jti string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[jti]
	if !ok || time.Now().After(e.ExpiresAt) {
		return "", false
	}
	return e.Username, true
}

// Delete revokes the session for jti and persists the table. Deleting an
// unknown jti is a no-op.
func (s *Store) Delete(jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, jti)
	return s.flush()
}

func (s *Store) flush() error {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		return apperr.Persistence("write sessions", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return apperr.Persistence("write sessions", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperr.Persistence("write sessions", err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.Persistence("write sessions", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return apperr.Persistence("write sessions", err)
	}
	return nil
}
