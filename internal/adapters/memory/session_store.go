// Package memory provides in-process adapters for development and single-instance deployments.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/ports"
)

// SessionStore keeps sessions in a map guarded by a mutex.
// Sessions disappear once ExpiresAt passes; sequence counters are dropped with them.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
	seqs     map[string]uint64
	now      func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domainauth.Session),
		seqs:     make(map[string]uint64),
		now:      time.Now,
	}
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		delete(s.seqs, id)
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) NextSeq(_ context.Context, id string) (uint64, error) {
	if id == "" {
		return 0, errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[id]++
	return s.seqs[id], nil
}

func (s *SessionStore) Commit(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if s.expired(sess) {
		return errors.New("session is expired")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.sessions[sess.ID]; ok && !s.expired(cur) && cur.Seq > sess.Seq {
		return ports.ErrStaleWrite
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.seqs, id)
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			delete(s.seqs, id)
			n++
		}
	}
	return n
}

// Len reports the number of stored sessions, expired ones included until swept.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess domainauth.Session) bool {
	return !sess.ExpiresAt.IsZero() && s.now().After(sess.ExpiresAt)
}
