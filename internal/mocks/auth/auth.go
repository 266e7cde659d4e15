package auth

// Package auth contains simple hand-written test doubles for session ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore   = (*MemorySessionStore)(nil)
	_ ports.ProfileFetcher = (*StaticProfiles)(nil)
)

// MemorySessionStore is an in-memory session store for unit tests.
// Commit honors the same sequence rule as the real stores.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
	seqs     map[string]uint64
	Commits  int
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
		seqs:     make(map[string]uint64),
	}
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) NextSeq(_ context.Context, id string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seqs[id]++
	return m.seqs[id], nil
}

func (m *MemorySessionStore) Commit(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.sessions[sess.ID]; ok && cur.Seq > sess.Seq {
		return ports.ErrStaleWrite
	}
	m.sessions[sess.ID] = sess
	m.Commits++
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Put seeds a session without sequence checks.
func (m *MemorySessionStore) Put(sess domainauth.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	if sess.Seq > m.seqs[sess.ID] {
		m.seqs[sess.ID] = sess.Seq
	}
}

// StaticProfiles resolves tokens from a fixed table. Unknown tokens yield Err
// (or an unauthenticated-style error when Err is nil).
type StaticProfiles struct {
	mu       sync.Mutex
	Profiles map[string]domainauth.Identity
	Err      error
	Calls    int
	// Block, when set, is received from before answering.
	Block chan struct{}
}

var ErrUnknownToken = errors.New("unknown token")

// NewStaticProfiles creates a StaticProfiles with the given token table.
func NewStaticProfiles(profiles map[string]domainauth.Identity) *StaticProfiles {
	return &StaticProfiles{Profiles: profiles}
}

func (s *StaticProfiles) Profile(ctx context.Context, token string) (domainauth.Identity, error) {
	s.mu.Lock()
	s.Calls++
	block := s.Block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return domainauth.Identity{}, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return domainauth.Identity{}, s.Err
	}
	id, ok := s.Profiles[token]
	if !ok {
		return domainauth.Identity{}, ErrUnknownToken
	}
	return id, nil
}

// CallCount returns how many times Profile was invoked.
func (s *StaticProfiles) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}
