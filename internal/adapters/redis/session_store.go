package redis

// Package redis provides Redis-based adapters for the web front end.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/ports"
)

const (
	defaultPrefix     = "session:"
	maxCommitAttempts = 5
)

// SessionStore is a Redis-based session store for production use.
// It handles TTL semantics automatically based on session ExpiresAt and
// commits with WATCH/MULTI so a lower sequence never overwrites a higher one.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return NewSessionStoreWithPrefix(client, defaultPrefix)
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

// Keys share a hash tag so the commit transaction stays in one cluster slot.
func (s *SessionStore) key(id string) string    { return s.prefix + "{" + id + "}" }
func (s *SessionStore) seqKey(id string) string { return s.prefix + "seq:{" + id + "}" }

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ports.ErrSessionNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	sess, err := decodeSession(data)
	if err != nil {
		return domainauth.Session{}, err
	}

	// Redis TTL normally removes these first.
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	return sess, nil
}

// NextSeq increments the per-session sequence counter.
// Commit refreshes the counter's TTL so it outlives the record it guards.
func (s *SessionStore) NextSeq(ctx context.Context, id string) (uint64, error) {
	if id == "" {
		return 0, errors.New("session ID cannot be empty")
	}
	n, err := s.client.Incr(ctx, s.seqKey(id)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	return uint64(n), nil
}

// Commit stores sess unless the stored session carries a higher sequence.
func (s *SessionStore) Commit(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.key(sess.ID)
	txf := func(tx *redis.Tx) error {
		current, getErr := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(getErr, redis.Nil):
		case getErr != nil:
			return fmt.Errorf("redis get: %w", getErr)
		default:
			existing, decErr := decodeSession(current)
			if decErr == nil && existing.Seq > sess.Seq {
				return ports.ErrStaleWrite
			}
		}

		_, pipeErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			pipe.Expire(ctx, s.seqKey(sess.ID), ttl+time.Minute)
			return nil
		})
		return pipeErr
	}

	for range maxCommitAttempts {
		err = s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("commit session %s: %w", sess.ID, err)
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}
	return s.client.Del(ctx, s.key(id), s.seqKey(id)).Err()
}

func decodeSession(data []byte) (domainauth.Session, error) {
	var sess domainauth.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}
