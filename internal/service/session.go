package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/domain/model"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/observability/metrics"
	"github.com/internhub/marketplace-web/internal/observability/statsd"
	"github.com/internhub/marketplace-web/internal/ports"
)

// ErrSuperseded is returned when a newer session operation committed first.
// Callers should re-read the session with Current.
var ErrSuperseded = errors.New("session operation superseded")

const (
	initValidated  = "validated"
	initCleared    = "cleared"
	initSuperseded = "superseded"
	initPending    = "pending"
)

// SessionConfig tunes SessionService. Zero values fall back to defaults.
type SessionConfig struct {
	TTL             time.Duration
	SettleWait      time.Duration
	RevalidateAfter time.Duration
	// ValidateTimeout bounds a background profile fetch.
	ValidateTimeout time.Duration
	// TokenExpiry reads the expiry of an access token; ok=false falls back to TTL.
	TokenExpiry func(token string) (time.Time, bool)
	Metrics     statsd.Sink
	Logger      *slog.Logger
	Now         func() time.Time
}

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Store    ports.SessionStore
	Auth     ports.Authenticator
	Profiles ports.ProfileFetcher
	Config   SessionConfig
}

// SessionService is the only writer of session tokens. Each write takes a
// sequence number once its network calls are done and commits with
// compare-and-set. A validation additionally requires the stored token to be
// the one it checked, so it never clears a token that a login put in place.
type SessionService struct {
	store    ports.SessionStore
	auth     ports.Authenticator
	profiles ports.ProfileFetcher
	cfg      SessionConfig
	logger   *slog.Logger
	group    singleflight.Group
}

// NewSessionService constructs a SessionService. Store, Auth and Profiles are required.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	if opts.Store == nil || opts.Auth == nil || opts.Profiles == nil {
		panic("service: SessionService requires Store, Auth and Profiles")
	}
	cfg := opts.Config
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.SettleWait <= 0 {
		cfg.SettleWait = 3 * time.Second
	}
	if cfg.RevalidateAfter <= 0 {
		cfg.RevalidateAfter = 5 * time.Minute
	}
	if cfg.ValidateTimeout <= 0 {
		cfg.ValidateTimeout = 15 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		store:    opts.Store,
		auth:     opts.Auth,
		profiles: opts.Profiles,
		cfg:      cfg,
		logger:   logger.With("component", "session_service"),
	}
}

// NewID returns a fresh opaque session id for the session cookie.
func (s *SessionService) NewID() string {
	return uuid.NewString()
}

// Current returns the committed session. Unknown ids yield an empty, unsettled session.
func (s *SessionService) Current(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, nil
	}
	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return domainauth.Session{ID: id}, nil
	}
	if err != nil {
		return domainauth.Session{ID: id}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// Initialize settles the session. A held token is checked against the
// profile endpoint unless it was validated recently; any failure clears it.
// Concurrent calls for one session share a single profile fetch. If the
// fetch outlasts the settle wait the unsettled session is returned and the
// fetch completes in the background. When the store itself fails the
// request is settled as anonymous and the error returned.
func (s *SessionService) Initialize(ctx context.Context, id string) (domainauth.Session, error) {
	sess, err := s.Current(ctx, id)
	if err != nil {
		return anonymous(id), err
	}
	if !sess.TokenPresent() {
		sess.Settled = true
		return sess, nil
	}
	if !sess.NeedsValidation(s.cfg.Now(), s.cfg.RevalidateAfter) {
		return sess, nil
	}

	ch := s.group.DoChan(id, func() (any, error) {
		vctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ValidateTimeout)
		defer cancel()
		return s.validate(vctx, id)
	})

	timer := time.NewTimer(s.cfg.SettleWait)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			return anonymous(id), res.Err
		}
		out, _ := res.Val.(domainauth.Session)
		return out, nil
	case <-timer.C:
		metrics.EmitSessionInit(s.cfg.Metrics, initPending)
		sess.Settled = false
		return sess, nil
	case <-ctx.Done():
		sess.Settled = false
		return sess, ctx.Err()
	}
}

func (s *SessionService) validate(ctx context.Context, id string) (domainauth.Session, error) {
	cur, err := s.Current(ctx, id)
	if err != nil {
		return cur, err
	}
	if !cur.TokenPresent() {
		cur.Settled = true
		return cur, nil
	}

	next := cur
	outcome := initValidated
	identity, perr := s.profiles.Profile(ctx, cur.Token)
	if perr != nil {
		s.logger.InfoContext(ctx, "clearing session token after failed profile fetch",
			"session_id", id, "error_code", apperrors.GetCode(perr), "error", perr)
		next = cur.Cleared()
		next.ExpiresAt = s.cfg.Now().Add(s.cfg.TTL)
		outcome = initCleared
	} else {
		next.Identity = &identity
		next.Settled = true
		next.ValidatedAt = s.cfg.Now()
		next.ExpiresAt = s.expiry(cur.Token)
	}

	seq, err := s.store.NextSeq(ctx, id)
	if err != nil {
		return cur, fmt.Errorf("next session seq: %w", err)
	}
	latest, err := s.Current(ctx, id)
	if err != nil {
		return cur, err
	}
	if latest.Token != cur.Token || latest.Seq != cur.Seq {
		metrics.EmitSessionInit(s.cfg.Metrics, initSuperseded)
		return latest, nil
	}
	next.Seq = seq

	if err := s.store.Commit(ctx, next); err != nil {
		if errors.Is(err, ports.ErrStaleWrite) {
			metrics.EmitSessionInit(s.cfg.Metrics, initSuperseded)
			return s.Current(ctx, id)
		}
		return cur, fmt.Errorf("commit session: %w", err)
	}
	metrics.EmitSessionInit(s.cfg.Metrics, outcome)
	return next, nil
}

// Login exchanges credentials for a token, resolves the identity behind it
// and commits both. Nothing is committed on failure.
func (s *SessionService) Login(ctx context.Context, id, email, password string) (domainauth.Identity, error) {
	return s.signIn(ctx, id, func(ctx context.Context) (string, error) {
		return s.auth.Login(ctx, email, password)
	})
}

// Register creates the account and signs it in.
func (s *SessionService) Register(ctx context.Context, id string, reg model.Registration) (domainauth.Identity, error) {
	role, ok := domainauth.ParseRole(reg.Role)
	if !ok || role == domainauth.RoleAdmin {
		return domainauth.Identity{}, apperrors.ValidationField("role", model.ErrRoleNotAllowed.Error())
	}
	return s.signIn(ctx, id, func(ctx context.Context) (string, error) {
		return s.auth.Register(ctx, ports.RegisterInput{
			Name:        reg.Name,
			Email:       reg.Email,
			PhoneNumber: reg.PhoneNumber,
			Password:    reg.Password,
			Role:        role,
		})
	})
}

func (s *SessionService) signIn(
	ctx context.Context,
	id string,
	obtain func(ctx context.Context) (string, error),
) (domainauth.Identity, error) {
	if id == "" {
		return domainauth.Identity{}, errors.New("session ID is required")
	}
	token, err := obtain(ctx)
	if err != nil {
		return domainauth.Identity{}, err
	}
	identity, err := s.profiles.Profile(ctx, token)
	if err != nil {
		return domainauth.Identity{}, err
	}
	seq, err := s.store.NextSeq(ctx, id)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("next session seq: %w", err)
	}

	sess := domainauth.Session{
		ID:          id,
		Token:       token,
		Identity:    &identity,
		Settled:     true,
		Seq:         seq,
		ValidatedAt: s.cfg.Now(),
		ExpiresAt:   s.expiry(token),
	}
	if err := s.store.Commit(ctx, sess); err != nil {
		if errors.Is(err, ports.ErrStaleWrite) {
			return domainauth.Identity{}, ErrSuperseded
		}
		return domainauth.Identity{}, fmt.Errorf("commit session: %w", err)
	}
	s.logger.InfoContext(ctx, "session signed in", "session_id", id, "user_id", identity.ID, "role", identity.Role)
	return identity, nil
}

// Logout clears the token and identity. The marketplace API is not called.
func (s *SessionService) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.clear(ctx, id)
}

// Invalidate drops a token the marketplace API rejected.
func (s *SessionService) Invalidate(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	s.logger.InfoContext(ctx, "clearing rejected session token", "session_id", id)
	return s.clear(ctx, id)
}

func (s *SessionService) clear(ctx context.Context, id string) error {
	seq, err := s.store.NextSeq(ctx, id)
	if err != nil {
		return fmt.Errorf("next session seq: %w", err)
	}
	sess := domainauth.Session{ID: id, Seq: seq}.Cleared()
	sess.ExpiresAt = s.cfg.Now().Add(s.cfg.TTL)
	if err := s.store.Commit(ctx, sess); err != nil {
		if errors.Is(err, ports.ErrStaleWrite) {
			return ErrSuperseded
		}
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func anonymous(id string) domainauth.Session {
	return domainauth.Session{ID: id, Settled: true}
}

// expiry bounds the session lifetime by the token's own expiry.
func (s *SessionService) expiry(token string) time.Time {
	limit := s.cfg.Now().Add(s.cfg.TTL)
	if s.cfg.TokenExpiry == nil {
		return limit
	}
	if exp, ok := s.cfg.TokenExpiry(token); ok && exp.After(s.cfg.Now()) && exp.Before(limit) {
		return exp
	}
	return limit
}
