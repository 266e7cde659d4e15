package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"

	redisstore "github.com/internhub/marketplace-web/internal/adapters/redis"
	"github.com/internhub/marketplace-web/internal/bootstrap"
	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/ports"
)

const adminTimeout = 2 * time.Minute

type listSessionsOptions struct {
	Limit int
	Role  string
}

type dropSessionOptions struct {
	ID  string
	Yes bool
}

func parseListSessionsFlags(args []string) (listSessionsOptions, error) {
	var opts listSessionsOptions
	fs := flag.NewFlagSet("list-sessions", flag.ContinueOnError)
	fs.IntVar(&opts.Limit, "limit", 100, "maximum sessions to print")
	fs.StringVar(&opts.Role, "role", "", "only show sessions signed in with this role")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Limit <= 0 {
		return opts, errors.New("limit must be positive")
	}
	if opts.Role != "" && !domainauth.Role(opts.Role).Valid() {
		return opts, fmt.Errorf("unknown role %q", opts.Role)
	}
	return opts, nil
}

func parseDropSessionFlags(args []string) (dropSessionOptions, error) {
	var opts dropSessionOptions
	fs := flag.NewFlagSet("drop-session", flag.ContinueOnError)
	fs.StringVar(&opts.ID, "id", "", "session id (the session cookie value)")
	fs.BoolVar(&opts.Yes, "yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.ID = strings.TrimSpace(opts.ID)
	if opts.ID == "" {
		return opts, errors.New("-id is required")
	}
	return opts, nil
}

// openSessionStore connects to Redis; sessions in a memory store live only
// inside the server process and cannot be inspected from here.
func openSessionStore(cmdCtx *commandContext) (*redisstore.SessionStore, redis.UniversalClient, error) {
	if !cmdCtx.Config.UsesRedis() {
		return nil, nil, errors.New("SESSION_STORE is not redis; nothing to inspect")
	}
	client, err := bootstrap.ConnectRedis(cmdCtx.Ctx, bootstrap.RedisOptions{
		Config: cmdCtx.Config.Redis,
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return redisstore.NewSessionStoreWithPrefix(client, cmdCtx.Config.Session.KeyPrefix), client, nil
}

func runListSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseListSessionsFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, adminTimeout)
	defer cancel()

	store, client, err := openSessionStore(cmdCtx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", closeErr)
		}
	}()

	prefix := cmdCtx.Config.Session.KeyPrefix
	iter := client.Scan(ctx, 0, prefix+"{*", 100).Iterator()

	sessions := make([]domainauth.Session, 0, opts.Limit)
	for iter.Next(ctx) && len(sessions) < opts.Limit {
		id, ok := sessionIDFromKey(prefix, iter.Val())
		if !ok {
			continue
		}
		sess, getErr := store.Get(ctx, id)
		if errors.Is(getErr, ports.ErrSessionNotFound) {
			continue
		}
		if getErr != nil {
			cmdCtx.Logger.WarnContext(ctx, "read session failed", "session_id", id, "error", getErr)
			continue
		}
		if opts.Role != "" && string(sess.Role()) != opts.Role {
			continue
		}
		sessions = append(sessions, sess)
	}
	if iterErr := iter.Err(); iterErr != nil {
		return fmt.Errorf("redis scan: %w", iterErr)
	}

	return printSessions(cmdCtx.Out, sessions, time.Now())
}

func runDropSession(cmdCtx *commandContext, args []string) error {
	opts, err := parseDropSessionFlags(args)
	if err != nil {
		return err
	}
	if !opts.Yes {
		ok, confirmErr := confirm(cmdCtx, fmt.Sprintf("Sign out session %s?", opts.ID))
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			return writef(cmdCtx.Out, "Aborted.\n")
		}
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, adminTimeout)
	defer cancel()

	store, client, err := openSessionStore(cmdCtx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", closeErr)
		}
	}()

	if err := store.Delete(ctx, opts.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	cmdCtx.Logger.InfoContext(ctx, "session dropped", "session_id", opts.ID)
	return writef(cmdCtx.Out, "Session %s dropped.\n", opts.ID)
}

// sessionIDFromKey extracts the id from prefix{id}. Sequence keys never match.
func sessionIDFromKey(prefix, key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok || !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
		return "", false
	}
	id := rest[1 : len(rest)-1]
	return id, id != ""
}

func printSessions(w io.Writer, sessions []domainauth.Session, now time.Time) error {
	if len(sessions) == 0 {
		return writef(w, "(no sessions found)\n")
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writef(tw, "SESSION\tROLE\tUSER\tSETTLED\tEXPIRES IN\n"); err != nil {
		return err
	}
	for _, sess := range sessions {
		role, user := "anonymous", "-"
		if sess.Identity != nil {
			role = string(sess.Identity.Role)
			user = fmt.Sprint(sess.Identity.ID)
		}
		expires := "-"
		if !sess.ExpiresAt.IsZero() {
			expires = sess.ExpiresAt.Sub(now).Round(time.Second).String()
		}
		if err := writef(tw, "%s\t%s\t%s\t%t\t%s\n", sess.ID, role, user, sess.Settled, expires); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return writef(w, "\nTotal: %d\n", len(sessions))
}
