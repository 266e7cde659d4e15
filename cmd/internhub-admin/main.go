package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/internhub/marketplace-web/config"
	"github.com/internhub/marketplace-web/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	Out    io.Writer
	In     io.Reader
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
		Out:    os.Stdout,
		In:     os.Stdin,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"show-config": {
			name:        "show-config",
			description: "Print the effective configuration with secrets redacted",
			run:         runShowConfig,
		},
		"list-sessions": {
			name:        "list-sessions",
			description: "List browser sessions held in Redis",
			run:         runListSessions,
		},
		"drop-session": {
			name:        "drop-session",
			description: "Delete one browser session from Redis, signing it out",
			run:         runDropSession,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: internhub-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0, len(commands()))
	for name := range commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := commands()[name]
		if err := writef(w, "  %-24s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func runShowConfig(cmdCtx *commandContext, _ []string) error {
	cfg := cmdCtx.Config
	rows := [][2]string{
		{"dev", fmt.Sprint(cfg.IsDev)},
		{"http.addr", cfg.HTTP.Addr},
		{"http.base_url", cfg.HTTP.BaseURL},
		{"http.compression", fmt.Sprintf("%t (level %d)", cfg.HTTP.CompressionEnabled, cfg.HTTP.CompressionLevel)},
		{"session.store", string(cfg.Session.Store)},
		{"session.ttl", cfg.Session.TTL.String()},
		{"session.settle_wait", cfg.Session.SettleWait.String()},
		{"session.revalidate_after", cfg.Session.RevalidateAfter.String()},
		{"session.cookie", cfg.Session.CookieName},
		{"marketplace.url", cfg.Marketplace.BaseURL},
		{"marketplace.timeout", cfg.Marketplace.Timeout.String()},
		{"marketplace.list_items_path", cfg.Marketplace.ListItemsPath},
		{"redis.uri", redactSecret(cfg.Redis.URI)},
		{"redis.password", maskIfSet(cfg.Redis.Password)},
		{"views.capacity", fmt.Sprint(cfg.Views.Capacity)},
		{"views.ttl", cfg.Views.TTL.String()},
		{"login_rate.per_minute", fmt.Sprint(cfg.LoginRate.PerMinute)},
		{"statsd", fmt.Sprint(cfg.Observability.Metrics.IsEnabled())},
		{"prometheus", fmt.Sprint(cfg.Observability.Prometheus.Enabled)},
	}
	for _, row := range rows {
		if err := writef(cmdCtx.Out, "%-28s %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

func maskIfSet(v string) string {
	if v == "" {
		return "(unset)"
	}
	return "********"
}

// redactSecret hides userinfo in redis:// URIs.
func redactSecret(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		return scheme + "://****@" + rest[i+1:]
	}
	return uri
}

func confirm(cmdCtx *commandContext, prompt string) (bool, error) {
	if err := writef(cmdCtx.Out, "%s [y/N]: ", prompt); err != nil {
		return false, fmt.Errorf("print confirmation prompt: %w", err)
	}
	line, err := bufio.NewReader(cmdCtx.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
