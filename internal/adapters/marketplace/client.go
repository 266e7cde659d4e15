// Package marketplace is the outbound adapter for the marketplace REST API.
// Every call carries the caller's bearer token (ports.WithAccessToken) through an
// oauth2 transport, maps failures onto the application error taxonomy and emits
// an upstream-call metric.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/observability/metrics"
	"github.com/internhub/marketplace-web/internal/observability/statsd"
	"github.com/internhub/marketplace-web/internal/ports"
)

const (
	defaultTimeout     = 10 * time.Second
	maxErrorBodyBytes  = 64 << 10
	maxResponseBytes   = 8 << 20
	defaultListPath    = "rows"
	defaultMessagePath = "message || error.message || error"
)

// Config groups constructor options for Client.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	ListItemsPath    string
	ErrorMessagePath string
	// Transport is the base round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
	Metrics   statsd.Sink
	Logger    *slog.Logger
}

// Client talks to the marketplace API. It is safe for concurrent use.
type Client struct {
	base      *url.URL
	timeout   time.Duration
	transport http.RoundTripper
	envelope  envelope
	sink      statsd.Sink
	logger    *slog.Logger
}

var _ ports.MarketplaceAPI = (*Client)(nil)

// NewClient validates the configuration and returns a Client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("marketplace base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid marketplace base URL %q", cfg.BaseURL)
	}

	env, err := newEnvelope(cfg.ListItemsPath, cfg.ErrorMessagePath)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:      base,
		timeout:   timeout,
		transport: transport,
		envelope:  env,
		sink:      cfg.Metrics,
		logger:    logger.With("component", "marketplace_client"),
	}, nil
}

// request describes one outbound call.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// httpClient returns a client that attaches the bearer token carried by ctx, if any.
func (c *Client) httpClient(ctx context.Context) *http.Client {
	tok, ok := ports.AccessTokenFrom(ctx)
	if !ok {
		return &http.Client{Transport: c.transport}
	}
	return &http.Client{Transport: &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}),
		Base:   c.transport,
	}}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// call performs the request and returns the raw success body.
func (c *Client) call(ctx context.Context, r request) (body []byte, err error) {
	start := time.Now()
	status := 0
	defer func() {
		metrics.EmitUpstreamCall(c.sink, metrics.UpstreamCall{
			Operation: r.op,
			Status:    status,
			Duration:  time.Since(start),
			Err:       err,
		})
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if r.body != nil {
		payload, marshalErr := json.Marshal(r.body)
		if marshalErr != nil {
			return nil, apperrors.Wrap(marshalErr, apperrors.ErrCodeInternal, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient(ctx).Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "marketplace request failed", "op", r.op, "error", err)
		return nil, apperrors.FromTransport(err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		msg := c.envelope.message(raw)
		c.logger.DebugContext(ctx, "marketplace error response", "op", r.op, "status", resp.StatusCode, "message", msg)
		return nil, apperrors.FromStatus(resp.StatusCode, msg)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.FromTransport(err)
	}
	return body, nil
}

// do performs the request and decodes a JSON object response into out (when non-nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	body, err := c.call(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s response", r.op)
	}
	return nil
}

// list performs the request and extracts the item array from the response envelope.
func list[T any](ctx context.Context, c *Client, r request) ([]T, error) {
	body, err := c.call(ctx, r)
	if err != nil {
		return nil, err
	}
	items, err := c.envelope.items(body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s response", r.op)
	}
	out := make([]T, 0, len(items))
	for _, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s item", r.op)
		}
		out = append(out, v)
	}
	return out, nil
}

func idPath(prefix string, id int64, suffix ...string) string {
	p := prefix + "/" + fmt.Sprint(id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}
