package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWaitForShutdown_ServerError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	errCh <- errors.New("listener closed")

	err := waitForShutdown(shutdownConfig{
		ctx:     ctx,
		cancel:  cancel,
		errCh:   errCh,
		timeout: time.Second,
		logger:  testLogger(),
	})

	require.EqualError(t, err, "listener closed")
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestWaitForShutdown_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	background := make(chan struct{})
	close(background)
	cancel()

	err := waitForShutdown(shutdownConfig{
		ctx:        ctx,
		cancel:     cancel,
		server:     &http.Server{},
		timeout:    time.Second,
		background: background,
		logger:     testLogger(),
	})

	assert.NoError(t, err)
}

func TestStartHTTPServer_ServesUntilShutdown(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTP.Addr = "127.0.0.1:0"
	services, err := BuildServices(ServiceDeps{Config: cfg, Logger: testLogger()})
	require.NoError(t, err)

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(&HTTPServerConfig{Config: cfg, Services: services, Logger: testLogger()}, errCh)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, ShutdownHTTPServer(ShutdownConfig{Context: ctx, Server: server, Logger: testLogger()}))

	select {
	case err := <-errCh:
		t.Fatalf("unexpected serve error: %v", err)
	default:
	}
}

func TestStartHTTPServer_BindFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTP.Addr = "256.0.0.1:http"
	services, err := BuildServices(ServiceDeps{Config: cfg, Logger: testLogger()})
	require.NoError(t, err)

	_, err = StartHTTPServer(&HTTPServerConfig{Config: cfg, Services: services, Logger: testLogger()}, nil)
	require.Error(t, err)
}

func TestShutdownHTTPServer_NilServer(t *testing.T) {
	assert.NoError(t, ShutdownHTTPServer(ShutdownConfig{}))
}

func TestRun_RequiresConfig(t *testing.T) {
	require.Error(t, Run(context.Background(), nil))
	require.Error(t, Run(context.Background(), &RunConfig{}))
}

func TestWaitForService_NilChannel(t *testing.T) {
	waitForService(nil, "noop", testLogger())
}
