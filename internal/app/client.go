package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/daemon"
)

// ErrDaemonNotRunning is returned by every daemon-backed call when nothing
// answers on the socket.
var ErrDaemonNotRunning = errors.New("daemon is not running")

// Swapped out in tests.
var (
	daemonIsRunning  = daemon.IsRunning
	dialDaemonClient = dialDaemon
)

func dialDaemon(ctx context.Context) (procdashv1.ProcDashClient, io.Closer, error) {
	client, conn, err := daemon.Dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client, conn, nil
}

func resetDaemonDeps() {
	daemonIsRunning = daemon.IsRunning
	dialDaemonClient = dialDaemon
}

// withClient runs fn against a fresh daemon connection bounded by timeout.
func (a *App) withClient(ctx context.Context, timeout time.Duration, fn func(context.Context, procdashv1.ProcDashClient) error) error {
	if timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}
	if !daemonIsRunning() {
		return ErrDaemonNotRunning
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, conn, err := dialDaemonClient(ctx)
	if err != nil {
		return fmt.Errorf("connect to daemon: %w", err)
	}
	if conn != nil {
		defer conn.Close()
	}
	return fn(ctx, client)
}
