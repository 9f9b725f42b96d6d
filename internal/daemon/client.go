package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"

	procdashv1 "procdash/api/proto/procdash/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial connects to the daemon on the configured socket. The generated client
// already selects the JSON codec on every call.
func Dial(ctx context.Context) (procdashv1.ProcDashClient, *grpc.ClientConn, error) {
	return DialSocket(ctx, SocketPath())
}

// DialSocket connects to a daemon listening on path and waits until the
// connection is ready or ctx expires.
func DialSocket(ctx context.Context, path string) (procdashv1.ProcDashClient, *grpc.ClientConn, error) {
	if path == "" {
		return nil, nil, errors.New("socket path is empty")
	}
	conn, err := grpc.NewClient(
		"passthrough:///"+path,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", path)
		}),
	)
	if err != nil {
		return nil, nil, err
	}
	conn.Connect()
	if err := waitForReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("daemon socket %s: %w", path, err)
	}
	return procdashv1.NewProcDashClient(conn), conn, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return errors.New("connection is shut down")
		}
		if !conn.WaitForStateChange(ctx, state) {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fmt.Errorf("connection stuck in state %s", state)
		}
	}
}
