package app

import (
	"context"
	"fmt"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"

	"google.golang.org/protobuf/types/known/emptypb"
)

// Ping contacts the daemon and returns its health response.
func (a *App) Ping(ctx context.Context, timeout time.Duration) (string, error) {
	var reply string
	err := a.withClient(ctx, timeout, func(ctx context.Context, client procdashv1.ProcDashClient) error {
		resp, err := client.Ping(ctx, &emptypb.Empty{})
		if err != nil {
			return fmt.Errorf("daemon ping RPC failed: %w", err)
		}
		reply = resp.GetValue()
		return nil
	})
	return reply, err
}
