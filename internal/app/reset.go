package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"

	"google.golang.org/protobuf/types/known/emptypb"
)

// ResetParams configures the reset command.
type ResetParams struct {
	Timeout   time.Duration
	Confirmed bool
}

// Reset wipes the catalog and the job ledger.
func (a *App) Reset(ctx context.Context, params ResetParams) error {
	if !params.Confirmed {
		return errors.New(`destructive command: confirmation required`)
	}

	return a.withClient(ctx, params.Timeout, func(ctx context.Context, client procdashv1.ProcDashClient) error {
		if _, err := client.Reset(ctx, &emptypb.Empty{}); err != nil {
			return fmt.Errorf("daemon reset RPC failed: %w", err)
		}
		return nil
	})
}
