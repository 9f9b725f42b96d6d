package app

import (
	"context"
	"fmt"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/daemon"
	"procdash/internal/jobs"
)

// JobsParams filters the job history.
type JobsParams struct {
	ProcessKey string
	Limit      int
	Timeout    time.Duration
}

// Jobs returns recorded starts, newest first.
func (a *App) Jobs(ctx context.Context, params JobsParams) ([]jobs.Job, error) {
	if params.Limit < 0 {
		return nil, fmt.Errorf("invalid limit %d", params.Limit)
	}
	var out []jobs.Job
	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client procdashv1.ProcDashClient) error {
		resp, err := client.Jobs(ctx, &procdashv1.JobsRequest{ProcessKey: params.ProcessKey, Limit: int32(params.Limit)})
		if err != nil {
			return fmt.Errorf("daemon jobs RPC failed: %w", err)
		}
		out = make([]jobs.Job, 0, len(resp.GetJobs()))
		for _, j := range resp.GetJobs() {
			out = append(out, daemon.JobFromWire(j))
		}
		return nil
	})
	return out, err
}
