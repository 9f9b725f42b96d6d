package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/daemon"
	"procdash/internal/jobs"
	"procdash/internal/process"
)

// ErrUnknownProcess is returned when no listed process carries the key.
var ErrUnknownProcess = errors.New("unknown process")

// StartParams configures the start command.
type StartParams struct {
	Key string
	// Folder narrows the lookup; unset searches every folder.
	Folder  process.FolderFilter
	Timeout time.Duration
}

// StartResult reports what was dispatched.
type StartResult struct {
	Process process.Process
	Request process.StartRequest
	Job     jobs.Job
}

// Resolve finds the process a start would target.
func (a *App) Resolve(ctx context.Context, params StartParams) (process.Process, error) {
	key := strings.TrimSpace(params.Key)
	if key == "" {
		return process.Process{}, errors.New("process key must not be empty")
	}
	procs, err := a.fetch(ctx, params.Timeout, params.Folder)
	if err != nil {
		return process.Process{}, err
	}
	for _, p := range procs {
		if p.Key == key {
			return p, nil
		}
	}
	if params.Folder.Set() {
		return process.Process{}, fmt.Errorf("%w %q in folder %d", ErrUnknownProcess, key, params.Folder)
	}
	return process.Process{}, fmt.Errorf("%w %q", ErrUnknownProcess, key)
}

// Dispatch sends a confirmed start request to the daemon.
func (a *App) Dispatch(ctx context.Context, req process.StartRequest, timeout time.Duration) (jobs.Job, error) {
	var job jobs.Job
	if err := req.Validate(); err != nil {
		return job, err
	}
	err := a.withClient(ctx, timeout, func(ctx context.Context, client procdashv1.ProcDashClient) error {
		resp, err := client.Start(ctx, &procdashv1.StartRequest{Key: req.Key, FolderId: int32(req.FolderID)})
		if err != nil {
			return fmt.Errorf("daemon start RPC failed: %w", err)
		}
		job = daemon.JobFromWire(resp.GetJob())
		return nil
	})
	return job, err
}

// Start resolves the key and dispatches it without a confirmation step.
func (a *App) Start(ctx context.Context, params StartParams) (StartResult, error) {
	var result StartResult
	p, err := a.Resolve(ctx, params)
	if err != nil {
		return result, err
	}
	result.Process = p
	result.Request = process.NewStartRequest(p)
	result.Job, err = a.Dispatch(ctx, result.Request, params.Timeout)
	return result, err
}
