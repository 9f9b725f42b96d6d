package main

import (
	"context"
	"time"

	"procdash/internal/app"
	"procdash/internal/config"
	"procdash/internal/dashboard"
	"procdash/internal/jobs"
	"procdash/internal/process"
)

// controllerAPI is the slice of app.App the commands use; tests swap it.
type controllerAPI interface {
	Config() (*config.Config, error)
	Folders() []dashboard.Folder
	RequestTimeout() time.Duration
	Provider() *app.Provider

	Ping(ctx context.Context, timeout time.Duration) (string, error)
	List(ctx context.Context, params app.ListParams) (app.ListResult, error)
	Resolve(ctx context.Context, params app.StartParams) (process.Process, error)
	Dispatch(ctx context.Context, req process.StartRequest, timeout time.Duration) (jobs.Job, error)
	Add(ctx context.Context, params app.AddParams) (app.AddResult, error)
	Remove(ctx context.Context, params app.RemoveParams) (app.RemoveResult, error)
	Reset(ctx context.Context, params app.ResetParams) error
	Jobs(ctx context.Context, params app.JobsParams) ([]jobs.Job, error)
	FolderSummaries(ctx context.Context, params app.FoldersParams) ([]app.FolderSummary, error)

	Status() (app.DaemonStatus, error)
	StopDaemon(force bool) error
	StartDaemon() (*app.DaemonHandle, error)
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{ConfigPath: configPath})
}

func controller() controllerAPI {
	return controllerFactory()
}

// requestTimeout turns a --timeout flag into a duration, falling back to
// the configured request timeout when the flag is left at 0.
func requestTimeout(ctrl controllerAPI, seconds int) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return ctrl.RequestTimeout()
}
