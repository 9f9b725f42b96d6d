package app

import (
	"context"
	"time"

	"procdash/internal/process"
)

// Provider serves a dashboard.Store from the daemon.
type Provider struct {
	app     *App
	timeout time.Duration
}

// Provider returns a dashboard provider bound to the daemon with the
// configured request timeout.
func (a *App) Provider() *Provider {
	return &Provider{app: a, timeout: a.RequestTimeout()}
}

func (p *Provider) Fetch(ctx context.Context, folder process.FolderFilter) ([]process.Process, error) {
	return p.app.fetch(ctx, p.timeout, folder)
}

func (p *Provider) Start(ctx context.Context, req process.StartRequest) error {
	_, err := p.app.Dispatch(ctx, req, p.timeout)
	return err
}
