package daemon

import (
	"context"
	"fmt"

	"procdash/internal/catalog"
	"procdash/internal/process"
)

// Backend lists processes and starts them. The daemon serves either the
// local catalog or an upstream orchestrator through it.
type Backend interface {
	Fetch(ctx context.Context, folder process.FolderFilter) ([]process.Process, error)
	Start(ctx context.Context, req process.StartRequest) error
}

// catalogBackend serves the local catalog. Starting a cataloged process
// only checks that it exists in the requested folder; the job ledger is
// the record of the run.
type catalogBackend struct {
	cat *catalog.Catalog
}

func (b catalogBackend) Fetch(_ context.Context, folder process.FolderFilter) ([]process.Process, error) {
	return b.cat.List(folder), nil
}

func (b catalogBackend) Start(_ context.Context, req process.StartRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	p, ok := b.cat.Get(req.Key)
	if !ok {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, req.Key)
	}
	if p.Folder() != req.FolderID {
		return fmt.Errorf("%w: %s is not in folder %d", catalog.ErrNotFound, req.Key, req.FolderID)
	}
	return nil
}
