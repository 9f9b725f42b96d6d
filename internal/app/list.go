package app

import (
	"context"
	"fmt"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/daemon"
	"procdash/internal/process"
)

// ListParams selects, filters and orders the process list.
type ListParams struct {
	Folder  process.FolderFilter
	Search  string
	Sort    process.SortState
	Timeout time.Duration
}

// ListResult holds the visible processes and the size of the fetched set.
type ListResult struct {
	Processes []process.Process
	Total     int
}

// List fetches the folder's processes from the daemon and applies the
// search term and sort order.
func (a *App) List(ctx context.Context, params ListParams) (ListResult, error) {
	var result ListResult
	if params.Folder < 0 {
		return result, fmt.Errorf("invalid folder %d", params.Folder)
	}
	all, err := a.fetch(ctx, params.Timeout, params.Folder)
	if err != nil {
		return result, err
	}
	result.Total = len(all)
	result.Processes = process.Visible(all, process.Criteria{Search: params.Search, Folder: params.Folder}, params.Sort)
	return result, nil
}

func (a *App) fetch(ctx context.Context, timeout time.Duration, folder process.FolderFilter) ([]process.Process, error) {
	var procs []process.Process
	err := a.withClient(ctx, timeout, func(ctx context.Context, client procdashv1.ProcDashClient) error {
		resp, err := client.List(ctx, &procdashv1.ListRequest{FolderId: int32(folder)})
		if err != nil {
			return fmt.Errorf("daemon list RPC failed: %w", err)
		}
		procs = make([]process.Process, 0, len(resp.GetProcs()))
		for _, p := range resp.GetProcs() {
			procs = append(procs, daemon.ProcFromWire(p))
		}
		return nil
	})
	return procs, err
}
