package app

import (
	"context"
	"sort"
	"strconv"
	"time"

	"procdash/internal/dashboard"
	"procdash/internal/process"
)

// FolderSummary is one folder and how many processes it holds.
type FolderSummary struct {
	Folder dashboard.Folder
	Count  int
}

// FoldersParams configures the folders command.
type FoldersParams struct {
	Timeout time.Duration
}

// FolderSummaries lists configured folders with their process counts.
// Folders that only appear on processes are appended in id order.
func (a *App) FolderSummaries(ctx context.Context, params FoldersParams) ([]FolderSummary, error) {
	procs, err := a.fetch(ctx, params.Timeout, process.AllFolders)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, p := range procs {
		counts[p.Folder()]++
	}

	folders := a.Folders()
	out := make([]FolderSummary, 0, len(folders))
	known := make(map[int]struct{}, len(folders))
	for _, f := range folders {
		known[f.ID] = struct{}{}
		out = append(out, FolderSummary{Folder: f, Count: counts[f.ID]})
	}

	var extra []int
	for id := range counts {
		if _, ok := known[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Ints(extra)
	for _, id := range extra {
		out = append(out, FolderSummary{
			Folder: dashboard.Folder{ID: id, Name: "Folder " + strconv.Itoa(id)},
			Count:  counts[id],
		})
	}
	return out, nil
}
