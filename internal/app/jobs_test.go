package app

import (
	"context"
	"testing"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/config"
	"procdash/internal/dashboard"
	"procdash/internal/jobs"
)

func TestAppJobs(t *testing.T) {
	var captured *procdashv1.JobsRequest
	stubInvoke(t, func(method string, args, reply interface{}) error {
		captured = args.(*procdashv1.JobsRequest)
		reply.(*procdashv1.JobsResponse).Jobs = []*procdashv1.Job{
			{Id: "j2", ProcessKey: "inv-1", FolderId: 2, State: "Faulted", Error: "release not found", CreatedAtUnix: 1714564800},
		}
		return nil
	})
	app := New(Options{})
	got, err := app.Jobs(context.Background(), JobsParams{ProcessKey: "inv-1", Limit: 5, Timeout: time.Second})
	if err != nil {
		t.Fatalf("Jobs returned error: %v", err)
	}
	if captured.GetProcessKey() != "inv-1" || captured.GetLimit() != 5 {
		t.Fatalf("unexpected request %+v", captured)
	}
	if len(got) != 1 || got[0].State != jobs.StateFaulted || got[0].CreatedAt.Unix() != 1714564800 {
		t.Fatalf("unexpected jobs %+v", got)
	}
	if _, err := app.Jobs(context.Background(), JobsParams{Limit: -1, Timeout: time.Second}); err == nil {
		t.Fatal("expected limit error")
	}
}

func TestAppFolderSummaries(t *testing.T) {
	procs := append(wireProcs(), &procdashv1.Proc{Id: 4, Key: "x-9", FolderId: 9})
	stubList(t, procs, nil)

	cfg := &config.Config{Folders: []dashboard.Folder{{ID: 1, Name: "Default Folder"}, {ID: 2, Name: "Production"}, {ID: 3, Name: "Development"}}}
	app := New(Options{Config: cfg})
	got, err := app.FolderSummaries(context.Background(), FoldersParams{Timeout: time.Second})
	if err != nil {
		t.Fatalf("FolderSummaries returned error: %v", err)
	}
	want := []FolderSummary{
		{Folder: dashboard.Folder{ID: 1, Name: "Default Folder"}, Count: 2},
		{Folder: dashboard.Folder{ID: 2, Name: "Production"}, Count: 1},
		{Folder: dashboard.Folder{ID: 3, Name: "Development"}, Count: 0},
		{Folder: dashboard.Folder{ID: 9, Name: "Folder 9"}, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected summaries %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("summary %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
