package app

import (
	"context"
	"errors"
	"testing"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/dashboard"
	"procdash/internal/jobs"
	"procdash/internal/process"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppStartResolvesFolder(t *testing.T) {
	var captured *procdashv1.StartRequest
	stubList(t, wireProcs(), func(method string, args, reply interface{}) error {
		if method != procdashv1.ProcDash_Start_FullMethodName {
			t.Fatalf("unexpected method %s", method)
		}
		captured = args.(*procdashv1.StartRequest)
		reply.(*procdashv1.StartResponse).Job = &procdashv1.Job{Id: "job-1", ProcessKey: captured.GetKey(), FolderId: captured.GetFolderId(), State: "Running"}
		return nil
	})

	app := New(Options{})
	res, err := app.Start(context.Background(), StartParams{Key: " orph-3 ", Timeout: time.Second})
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if captured.GetKey() != "orph-3" || captured.GetFolderId() != 1 {
		t.Fatalf("folderless process should start in folder 1, got %+v", captured)
	}
	if res.Request != (process.StartRequest{Key: "orph-3", FolderID: 1}) || res.Job.ID != "job-1" || res.Job.State != jobs.StateRunning {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestAppStartUnknownKey(t *testing.T) {
	stubList(t, wireProcs(), nil)
	app := New(Options{})

	_, err := app.Start(context.Background(), StartParams{Key: "missing", Timeout: time.Second})
	if !errors.Is(err, ErrUnknownProcess) {
		t.Fatalf("expected ErrUnknownProcess, got %v", err)
	}
	_, err = app.Start(context.Background(), StartParams{Key: "inv-1", Folder: 1, Timeout: time.Second})
	if !errors.Is(err, ErrUnknownProcess) || err.Error() != `unknown process "inv-1" in folder 1` {
		t.Fatalf("expected folder-scoped error, got %v", err)
	}
	if _, err := app.Start(context.Background(), StartParams{Key: "  ", Timeout: time.Second}); err == nil {
		t.Fatal("expected empty key error")
	}
}

func TestAppDispatchWrapsRPCError(t *testing.T) {
	stubInvoke(t, func(method string, args, reply interface{}) error {
		return status.Error(codes.NotFound, "release not found")
	})
	app := New(Options{})
	_, err := app.Dispatch(context.Background(), process.StartRequest{Key: "k", FolderID: 2}, time.Second)
	if err == nil || status.Code(errors.Unwrap(err)) != codes.NotFound {
		t.Fatalf("expected wrapped NotFound, got %v", err)
	}
	if _, err := app.Dispatch(context.Background(), process.StartRequest{Key: "k"}, time.Second); err == nil {
		t.Fatal("expected validation error for folder 0")
	}
}

func TestProviderDrivesStore(t *testing.T) {
	started := make(chan *procdashv1.StartRequest, 1)
	stubList(t, wireProcs(), func(method string, args, reply interface{}) error {
		started <- args.(*procdashv1.StartRequest)
		return nil
	})

	app := New(Options{})
	events := make(chan dashboard.Event, 4)
	store := dashboard.New(app.Provider(), dashboard.Options{Timeout: time.Second, Notify: func(ev dashboard.Event) { events <- ev }})

	store.SetFolder(context.Background(), 2)
	select {
	case ev := <-events:
		if ev.Kind != dashboard.EventFetched || ev.Err != nil {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fetch")
	}
	if v := store.View(); len(v.Processes) != 1 || v.Processes[0].Key != "inv-1" {
		t.Fatalf("unexpected view %+v", v.Processes)
	}

	if _, ok := store.RequestStartByKey("inv-1"); !ok {
		t.Fatal("expected process to be pending")
	}
	if _, ok := store.Confirm(context.Background()); !ok {
		t.Fatal("expected dispatch")
	}
	select {
	case req := <-started:
		if req.GetKey() != "inv-1" || req.GetFolderId() != 2 {
			t.Fatalf("unexpected start %+v", req)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for start")
	}
}
