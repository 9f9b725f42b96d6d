package app

import (
	"context"
	"reflect"
	"testing"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/process"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestAppAdd(t *testing.T) {
	var captured *procdashv1.RegisterRequest
	stubInvoke(t, func(method string, args, reply interface{}) error {
		captured = args.(*procdashv1.RegisterRequest)
		reply.(*procdashv1.RegisterResponse).Id = 99
		return nil
	})

	app := New(Options{})
	res, err := app.Add(context.Background(), AddParams{
		Process: process.Process{Key: " inv-1 ", Name: " Invoice Bot ", Version: "1.0.3", FolderID: 2},
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if res.ID != 99 || res.AlreadyExists {
		t.Fatalf("unexpected result %+v", res)
	}
	want := &procdashv1.Proc{Key: "inv-1", Name: "Invoice Bot", Version: "1.0.3", FolderId: 2}
	if !reflect.DeepEqual(captured.GetProc(), want) {
		t.Fatalf("unexpected request %+v", captured.GetProc())
	}
}

func TestAppAddAlreadyExists(t *testing.T) {
	stubInvoke(t, func(method string, args, reply interface{}) error {
		return status.Error(codes.AlreadyExists, "process already exists: inv-1")
	})
	app := New(Options{})
	res, err := app.Add(context.Background(), AddParams{Process: process.Process{Key: "inv-1"}, Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AlreadyExists || res.ExistingReason != "process already exists: inv-1" {
		t.Fatalf("expected already exists info, got %+v", res)
	}
}

func TestAppAddRejectsInput(t *testing.T) {
	app := New(Options{})
	if _, err := app.Add(context.Background(), AddParams{Process: process.Process{Key: " "}, Timeout: time.Second}); err == nil {
		t.Fatal("expected key error")
	}
	if _, err := app.Add(context.Background(), AddParams{Process: process.Process{Key: "k", FolderID: -2}, Timeout: time.Second}); err == nil {
		t.Fatal("expected folder error")
	}
}

func TestAppRemove(t *testing.T) {
	stubInvoke(t, func(method string, args, reply interface{}) error {
		if args.(*procdashv1.RemoveRequest).GetKey() == "gone" {
			return status.Error(codes.NotFound, "process not found: gone")
		}
		return nil
	})
	app := New(Options{})
	res, err := app.Remove(context.Background(), RemoveParams{Keys: []string{"a-2", "gone"}, Timeout: time.Second})
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if !reflect.DeepEqual(res.Removed, []string{"a-2"}) || !reflect.DeepEqual(res.Missing, []string{"gone"}) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestAppRemoveFailure(t *testing.T) {
	stubInvoke(t, func(method string, args, reply interface{}) error {
		return status.Error(codes.FailedPrecondition, "read-only")
	})
	app := New(Options{})
	if _, err := app.Remove(context.Background(), RemoveParams{Keys: []string{"a-2"}, Timeout: time.Second}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := app.Remove(context.Background(), RemoveParams{Timeout: time.Second}); err == nil || err.Error() != "provide at least one process key" {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestAppReset(t *testing.T) {
	called := false
	stubInvoke(t, func(method string, args, reply interface{}) error {
		if _, ok := args.(*emptypb.Empty); !ok || method != procdashv1.ProcDash_Reset_FullMethodName {
			t.Fatalf("unexpected call %s %T", method, args)
		}
		called = true
		return nil
	})
	app := New(Options{})
	if err := app.Reset(context.Background(), ResetParams{Timeout: time.Second}); err == nil {
		t.Fatal("expected confirmation error")
	}
	if called {
		t.Fatal("unconfirmed reset must not reach the daemon")
	}
	if err := app.Reset(context.Background(), ResetParams{Timeout: time.Second, Confirmed: true}); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if !called {
		t.Fatal("expected reset RPC")
	}
}
