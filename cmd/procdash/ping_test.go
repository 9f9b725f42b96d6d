package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"procdash/internal/app"
	"procdash/internal/config"
	"procdash/internal/dashboard"
	"procdash/internal/jobs"
	"procdash/internal/process"

	"github.com/spf13/cobra"
)

type stubController struct {
	pingFunc     func(ctx context.Context, timeout time.Duration) (string, error)
	listFunc     func(ctx context.Context, params app.ListParams) (app.ListResult, error)
	resolveFunc  func(ctx context.Context, params app.StartParams) (process.Process, error)
	dispatchFunc func(ctx context.Context, req process.StartRequest, timeout time.Duration) (jobs.Job, error)
	resetFunc    func(ctx context.Context, params app.ResetParams) error
}

func (s *stubController) Config() (*config.Config, error) {
	panic("Config not implemented")
}

func (s *stubController) Folders() []dashboard.Folder {
	return dashboard.DefaultFolders()
}

func (s *stubController) RequestTimeout() time.Duration {
	return config.DefaultRequestTimeout
}

func (s *stubController) Provider() *app.Provider {
	panic("Provider not implemented")
}

func (s *stubController) Ping(ctx context.Context, timeout time.Duration) (string, error) {
	if s.pingFunc != nil {
		return s.pingFunc(ctx, timeout)
	}
	return "", errors.New("ping not implemented")
}

func (s *stubController) List(ctx context.Context, params app.ListParams) (app.ListResult, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, params)
	}
	panic("List not implemented")
}

func (s *stubController) Resolve(ctx context.Context, params app.StartParams) (process.Process, error) {
	if s.resolveFunc != nil {
		return s.resolveFunc(ctx, params)
	}
	panic("Resolve not implemented")
}

func (s *stubController) Dispatch(ctx context.Context, req process.StartRequest, timeout time.Duration) (jobs.Job, error) {
	if s.dispatchFunc != nil {
		return s.dispatchFunc(ctx, req, timeout)
	}
	panic("Dispatch not implemented")
}

func (s *stubController) Add(ctx context.Context, params app.AddParams) (app.AddResult, error) {
	panic("Add not implemented")
}

func (s *stubController) Remove(ctx context.Context, params app.RemoveParams) (app.RemoveResult, error) {
	panic("Remove not implemented")
}

func (s *stubController) Reset(ctx context.Context, params app.ResetParams) error {
	if s.resetFunc != nil {
		return s.resetFunc(ctx, params)
	}
	panic("Reset not implemented")
}

func (s *stubController) Jobs(ctx context.Context, params app.JobsParams) ([]jobs.Job, error) {
	panic("Jobs not implemented")
}

func (s *stubController) FolderSummaries(ctx context.Context, params app.FoldersParams) ([]app.FolderSummary, error) {
	panic("FolderSummaries not implemented")
}

func (s *stubController) Status() (app.DaemonStatus, error) {
	panic("Status not implemented")
}

func (s *stubController) StopDaemon(force bool) error {
	panic("StopDaemon not implemented")
}

func (s *stubController) StartDaemon() (*app.DaemonHandle, error) {
	panic("StartDaemon not implemented")
}

func withController(t *testing.T, stub controllerAPI) {
	t.Helper()
	origFactory := controllerFactory
	controllerFactory = func() controllerAPI {
		return stub
	}
	t.Cleanup(func() {
		controllerFactory = origFactory
	})
}

func withOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	t.Cleanup(func() {
		cmd.SetOut(nil)
	})
	return buf
}

func TestPingSuccess(t *testing.T) {
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (string, error) {
			if timeout != 2*time.Second {
				t.Fatalf("expected timeout 2s, got %v", timeout)
			}
			return "pong", nil
		},
	})
	buf := withOutput(t, cmdPing)

	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 2
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	if err := cmdPing.RunE(cmdPing, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "pong (") || !strings.HasSuffix(got, ")\n") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPingDaemonDownHint(t *testing.T) {
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (string, error) {
			return "", app.ErrDaemonNotRunning
		},
	})
	err := cmdPing.RunE(cmdPing, nil)
	if !errors.Is(err, app.ErrDaemonNotRunning) || !strings.Contains(err.Error(), "procdash daemon") {
		t.Fatalf("expected start hint, got %v", err)
	}
}

func TestPingError(t *testing.T) {
	expected := errors.New("daemon down")
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (string, error) {
			return "", expected
		},
	})
	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 1
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	err := cmdPing.RunE(cmdPing, nil)
	if !errors.Is(err, expected) {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}

func TestResetRequiresConfirmWord(t *testing.T) {
	var got app.ResetParams
	withController(t, &stubController{
		resetFunc: func(ctx context.Context, params app.ResetParams) error {
			got = params
			return nil
		},
	})
	withOutput(t, cmdReset)

	old := resetConfirm
	t.Cleanup(func() { resetConfirm = old })

	resetConfirm = "reset"
	if err := cmdReset.RunE(cmdReset, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got.Confirmed {
		t.Fatal("lowercase confirmation must not count")
	}

	resetConfirm = " RESET "
	if err := cmdReset.RunE(cmdReset, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if !got.Confirmed || got.Timeout != config.DefaultRequestTimeout {
		t.Fatalf("unexpected params %+v", got)
	}
}
