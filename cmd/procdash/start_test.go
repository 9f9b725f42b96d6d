package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"procdash/internal/app"
	"procdash/internal/jobs"
	"procdash/internal/process"
)

func withTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return isTTY }
	t.Cleanup(func() { stdinIsTerminal = orig })
}

func withStartFlags(t *testing.T, yes bool, folder string) {
	t.Helper()
	oldYes, oldFolder, oldTimeout := startYes, startFolder, startTimeout
	startYes, startFolder, startTimeout = yes, folder, 3
	t.Cleanup(func() {
		startYes, startFolder, startTimeout = oldYes, oldFolder, oldTimeout
	})
}

type startRecorder struct {
	dispatched []process.StartRequest
}

func (r *startRecorder) stub(t *testing.T) *stubController {
	return &stubController{
		resolveFunc: func(ctx context.Context, params app.StartParams) (process.Process, error) {
			if params.Timeout != 3*time.Second {
				t.Fatalf("expected timeout 3s, got %v", params.Timeout)
			}
			if params.Key != "inv-1" {
				return process.Process{}, app.ErrUnknownProcess
			}
			return process.Process{Name: "Invoice Bot", Key: "inv-1"}, nil
		},
		dispatchFunc: func(ctx context.Context, req process.StartRequest, timeout time.Duration) (jobs.Job, error) {
			r.dispatched = append(r.dispatched, req)
			return jobs.Job{ID: "job-1", ProcessKey: req.Key, FolderID: req.FolderID, State: jobs.StateRunning}, nil
		},
	}
}

func TestStartConfirmed(t *testing.T) {
	rec := &startRecorder{}
	withController(t, rec.stub(t))
	withTerminal(t, true)
	withStartFlags(t, false, "all")
	buf := withOutput(t, cmdStart)
	cmdStart.SetIn(strings.NewReader("y\n"))
	t.Cleanup(func() { cmdStart.SetIn(nil) })

	if err := cmdStart.RunE(cmdStart, []string{"inv-1"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if len(rec.dispatched) != 1 || rec.dispatched[0] != (process.StartRequest{Key: "inv-1", FolderID: 1}) {
		t.Fatalf("unexpected dispatches %+v", rec.dispatched)
	}
	out := buf.String()
	if !strings.Contains(out, `Are you sure you want to start the process "Invoice Bot"? [y/N]: `) {
		t.Fatalf("prompt missing from output %q", out)
	}
	if !strings.Contains(out, "Started Invoice Bot (inv-1) in folder 1, job job-1 [Running]") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStartDeclined(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "maybe\n", ""} {
		rec := &startRecorder{}
		withController(t, rec.stub(t))
		withTerminal(t, true)
		withStartFlags(t, false, "all")
		buf := withOutput(t, cmdStart)
		cmdStart.SetIn(strings.NewReader(answer))

		if err := cmdStart.RunE(cmdStart, []string{"inv-1"}); err != nil {
			t.Fatalf("answer %q: RunE error: %v", answer, err)
		}
		if len(rec.dispatched) != 0 {
			t.Fatalf("answer %q must not dispatch, got %+v", answer, rec.dispatched)
		}
		if !strings.HasSuffix(buf.String(), "Cancelled.\n") {
			t.Fatalf("answer %q: unexpected output %q", answer, buf.String())
		}
	}
	cmdStart.SetIn(nil)
}

func TestStartWithoutTerminalNeedsYes(t *testing.T) {
	rec := &startRecorder{}
	withController(t, rec.stub(t))
	withTerminal(t, false)
	withStartFlags(t, false, "all")
	withOutput(t, cmdStart)

	err := cmdStart.RunE(cmdStart, []string{"inv-1"})
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected --yes hint, got %v", err)
	}
	if len(rec.dispatched) != 0 {
		t.Fatalf("must not dispatch without confirmation, got %+v", rec.dispatched)
	}

	withStartFlags(t, true, "all")
	if err := cmdStart.RunE(cmdStart, []string{"inv-1"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if len(rec.dispatched) != 1 {
		t.Fatalf("--yes should dispatch once, got %+v", rec.dispatched)
	}
}

func TestStartErrors(t *testing.T) {
	rec := &startRecorder{}
	withController(t, rec.stub(t))
	withTerminal(t, false)
	withStartFlags(t, true, "all")
	withOutput(t, cmdStart)

	if err := cmdStart.RunE(cmdStart, []string{"nope"}); !errors.Is(err, app.ErrUnknownProcess) {
		t.Fatalf("expected ErrUnknownProcess, got %v", err)
	}

	withStartFlags(t, true, "zero")
	if err := cmdStart.RunE(cmdStart, []string{"inv-1"}); err == nil {
		t.Fatal("expected invalid folder error")
	}
	if len(rec.dispatched) != 0 {
		t.Fatalf("unexpected dispatches %+v", rec.dispatched)
	}
}
