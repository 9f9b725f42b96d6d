package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"procdash/internal/app"
	"procdash/internal/dashboard"
	"procdash/internal/jobs"
	"procdash/internal/process"
)

type fakeProvider struct {
	procs   []process.Process
	started chan process.StartRequest
}

func (p *fakeProvider) Fetch(_ context.Context, folder process.FolderFilter) ([]process.Process, error) {
	var out []process.Process
	for _, proc := range p.procs {
		if folder.Matches(proc) {
			out = append(out, proc)
		}
	}
	return out, nil
}

func (p *fakeProvider) Start(_ context.Context, req process.StartRequest) error {
	p.started <- req
	return nil
}

type fakeBackend struct {
	mu         sync.Mutex
	listParams app.ListParams
	jobsParams app.JobsParams
	err        error
	jobs       []jobs.Job
}

func (b *fakeBackend) List(_ context.Context, params app.ListParams) (app.ListResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listParams = params
	if b.err != nil {
		return app.ListResult{}, b.err
	}
	procs := process.Visible(sampleProcesses, process.Criteria{Search: params.Search, Folder: params.Folder}, params.Sort)
	return app.ListResult{Processes: procs, Total: len(sampleProcesses)}, nil
}

func (b *fakeBackend) Jobs(_ context.Context, params app.JobsParams) ([]jobs.Job, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jobsParams = params
	if b.err != nil {
		return nil, b.err
	}
	return b.jobs, nil
}

var sampleProcesses = []process.Process{
	{ID: 1, Name: "Invoice Bot", Key: "inv-1", Version: "1.0.3", FolderID: 2},
	{ID: 2, Name: "alpha", Key: "a-2", Description: "Reconciles ledgers", FolderID: 1},
	{ID: 3, Name: "Payroll", Key: "pay-3"},
}

var errUpstream = errors.New("daemon is not running")

// testEnv holds a router wired to fakes.
type testEnv struct {
	router   *gin.Engine
	store    *dashboard.Store
	provider *fakeProvider
	backend  *fakeBackend
	events   chan dashboard.Event
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		provider: &fakeProvider{procs: sampleProcesses, started: make(chan process.StartRequest, 1)},
		backend:  &fakeBackend{},
		events:   make(chan dashboard.Event, 8),
	}
	env.store = dashboard.New(env.provider, dashboard.Options{
		Timeout: time.Second,
		Notify:  func(ev dashboard.Event) { env.events <- ev },
	})

	gin.SetMode(gin.TestMode)
	env.router = gin.New()
	env.router.Use(ErrorHandlerMiddleware())
	folders := dashboard.DefaultFolders()
	registerRoutes(env.router,
		NewDashboardHandler(env.store, folders),
		NewProcessHandler(env.backend, folders, time.Second),
	)
	return env
}

func (env *testEnv) waitEvent(t *testing.T) dashboard.Event {
	t.Helper()
	select {
	case ev := <-env.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for store event")
		return dashboard.Event{}
	}
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}
