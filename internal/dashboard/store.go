// Package dashboard holds the state behind every process dashboard view:
// search term, folder filter, sort order, the start confirmation prompt,
// and the provider's loading and error signals.
package dashboard

import (
	"context"
	"slices"
	"sync"
	"time"

	"procdash/internal/process"
)

// Provider is the orchestrator-facing side of the dashboard.
type Provider interface {
	// Fetch returns the full process set for the folder filter.
	Fetch(ctx context.Context, folder process.FolderFilter) ([]process.Process, error)
	// Start dispatches a start request.
	Start(ctx context.Context, req process.StartRequest) error
}

// EventKind identifies which asynchronous operation finished.
type EventKind int

const (
	EventFetched EventKind = iota
	EventStarted
)

// Event is delivered to Options.Notify when provider work completes.
type Event struct {
	Kind    EventKind
	Request process.StartRequest
	Err     error
}

// Options configures a Store.
type Options struct {
	// Timeout bounds each provider call. Zero means no extra bound.
	Timeout time.Duration
	// Notify is called (from the goroutine that ran the call) after a
	// fetch or start completes. It must not block.
	Notify func(Event)
}

// View is a render snapshot.
type View struct {
	Processes    []process.Process
	Total        int
	Criteria     process.Criteria
	Sort         process.SortState
	Confirmation process.Confirmation
	Loading      bool
	FetchErr     error
	Starting     bool
	StartErr     error
	LastStart    *process.StartRequest
	UpdatedAt    time.Time
}

// Store is the explicit controller behind the dashboard. All transitions
// are serialized; provider calls run on their own goroutines.
type Store struct {
	provider Provider
	opts     Options

	mu        sync.Mutex
	criteria  process.Criteria
	sort      process.SortState
	workflow  process.Workflow
	processes []process.Process
	updatedAt time.Time

	loading  bool
	fetchErr error
	fetchSeq uint64

	inFlight  int
	startSeq  uint64
	startErr  error
	lastStart *process.StartRequest

	visible []process.Process
	dirty   bool
}

// New constructs a Store with default sort and no filters.
func New(p Provider, opts Options) *Store {
	return &Store{
		provider: p,
		opts:     opts,
		sort:     process.DefaultSort(),
		dirty:    true,
	}
}

// Refresh refetches the process set for the current folder filter.
// Results of an older refresh that lands after a newer one are dropped.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	folder := s.criteria.Folder
	s.loading = true
	s.mu.Unlock()

	go s.runFetch(ctx, seq, folder)
}

func (s *Store) runFetch(ctx context.Context, seq uint64, folder process.FolderFilter) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	procs, err := s.provider.Fetch(ctx, folder)

	s.mu.Lock()
	if seq != s.fetchSeq {
		s.mu.Unlock()
		return
	}
	s.loading = false
	s.fetchErr = err
	if err == nil {
		s.processes = slices.Clone(procs)
		s.updatedAt = time.Now()
		s.dirty = true
	}
	s.mu.Unlock()

	s.notify(Event{Kind: EventFetched, Err: err})
}

// SetSearch updates the search term.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.criteria.Search == term {
		return
	}
	s.criteria.Search = term
	s.dirty = true
}

// SetFolder changes the folder filter and refetches when it changed.
func (s *Store) SetFolder(ctx context.Context, f process.FolderFilter) {
	s.mu.Lock()
	if s.criteria.Folder == f {
		s.mu.Unlock()
		return
	}
	s.criteria.Folder = f
	s.dirty = true
	s.mu.Unlock()

	s.Refresh(ctx)
}

// ToggleSort applies a click on a sortable column.
func (s *Store) ToggleSort(f process.SortField) process.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = s.sort.Toggle(f)
	s.dirty = true
	return s.sort
}

// SetSort replaces the sort state outright.
func (s *Store) SetSort(st process.SortState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sort == st {
		return
	}
	s.sort = st
	s.dirty = true
}

// RequestStart opens the confirmation prompt for p, replacing any
// pending request.
func (s *Store) RequestStart(p process.Process) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflow.Request(p)
}

// RequestStartByKey opens the prompt for the fetched process with key.
func (s *Store) RequestStartByKey(key string) (process.Process, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.processes {
		if p.Key == key {
			s.workflow.Request(p)
			return p, true
		}
	}
	return process.Process{}, false
}

// Cancel closes the prompt without starting anything.
func (s *Store) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflow.Cancel()
}

// Confirm closes the prompt and dispatches the start without waiting for
// it. The returned request is what was dispatched; false means nothing was
// pending. The outcome only shows up in View().StartErr, which always
// belongs to LastStart.
func (s *Store) Confirm(ctx context.Context) (process.StartRequest, bool) {
	s.mu.Lock()
	req, ok := s.workflow.Confirm()
	var seq uint64
	if ok {
		s.inFlight++
		s.startSeq++
		seq = s.startSeq
		s.startErr = nil
		s.lastStart = &req
	}
	s.mu.Unlock()

	if ok {
		go s.runStart(context.WithoutCancel(ctx), seq, req)
	}
	return req, ok
}

func (s *Store) runStart(ctx context.Context, seq uint64, req process.StartRequest) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	err := s.provider.Start(ctx, req)

	s.mu.Lock()
	s.inFlight--
	if seq == s.startSeq {
		s.startErr = err
	}
	s.mu.Unlock()

	s.notify(Event{Kind: EventStarted, Request: req, Err: err})
}

// Starting reports whether a start call is in flight.
func (s *Store) Starting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// View returns the current render snapshot. The visible list is only
// recomputed when one of its inputs changed.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirty {
		s.visible = process.Visible(s.processes, s.criteria, s.sort)
		s.dirty = false
	}
	v := View{
		Processes:    slices.Clone(s.visible),
		Total:        len(s.processes),
		Criteria:     s.criteria,
		Sort:         s.sort,
		Confirmation: s.workflow.Confirmation(),
		Loading:      s.loading,
		FetchErr:     s.fetchErr,
		Starting:     s.inFlight > 0,
		StartErr:     s.startErr,
		UpdatedAt:    s.updatedAt,
	}
	if s.lastStart != nil {
		req := *s.lastStart
		v.LastStart = &req
	}
	return v
}

func (s *Store) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.opts.Timeout > 0 {
		return context.WithTimeout(ctx, s.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Store) notify(ev Event) {
	if s.opts.Notify != nil {
		s.opts.Notify(ev)
	}
}
