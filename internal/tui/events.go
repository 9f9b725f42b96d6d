package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"procdash/internal/dashboard"
)

// eventQueue collects store events for the Bubble Tea loop. push never
// blocks and never drops; the loop drains everything queued on each wake.
type eventQueue struct {
	mu      sync.Mutex
	pending []dashboard.Event
	wake    chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{wake: make(chan struct{}, 1)}
}

func (q *eventQueue) push(ev dashboard.Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *eventQueue) drain() []dashboard.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

func waitForEvents(q *eventQueue) tea.Cmd {
	return func() tea.Msg {
		<-q.wake
		return storeEventMsg{events: q.drain()}
	}
}
