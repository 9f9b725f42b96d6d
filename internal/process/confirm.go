package process

// Confirmation is the renderable state of the start prompt.
type Confirmation struct {
	Open    bool
	Process Process
}

// Prompt is the question shown while a start is pending.
func (c Confirmation) Prompt() string {
	if !c.Open {
		return ""
	}
	return `Are you sure you want to start the process "` + c.Process.Name + `"?`
}

// Workflow gates the start action behind an explicit confirmation.
// It has two states: idle and pending on exactly one process.
// The zero value is an idle workflow.
type Workflow struct {
	pending *Process
}

// Request opens the prompt for p. A request made while another process is
// pending replaces it.
func (w *Workflow) Request(p Process) {
	w.pending = &p
}

// Cancel closes the prompt without starting anything.
func (w *Workflow) Cancel() {
	w.pending = nil
}

// Confirm closes the prompt and returns the start request for the pending
// process. It returns false when nothing was pending. The workflow is idle
// again before the caller dispatches the request.
func (w *Workflow) Confirm() (StartRequest, bool) {
	if w.pending == nil {
		return StartRequest{}, false
	}
	req := NewStartRequest(*w.pending)
	w.pending = nil
	return req, true
}

// Pending returns the process awaiting confirmation, if any.
func (w *Workflow) Pending() (Process, bool) {
	if w.pending == nil {
		return Process{}, false
	}
	return *w.pending, true
}

// Confirmation returns a snapshot of the prompt state.
func (w *Workflow) Confirmation() Confirmation {
	p, ok := w.Pending()
	return Confirmation{Open: ok, Process: p}
}
