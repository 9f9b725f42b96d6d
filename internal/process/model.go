package process

import "fmt"

// DefaultFolderID is used whenever a record does not carry a folder.
const DefaultFolderID = 1

// Status is the derived availability of a process.
type Status int

const (
	StatusAvailable Status = iota
	StatusRunning
	StatusFailed
	StatusStopped
	StatusPending
)

var statusNames = [...]string{
	StatusAvailable: "Available",
	StatusRunning:   "Running",
	StatusFailed:    "Failed",
	StatusStopped:   "Stopped",
	StatusPending:   "Pending",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Process is one automation process as reported by the orchestrator.
// Values are read-only once fetched.
type Process struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Key         string `json:"key" yaml:"key"`
	Version     string `json:"processVersion,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	FolderID    int    `json:"folderId,omitempty" yaml:"folder,omitempty"`
}

// Folder resolves the owning folder, falling back to DefaultFolderID.
func (p Process) Folder() int {
	if p.FolderID <= 0 {
		return DefaultFolderID
	}
	return p.FolderID
}

// Status is always StatusAvailable until a live status feed exists.
func (p Process) Status() Status {
	return StatusAvailable
}

// StartRequest is what gets handed to the provider when a start is confirmed.
type StartRequest struct {
	Key      string
	FolderID int
}

// NewStartRequest builds the start call for p.
func NewStartRequest(p Process) StartRequest {
	return StartRequest{Key: p.Key, FolderID: p.Folder()}
}

// Validate checks the invariants the provider relies on.
func (r StartRequest) Validate() error {
	if r.Key == "" {
		return fmt.Errorf("process key is required")
	}
	if r.FolderID <= 0 {
		return fmt.Errorf("invalid folder id %d", r.FolderID)
	}
	return nil
}
