// Package jobs records dispatched process starts in a SQLite ledger.
package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS job (
	id TEXT PRIMARY KEY,
	process_key TEXT NOT NULL,
	folder_id INTEGER NOT NULL,
	state TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_job_process_key ON job(process_key);
CREATE INDEX IF NOT EXISTS idx_job_created_at ON job(created_at);
`

// DefaultLimit bounds List when the caller passes no limit.
const DefaultLimit = 50

var ErrNotFound = errors.New("job not found")

// State follows the orchestrator's job lifecycle.
type State string

const (
	StatePending    State = "Pending"
	StateRunning    State = "Running"
	StateSuccessful State = "Successful"
	StateFaulted    State = "Faulted"
)

// Job is one recorded start.
type Job struct {
	ID         string    `json:"id"`
	ProcessKey string    `json:"processKey"`
	FolderID   int       `json:"folderId"`
	State      State     `json:"state"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type jobRow struct {
	ID         string `db:"id"`
	ProcessKey string `db:"process_key"`
	FolderID   int    `db:"folder_id"`
	State      string `db:"state"`
	Error      string `db:"error"`
	CreatedAt  int64  `db:"created_at"`
	UpdatedAt  int64  `db:"updated_at"`
}

func (r jobRow) job() Job {
	return Job{
		ID:         r.ID,
		ProcessKey: r.ProcessKey,
		FolderID:   r.FolderID,
		State:      State(r.State),
		Error:      r.Error,
		CreatedAt:  time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt:  time.UnixMilli(r.UpdatedAt).UTC(),
	}
}

// Filter narrows List.
type Filter struct {
	ProcessKey string
	Limit      int
}

// Ledger is the SQLite-backed job store.
type Ledger struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open connects to the ledger at path, creating the schema if needed.
// Use ":memory:" for a throwaway ledger.
func Open(path string) (*Ledger, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to job ledger: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps :memory: coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Ledger{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record inserts a pending job for a start that is about to be dispatched.
func (l *Ledger) Record(ctx context.Context, processKey string, folderID int) (Job, error) {
	ts := l.now().UnixMilli()
	row := jobRow{
		ID:         uuid.New().String(),
		ProcessKey: processKey,
		FolderID:   folderID,
		State:      string(StatePending),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	query := `
		INSERT INTO job (id, process_key, folder_id, state, error, created_at, updated_at)
		VALUES (:id, :process_key, :folder_id, :state, :error, :created_at, :updated_at)
	`
	if _, err := l.db.NamedExecContext(ctx, query, row); err != nil {
		return Job{}, fmt.Errorf("failed to record job: %w", err)
	}
	return row.job(), nil
}

// Finish moves a job to Running when dispatch succeeded, or Faulted with
// the dispatch error otherwise.
func (l *Ledger) Finish(ctx context.Context, id string, dispatchErr error) (Job, error) {
	state, msg := StateRunning, ""
	if dispatchErr != nil {
		state, msg = StateFaulted, dispatchErr.Error()
	}
	return l.SetState(ctx, id, state, msg)
}

// SetState overwrites the state and error text of a job.
func (l *Ledger) SetState(ctx context.Context, id string, state State, msg string) (Job, error) {
	query := `UPDATE job SET state = ?, error = ?, updated_at = ? WHERE id = ?`
	result, err := l.db.ExecContext(ctx, query, string(state), msg, l.now().UnixMilli(), id)
	if err != nil {
		return Job{}, fmt.Errorf("failed to update job: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return Job{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return Job{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return l.Get(ctx, id)
}

func (l *Ledger) Get(ctx context.Context, id string) (Job, error) {
	var row jobRow
	err := l.db.GetContext(ctx, &row, `SELECT * FROM job WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Job{}, fmt.Errorf("failed to find job: %w", err)
	}
	return row.job(), nil
}

// List returns jobs newest first.
func (l *Ledger) List(ctx context.Context, f Filter) ([]Job, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	query := `SELECT * FROM job`
	args := []any{}
	if f.ProcessKey != "" {
		query += ` WHERE process_key = ?`
		args = append(args, f.ProcessKey)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	var rows []jobRow
	if err := l.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	out := make([]Job, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.job())
	}
	return out, nil
}

// Purge deletes every job.
func (l *Ledger) Purge(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM job`); err != nil {
		return fmt.Errorf("failed to purge jobs: %w", err)
	}
	return nil
}
