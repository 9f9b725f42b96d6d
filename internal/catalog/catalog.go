// Package catalog is the daemon's local process catalog: a threadsafe
// in-memory index persisted as a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"procdash/internal/process"
)

var (
	ErrNotFound = errors.New("process not found")
	ErrExists   = errors.New("process already exists")
	ErrInvalid  = errors.New("invalid process")
)

// Catalog indexes processes by id, key and folder.
type Catalog struct {
	mu       sync.RWMutex
	nextID   int64
	byID     map[int64]*process.Process
	byKey    map[string]int64
	byFolder map[int]map[int64]struct{}

	// Where to snapshot. If empty, snapshotting is disabled.
	Path   string
	saveMu sync.Mutex
}

// New loads the catalog file if present and returns a ready catalog.
func New(path string) (*Catalog, error) {
	c := &Catalog{Path: path}
	c.resetLocked()
	if path != "" {
		if err := c.load(path); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
	}
	return c, nil
}

func (c *Catalog) resetLocked() {
	c.nextID = 1
	c.byID = make(map[int64]*process.Process)
	c.byKey = make(map[string]int64)
	c.byFolder = make(map[int]map[int64]struct{})
}

func (c *Catalog) indexLocked(p *process.Process) {
	c.byID[p.ID] = p
	c.byKey[p.Key] = p.ID
	f := p.Folder()
	if _, ok := c.byFolder[f]; !ok {
		c.byFolder[f] = make(map[int64]struct{})
	}
	c.byFolder[f][p.ID] = struct{}{}
	if p.ID >= c.nextID {
		c.nextID = p.ID + 1
	}
}

// Add registers p under a fresh id. The key must be unique.
func (c *Catalog) Add(p process.Process) (int64, error) {
	key, err := normalizeKey(p.Key)
	if err != nil {
		return 0, err
	}
	p.Key = key
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = key
	}
	if p.FolderID < 0 {
		return 0, fmt.Errorf("%w: folder id must not be negative", ErrInvalid)
	}

	c.mu.Lock()
	if id, ok := c.byKey[key]; ok {
		c.mu.Unlock()
		return id, fmt.Errorf("%w: %s", ErrExists, key)
	}
	p.ID = c.nextID
	proc := p
	c.indexLocked(&proc)
	c.mu.Unlock()

	c.maybeSave()
	return p.ID, nil
}

// Remove deletes the process with the given key.
func (c *Catalog) Remove(key string) error {
	key = strings.TrimSpace(key)
	c.mu.Lock()
	id, ok := c.byKey[key]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	p := c.byID[id]
	delete(c.byID, id)
	delete(c.byKey, key)
	f := p.Folder()
	delete(c.byFolder[f], id)
	if len(c.byFolder[f]) == 0 {
		delete(c.byFolder, f)
	}
	c.mu.Unlock()

	c.maybeSave()
	return nil
}

// Reset clears the catalog and resets the id counter.
func (c *Catalog) Reset() {
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()

	c.maybeSave()
}

// Get returns a copy of the process with the given key.
func (c *Catalog) Get(key string) (process.Process, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.byKey[strings.TrimSpace(key)]
	if !ok {
		return process.Process{}, false
	}
	return *c.byID[id], true
}

// List returns the processes in the selected folder, sorted by id.
func (c *Catalog) List(folder process.FolderFilter) []process.Process {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var ids []int64
	if folder.Set() {
		for id := range c.byFolder[int(folder)] {
			ids = append(ids, id)
		}
	} else {
		ids = make([]int64, 0, len(c.byID))
		for id := range c.byID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]process.Process, 0, len(ids))
	for _, id := range ids {
		out = append(out, *c.byID[id])
	}
	return out
}

// Len reports the number of cataloged processes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

// maybeSave performs a best-effort snapshot write if a path is configured.
func (c *Catalog) maybeSave() {
	if c.Path == "" {
		return
	}
	if err := c.save(c.Path); err != nil {
		log.Printf("catalog snapshot failed: %v", err)
	}
}
