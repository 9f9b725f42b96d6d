package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"procdash/internal/process"
)

const snapshotVersion = 1

type snapshot struct {
	Version int               `yaml:"version"`
	Value   []process.Process `yaml:"value"`
}

// decodeProcesses accepts either a bare YAML sequence of processes or a
// mapping carrying them under "value".
func decodeProcesses(data []byte) ([]process.Process, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var out []process.Process
		if err := doc.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	case yaml.MappingNode:
		var s snapshot
		if err := doc.Decode(&s); err != nil {
			return nil, err
		}
		return s.Value, nil
	case yaml.ScalarNode:
		if doc.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("unexpected catalog document at line %d", doc.Line)
}

func (c *Catalog) load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	procs, err := decodeProcesses(b)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
	for i := range procs {
		p := procs[i]
		key, err := normalizeKey(p.Key)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		p.Key = key
		if _, dup := c.byKey[key]; dup {
			return fmt.Errorf("entry %d: %w: %s", i+1, ErrExists, key)
		}
		if p.ID <= 0 || c.byID[p.ID] != nil {
			p.ID = c.nextID
		}
		if p.Name == "" {
			p.Name = key
		}
		c.indexLocked(&p)
	}
	return nil
}

// save writes a snapshot of the catalog. saveMu is held from snapshot to
// rename so a newer snapshot is never replaced by an older one.
func (c *Catalog) save(path string) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	c.mu.RLock()
	s := snapshot{Version: snapshotVersion, Value: make([]process.Process, 0, len(c.byID))}
	for _, p := range c.byID {
		s.Value = append(s.Value, *p)
	}
	c.mu.RUnlock()
	sort.Slice(s.Value, func(i, j int) bool { return s.Value[i].ID < s.Value[j].ID })

	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
