package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// SetupLogging points the standard logger at log_file (and stderr) when one
// is configured. The returned file is nil when logging stays on stderr.
func (c *Config) SetupLogging(prefix string) (*os.File, error) {
	if prefix != "" {
		log.SetPrefix("[" + prefix + "] ")
	}
	if c.LogFile == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", c.LogFile, err)
	}
	log.SetOutput(io.MultiWriter(f, os.Stderr))
	return f, nil
}
