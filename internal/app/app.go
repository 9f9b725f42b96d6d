package app

import (
	"sync"
	"time"

	"procdash/internal/config"
	"procdash/internal/dashboard"
)

// Options configures the top-level controller.
type Options struct {
	// ConfigPath points to the optional YAML config file.
	ConfigPath string
	// Config, when set, is used instead of loading ConfigPath.
	Config *config.Config
}

// App exposes high-level operations that the CLI, TUI and HTTP API reuse.
type App struct {
	cfgPath string

	once   sync.Once
	cfg    *config.Config
	cfgErr error
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	a := &App{cfgPath: opts.ConfigPath}
	if opts.Config != nil {
		a.cfg = opts.Config
		a.once.Do(func() {})
	}
	return a
}

// ConfigPath returns the configured config file path (if any).
func (a *App) ConfigPath() string {
	return a.cfgPath
}

// Config loads the configuration on first use.
func (a *App) Config() (*config.Config, error) {
	a.once.Do(func() {
		a.cfg, a.cfgErr = config.Load(a.cfgPath)
	})
	return a.cfg, a.cfgErr
}

// Folders returns the configured folders, or the defaults when the
// configuration cannot be loaded.
func (a *App) Folders() []dashboard.Folder {
	cfg, err := a.Config()
	if err != nil || len(cfg.Folders) == 0 {
		return dashboard.DefaultFolders()
	}
	return cfg.Folders
}

// RequestTimeout bounds a single daemon call.
func (a *App) RequestTimeout() time.Duration {
	cfg, err := a.Config()
	if err != nil {
		return config.DefaultRequestTimeout
	}
	return cfg.RequestTimeout
}
