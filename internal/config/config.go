package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"procdash/internal/dashboard"
)

const (
	envPrefix = "PROCDASH"

	DefaultRequestTimeout      = 5 * time.Second
	DefaultOrchestratorTimeout = 30 * time.Second
	DefaultAPIHost             = "127.0.0.1"
	DefaultAPIPort             = 8336
)

// OrchestratorConfig points the daemon at an upstream orchestrator.
// An empty BaseURL keeps the daemon on its local catalog.
type OrchestratorConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Config aggregates daemon, dashboard and HTTP API settings.
type Config struct {
	CatalogPath    string             `mapstructure:"catalog_path"`
	JobsDBPath     string             `mapstructure:"jobs_db_path"`
	RequestTimeout time.Duration      `mapstructure:"request_timeout"`
	Orchestrator   OrchestratorConfig `mapstructure:"orchestrator"`
	API            APIConfig          `mapstructure:"api"`
	Folders        []dashboard.Folder `mapstructure:"folders"`
	LogFile        string             `mapstructure:"log_file"`

	// ConfigPath is the file the settings were read from, if any.
	ConfigPath string `mapstructure:"-"`
}

// Load builds a Config from an optional YAML file plus PROCDASH_* environment
// overrides (e.g. PROCDASH_ORCHESTRATOR_BASE_URL).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	dataDir := defaultDataDir()
	v.SetDefault("catalog_path", filepath.Join(dataDir, "catalog.yaml"))
	v.SetDefault("jobs_db_path", filepath.Join(dataDir, "jobs.db"))
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("orchestrator.base_url", "")
	v.SetDefault("orchestrator.token", "")
	v.SetDefault("orchestrator.timeout", DefaultOrchestratorTimeout)
	v.SetDefault("api.host", DefaultAPIHost)
	v.SetDefault("api.port", DefaultAPIPort)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigPath = path
	if len(cfg.Folders) == 0 {
		cfg.Folders = dashboard.DefaultFolders()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be > 0")
	}
	if c.Orchestrator.Timeout <= 0 {
		return errors.New("orchestrator.timeout must be > 0")
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("api.port must be between 1 and 65535, got %d", c.API.Port)
	}
	if c.UsesOrchestrator() {
		u, err := url.Parse(c.Orchestrator.BaseURL)
		if err != nil {
			return fmt.Errorf("orchestrator.base_url: %w", err)
		}
		if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("orchestrator.base_url must use http or https, got %q", u.Scheme)
		}
	} else if c.CatalogPath == "" {
		return errors.New("catalog_path is required when orchestrator.base_url is empty")
	}

	seen := make(map[int]struct{}, len(c.Folders))
	for _, f := range c.Folders {
		if f.ID <= 0 {
			return fmt.Errorf("folder id must be positive, got %d", f.ID)
		}
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("folder %d needs a name", f.ID)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("folder id %d listed twice", f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}

// UsesOrchestrator reports whether the daemon proxies an upstream orchestrator.
func (c *Config) UsesOrchestrator() bool {
	return strings.TrimSpace(c.Orchestrator.BaseURL) != ""
}

// APIAddr is the listen address of the HTTP dashboard API.
func (c *Config) APIAddr() string {
	return fmt.Sprintf("%s:%d", c.API.Host, c.API.Port)
}

func defaultDataDir() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "procdash")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "share", "procdash")
	}
	return filepath.Join(os.TempDir(), "procdash")
}
