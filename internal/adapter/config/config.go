package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
	"github.com/yourusername/ghexplorer/internal/domain"
)

// AppName is used for the config directory name.
const AppName = "ghx"

// Environment variables that override file values.
const (
	EnvToken      = "GHX_TOKEN"
	EnvAPIBaseURL = "GHX_API_BASE_URL"
)

// Manager handles configuration persistence.
type Manager struct {
	configPath string
	themes     []string
}

// NewManager creates a config manager for path.
// An empty path resolves to $XDG_CONFIG_HOME/ghx/config.json, or the
// platform config dir when XDG_CONFIG_HOME is unset.
func NewManager(path string) (*Manager, error) {
	if path != "" {
		return &Manager{configPath: path}, nil
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
	}

	return &Manager{
		configPath: filepath.Join(dir, AppName, "config.json"),
	}, nil
}

// WithThemes restricts ui.theme to names. Without it any theme is accepted.
func (m *Manager) WithThemes(names ...string) *Manager {
	m.themes = names
	return m
}

// Load loads the configuration from disk. A missing file yields defaults.
// The file may contain comments and trailing commas.
func (m *Manager) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", m.configPath, err)
		}
		if err := json.Unmarshal(standardized, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", m.configPath, err)
		}
	}

	applyEnv(cfg)
	m.resolvePaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}
	if err := m.checkTheme(cfg.UI.Theme); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	return cfg, nil
}

// Save writes the configuration atomically.
func (m *Manager) Save(cfg *domain.Config) error {
	if err := os.MkdirAll(m.Dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(m.configPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigPath returns the path to the config file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Dir returns the directory holding the config file.
func (m *Manager) Dir() string {
	return filepath.Dir(m.configPath)
}

func (m *Manager) checkTheme(theme string) error {
	if len(m.themes) == 0 || slices.Contains(m.themes, theme) {
		return nil
	}
	return fmt.Errorf("unknown ui.theme %q (available: %s)", theme, strings.Join(m.themes, ", "))
}

func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
}

// resolvePaths fills empty storage and log paths with files next to the config.
func (m *Manager) resolvePaths(cfg *domain.Config) {
	if cfg.Storage.Path == "" {
		name := "history.db"
		if cfg.Storage.Backend == domain.StorageFile {
			name = "history.json"
		}
		cfg.Storage.Path = filepath.Join(m.Dir(), name)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(m.Dir(), "ghx.log")
	}
}
