package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Storage backends for the search history.
const (
	StorageBolt = "bolt"
	StorageFile = "file"
)

// DefaultAPIBaseURL is the public GitHub REST endpoint.
const DefaultAPIBaseURL = "https://api.github.com/"

// Config represents the complete ghx configuration
type Config struct {
	APIBaseURL            string        `json:"api_base_url"`
	Token                 string        `json:"token,omitempty"`
	RequestTimeoutSeconds int           `json:"request_timeout_seconds"`
	Storage               StorageConfig `json:"storage"`
	UI                    UIConfig      `json:"ui"`
	Log                   LogConfig     `json:"log"`
}

// StorageConfig selects where the search history lives
type StorageConfig struct {
	Backend string `json:"backend"` // "bolt" or "file"
	Path    string `json:"path"`    // empty means next to the config file
}

// UIConfig holds UI/theme settings
type UIConfig struct {
	Theme string `json:"theme"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `json:"level"` // "debug", "info", "warn", "error"
	File  string `json:"file"`  // empty means next to the config file
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		APIBaseURL:            DefaultAPIBaseURL,
		RequestTimeoutSeconds: 30,
		Storage: StorageConfig{
			Backend: StorageBolt,
		},
		UI: UIConfig{
			Theme: "claude-warm",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_base_url must be an absolute URL, got %q", c.APIBaseURL)
	}

	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive")
	}

	if c.Storage.Backend != StorageBolt && c.Storage.Backend != StorageFile {
		return fmt.Errorf("storage.backend must be '%s' or '%s'", StorageBolt, StorageFile)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}

	return nil
}
