package config

import "time"

// Config is the persisted CLI configuration.
type Config struct {
	BaseURL    string `toml:"base_url"`
	Timeout    string `toml:"timeout,omitempty"`
	MaxRetries int    `toml:"max_retries,omitempty"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	Path   string
	Config Config
	// BaseURLOverride comes from the environment or --base-url and is never saved.
	BaseURLOverride string
}

type ServiceInterface interface {
	// GetConfig returns the loaded config
	GetConfig() *Config
	// BaseURL returns the effective API base URL, applying overrides
	BaseURL() (string, error)
	// RequestTimeout returns the parsed per-request timeout, zero when unset
	RequestTimeout() (time.Duration, error)
	// Save saves the config to the file system
	Save() error
}
