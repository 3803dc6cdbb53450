// Package config loads the concierge configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds client settings. Flags override file values; file values
// override defaults.
type Config struct {
	// BaseURL is the backend root, e.g. http://localhost:8080.
	BaseURL string `toml:"base_url"`
	// GoogleClientID enables the Google sign-in bridge when set.
	GoogleClientID string `toml:"google_client_id"`
	// DataDir holds the keyring database.
	DataDir string `toml:"data_dir"`
	// RequestTimeout bounds each backend call.
	RequestTimeout Duration `toml:"request_timeout"`
}

// Duration wraps time.Duration for TOML ("30s", "2m").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		BaseURL:        "http://localhost:8080",
		DataDir:        filepath.Join(home, ".concierge"),
		RequestTimeout: Duration{30 * time.Second},
	}
}

// Load reads a TOML config file over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Timeout returns the configured request timeout.
func (c Config) Timeout() time.Duration {
	return c.RequestTimeout.Duration
}
