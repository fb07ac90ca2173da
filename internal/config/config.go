package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the aimend configuration.
type Config struct {
	Host           string `toml:"host"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	RedactSecrets  bool   `toml:"redact_secrets"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Host:           "http://127.0.0.1:8080",
		TimeoutSeconds: 0,
		RedactSecrets:  true,
	}
}

// Timeout returns the configured request timeout; zero means none.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConfigDir returns the platform-appropriate config directory for aimend.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aimend"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "aimend"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "aimend"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "aimend"), nil
	default:
		return filepath.Join(home, ".config", "aimend"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags; only non-empty values apply.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	if err := loadFile(&cfg); err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

// LoadFile reads the config file over the defaults, skipping env and flag
// overrides. Edits made by config set go through here so environment values
// never get baked into the file.
func LoadFile() (Config, error) {
	cfg := Default()
	if err := loadFile(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile decodes the config file over the defaults already in cfg, so
// explicit false and zero values in the file win while absent keys keep
// their defaults. A missing file is not an error.
func loadFile(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("AIMEND_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("AIMEND_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AIMEND_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["host"]; ok && v != "" {
		cfg.Host = v
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown. Keys match the file's TOML keys.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "host":
		cfg.Host = value
	case "api_key":
		cfg.APIKey = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_seconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "redact_secrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redact_secrets must be a boolean: %w", err)
		}
		cfg.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
