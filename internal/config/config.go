// Package config resolves runtime settings from an optional json5 config
// file plus environment overrides. Components receive already-resolved
// numeric values through their constructors; nothing reads the
// environment after startup.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "wellfound"
	ConfigFileName = "config.json"
)

// Config carries the resolved pipeline settings.
type Config struct {
	DatabaseURL         string  `json:"database_url"`
	RateLimit           float64 `json:"rate_limit"`
	Concurrency         int     `json:"concurrency"`
	MaxPages            int     `json:"max_pages"`
	BatchTimeoutMinutes int     `json:"batch_timeout_minutes"`
}

func DefaultConfig() Config {
	return Config{
		DatabaseURL:         envString("DATABASE_URL", ""),
		RateLimit:           envFloat("WELLFOUND_RATE_LIMIT", 1.5),
		Concurrency:         envInt("WELLFOUND_CONCURRENCY", 3),
		MaxPages:            envInt("WELLFOUND_MAX_PAGES", 10),
		BatchTimeoutMinutes: envInt("WELLFOUND_BATCH_TIMEOUT_MINUTES", 30),
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads the config file over the env defaults. A missing file is
// not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Init writes a starter config.json if one doesn't already exist and
// returns the paths it created.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
		if err != nil {
			return created, err
		}
		if err := os.WriteFile(configPath, append(data, '\n'), 0o644); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
