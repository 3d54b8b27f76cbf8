package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "freelancefinder"
	ConfigFileName = "config.json"
)

// Config contains default detection settings.
type Config struct {
	MaxWaitMS      int    `json:"max_wait_ms"`
	PollIntervalMS int    `json:"poll_interval_ms"`
	Concurrency    int    `json:"concurrency"`
	Format         string `json:"format"`
}

func DefaultConfig() Config {
	return Config{
		MaxWaitMS:      envInt("FREELANCEFINDER_MAX_WAIT_MS", 1800),
		PollIntervalMS: envInt("FREELANCEFINDER_POLL_INTERVAL_MS", 40),
		Concurrency:    envInt("FREELANCEFINDER_CONCURRENCY", 4),
		Format:         envString("FREELANCEFINDER_FORMAT", ""),
	}
}

// MaxWait is the watch budget; zero or negative values disable waiting.
func (c Config) MaxWait() time.Duration {
	return time.Duration(c.MaxWaitMS) * time.Millisecond
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
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

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads a JSON5 config, falling back to defaults for a missing or
// empty file. Environment variables override the file.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

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
	applyEnv(&cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.MaxWaitMS = envInt("FREELANCEFINDER_MAX_WAIT_MS", cfg.MaxWaitMS)
	cfg.PollIntervalMS = envInt("FREELANCEFINDER_POLL_INTERVAL_MS", cfg.PollIntervalMS)
	cfg.Concurrency = envInt("FREELANCEFINDER_CONCURRENCY", cfg.Concurrency)
	cfg.Format = envString("FREELANCEFINDER_FORMAT", cfg.Format)
}

// Init writes a default config.json if it doesn't already exist.
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
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
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
