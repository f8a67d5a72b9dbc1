package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings the notes client needs at startup.
type Config struct {
	BackendURL     string
	LogFile        string
	LogLevel       string
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/notes/config.toml"
	defaultBackendURL     = "http://localhost:5000"
	defaultLogFile        = "~/.local/state/notes/notes.log"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 10 * time.Second

	envBackendURL = "NOTES_BACKEND_URL"
	envLogFile    = "NOTES_LOG_FILE"
	envLogLevel   = "NOTES_LOG_LEVEL"
)

// dotenvFiles are loaded into the process environment before overrides are
// read. Variables already set win over the files.
var dotenvFiles = []string{".env"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BackendURL:     defaultBackendURL,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		RequestTimeout: defaultRequestTimeout,
	}
}

// Load reads the config file at path (or the default location), then applies
// .env and environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BackendURL     string `toml:"backend_url"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("parse config: request_timeout must not be negative")
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func loadDotEnv() error {
	for _, name := range dotenvFiles {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(envBackendURL)); v != "" {
		cfg.BackendURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogFile)); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envLogFile, err)
		}
		cfg.LogFile = expanded
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
