// Package config loads environment configuration for the simd daemon.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr = "127.0.0.1:8787"
	defaultDataDir    = "./data"
	defaultMoveSpace  = "virtual"
	defaultTextBuffer = 256

	// FileName is the optional YAML file read from the data directory.
	FileName = "simd.yaml"
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string
	UIPassword     string
	DataDir        string
	MoveSpace      string
	AllowShortSend bool
	SyncMessages   bool
	TextBuffer     int
	Debug          bool
}

// fileConfig mirrors Config in the YAML file. Pointers tell unset from zero.
type fileConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	UIPassword     string `yaml:"ui_password"`
	MoveSpace      string `yaml:"move_space"`
	AllowShortSend *bool  `yaml:"allow_short_send"`
	SyncMessages   *bool  `yaml:"sync_messages"`
	TextBuffer     *int   `yaml:"text_buffer"`
	Debug          *bool  `yaml:"debug"`
}

// Load reads configuration from defaults, <DATA_DIR>/simd.yaml, <DATA_DIR>/.env and environment variables.
// Later sources win.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr: defaultListenAddr,
		DataDir:    envString("DATA_DIR", defaultDataDir),
		MoveSpace:  defaultMoveSpace,
		TextBuffer: defaultTextBuffer,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}
	if err := loadYAMLFile(filepath.Join(cfg.DataDir, FileName), &cfg); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.UIPassword = envString("UI_PASSWORD", cfg.UIPassword)
	cfg.MoveSpace = strings.ToLower(envString("MOVE_SPACE", cfg.MoveSpace))
	for key, field := range map[string]*bool{
		"ALLOW_SHORT_SEND": &cfg.AllowShortSend,
		"SYNC_MESSAGES":    &cfg.SyncMessages,
		"DEBUG":            &cfg.Debug,
	} {
		value, err := envBool(key, *field)
		if err != nil {
			return Config{}, err
		}
		*field = value
	}

	textBuffer, err := envInt("TEXT_BUFFER", cfg.TextBuffer)
	if err != nil {
		return Config{}, err
	}
	cfg.TextBuffer = textBuffer

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks values that would otherwise fail later at runtime.
func (c Config) validate() error {
	switch c.MoveSpace {
	case "virtual", "primary":
	default:
		return fmt.Errorf("MOVE_SPACE must be virtual or primary, got %q", c.MoveSpace)
	}
	if c.TextBuffer <= 0 || c.TextBuffer > 32768 {
		return fmt.Errorf("TEXT_BUFFER must be 1-32768")
	}
	if c.UIPassword == "" {
		return errors.New("UI_PASSWORD is required")
	}
	return nil
}

// loadYAMLFile overlays values from a YAML file when it exists.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.ListenAddr != "" {
		cfg.ListenAddr = strings.TrimSpace(fc.ListenAddr)
	}
	if fc.UIPassword != "" {
		cfg.UIPassword = strings.TrimSpace(fc.UIPassword)
	}
	if fc.MoveSpace != "" {
		cfg.MoveSpace = strings.ToLower(strings.TrimSpace(fc.MoveSpace))
	}
	if fc.AllowShortSend != nil {
		cfg.AllowShortSend = *fc.AllowShortSend
	}
	if fc.SyncMessages != nil {
		cfg.SyncMessages = *fc.SyncMessages
	}
	if fc.TextBuffer != nil {
		cfg.TextBuffer = *fc.TextBuffer
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
