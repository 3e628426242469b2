// Package config loads the host's settings.yaml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	FileName = "settings.yaml"

	DefaultSidecarName = "starscope-sidecar"
	DefaultSidecarPort = 8008
	DefaultWindowURL   = "http://localhost:1420"
)

// Settings holds values loaded from settings.yaml.
type Settings struct {
	Sidecar SidecarSettings `yaml:"sidecar"`
	Window  WindowSettings  `yaml:"window"`
	Log     LogSettings     `yaml:"log"`
}

type SidecarSettings struct {
	Name string `yaml:"name"`
	// Path overrides sidecar discovery when set.
	Path         string            `yaml:"path,omitempty"`
	ResourceDirs []string          `yaml:"resource_dirs,omitempty"`
	Port         int               `yaml:"port"`
	Env          map[string]string `yaml:"env,omitempty"`
	Disabled     bool              `yaml:"disabled,omitempty"`
}

type WindowSettings struct {
	URL string `yaml:"url"`
}

type LogSettings struct {
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func Default() *Settings {
	return &Settings{
		Sidecar: SidecarSettings{
			Name: DefaultSidecarName,
			Port: DefaultSidecarPort,
		},
		Window: WindowSettings{URL: DefaultWindowURL},
		Log: LogSettings{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the settings file at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no settings file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings file '%s': %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings to path, creating the parent directory.
func Save(path string, cfg *Settings) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func (s *Settings) Validate() error {
	if s.Sidecar.Name == "" {
		return errors.New("sidecar.name must not be empty")
	}
	if s.Sidecar.Port <= 0 || s.Sidecar.Port > 65535 {
		return fmt.Errorf("sidecar.port %d out of range", s.Sidecar.Port)
	}
	if s.Window.URL == "" {
		return errors.New("window.url must not be empty")
	}
	if _, err := ParseLevel(s.Log.Level); err != nil {
		return err
	}
	return nil
}

// SidecarURL is the base URL of the sidecar's local API.
func (s *Settings) SidecarURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", s.Sidecar.Port)
}

// SidecarEnv is the environment added to the sidecar process, sorted by key.
func (s *Settings) SidecarEnv() []string {
	env := []string{"PORT=" + strconv.Itoa(s.Sidecar.Port)}
	keys := make([]string, 0, len(s.Sidecar.Env))
	for k := range s.Sidecar.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+s.Sidecar.Env[k])
	}
	return env
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
