package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Git backends
const (
	GitBackendCLI   = "cli"
	GitBackendGoGit = "gogit"
)

const (
	DefaultGitBackend        = GitBackendCLI
	DefaultGitTimeoutSeconds = 30
)

// envOverrides maps environment variables onto settings keys
var envOverrides = map[string]string{
	"BANCADA_DEBUG":               "debug",
	"BANCADA_GIT_BACKEND":         "git_backend",
	"BANCADA_GIT_TIMEOUT_SECONDS": "git_timeout_seconds",
	"BANCADA_HIDE_GITIGNORED":     "hide_gitignored",
	"BANCADA_MAX_LOG_FILES":       "max_log_files",
	"BANCADA_SHOW_HIDDEN":         "show_hidden",
}

// Settings represents the structure of $BANCADA_HOME/settings.json
type Settings struct {
	Debug             *bool  `json:"debug,omitempty"`
	GitBackend        string `json:"git_backend,omitempty"`
	GitTimeoutSeconds *int   `json:"git_timeout_seconds,omitempty"`
	HideGitignored    *bool  `json:"hide_gitignored,omitempty"`
	MaxLogFiles       *int   `json:"max_log_files,omitempty"`
	ShowHidden        *bool  `json:"show_hidden,omitempty"`
}

// LoadSettings loads settings.json and applies BANCADA_* environment overrides.
// A missing file is not an error.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom is LoadSettings for an explicit file path
func LoadSettingsFrom(path string) (*Settings, error) {
	raw := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid settings.json: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	for env, key := range envOverrides {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			raw[key] = v
		}
	}

	var settings Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		Result:           &settings,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build settings decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to $BANCADA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(GetHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate checks for configuration errors
func (s *Settings) Validate() error {
	switch strings.ToLower(s.GitBackend) {
	case "", GitBackendCLI, GitBackendGoGit:
	default:
		return fmt.Errorf("unknown git_backend '%s' (expected %s or %s)", s.GitBackend, GitBackendCLI, GitBackendGoGit)
	}
	if s.GitTimeoutSeconds != nil && *s.GitTimeoutSeconds <= 0 {
		return fmt.Errorf("git_timeout_seconds must be positive, got %d", *s.GitTimeoutSeconds)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// Backend returns the configured git backend
func (s *Settings) Backend() string {
	if s == nil || s.GitBackend == "" {
		return DefaultGitBackend
	}
	return strings.ToLower(s.GitBackend)
}

// GitTimeout returns the per-command git timeout
func (s *Settings) GitTimeout() time.Duration {
	if s == nil || s.GitTimeoutSeconds == nil {
		return DefaultGitTimeoutSeconds * time.Second
	}
	return time.Duration(*s.GitTimeoutSeconds) * time.Second
}

// ShowHiddenFiles reports whether dotfiles appear in the tree (default true)
func (s *Settings) ShowHiddenFiles() bool {
	return s == nil || s.ShowHidden == nil || *s.ShowHidden
}

// HideIgnoredFiles reports whether .gitignore matches are hidden (default false)
func (s *Settings) HideIgnoredFiles() bool {
	return s != nil && s.HideGitignored != nil && *s.HideGitignored
}
