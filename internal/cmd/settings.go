package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/bancada/internal/config"
	"github.com/renato0307/bancada/internal/domain"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"show" help:"Show settings file location and effective values" default:"1"`
}

// SettingsShowCmd displays the effective settings
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// effectiveSettings is what the running process uses after defaults
type effectiveSettings struct {
	Debug             bool   `json:"debug"`
	GitBackend        string `json:"git_backend"`
	GitTimeoutSeconds int    `json:"git_timeout_seconds"`
	HideGitignored    bool   `json:"hide_gitignored"`
	MaxRecentItems    int    `json:"max_recent_items"`
	ShowHidden        bool   `json:"show_hidden"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	effective := resolveSettings(cli.settings, cli.Debug)

	if s.Format == formatJSON {
		return writeJSON(os.Stdout, map[string]any{
			"database":      config.GetDBPath(),
			"mirror":        config.GetRecentItemsPath(),
			"settings":      effective,
			"settings_file": config.GetSettingsPath(),
		})
	}

	writeSettings(os.Stdout, effective)
	return nil
}

func resolveSettings(settings *config.Settings, debug bool) effectiveSettings {
	return effectiveSettings{
		Debug:             debug,
		GitBackend:        settings.Backend(),
		GitTimeoutSeconds: int(settings.GitTimeout().Seconds()),
		HideGitignored:    settings.HideIgnoredFiles(),
		MaxRecentItems:    domain.MaxRecentItems,
		ShowHidden:        settings.ShowHiddenFiles(),
	}
}

func writeSettings(w io.Writer, e effectiveSettings) {
	fmt.Fprintf(w, "Settings file: %s\n", config.GetSettingsPath())
	fmt.Fprintf(w, "Database:      %s\n", config.GetDBPath())
	fmt.Fprintf(w, "Menu mirror:   %s\n\n", config.GetRecentItemsPath())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "debug\t%t\n", e.Debug)
	fmt.Fprintf(tw, "git_backend\t%s\n", e.GitBackend)
	fmt.Fprintf(tw, "git_timeout_seconds\t%d\n", e.GitTimeoutSeconds)
	fmt.Fprintf(tw, "hide_gitignored\t%t\n", e.HideGitignored)
	fmt.Fprintf(tw, "max_recent_items\t%d\t(fixed)\n", e.MaxRecentItems)
	fmt.Fprintf(tw, "show_hidden\t%t\n", e.ShowHidden)
	tw.Flush()
}
