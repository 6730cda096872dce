package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/bancada/internal/adapters/editor"
	"github.com/renato0307/bancada/internal/config"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the bancada TUI (default)" default:"withargs"`
	Tree     TreeCmd     `cmd:"tree" help:"Print the file tree of a folder"`
	Git      GitCmd      `cmd:"git" help:"Inspect and change git status (status, stage, unstage, commit)"`
	Recent   RecentCmd   `cmd:"recent" help:"Manage recent folders and files"`
	Menu     MenuCmd     `cmd:"menu" help:"Print the recent-items menu built from the mirror"`
	Settings SettingsCmd `cmd:"settings" help:"Show effective settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply if flag is at default value and env var is not set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Git subprocesses and nested bancada invocations append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	// Container is created after logging so the gorm logger has a live target
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Path            string `arg:"" optional:"" help:"Folder to open on startup" type:"path"`
	Editor          string `help:"Editor command for the edit key (defaults to $BANCADA_EDITOR, $VISUAL, $EDITOR)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting bancada TUI", "path", r.Path)

	ctx := context.Background()
	ws := cli.Container.Workspace
	if err := ws.Startup(ctx); err != nil {
		logging.Logger.Warn("Failed to load recent items", "error", err)
	}

	model := ui.NewModel(ui.Options{
		Editor:          editor.NewLauncher(r.Editor),
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		InitialFolder:   r.Path,
		Mirror:          cli.Container.Mirror,
		Workspace:       ws,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
