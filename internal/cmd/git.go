package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
)

// GitCmd groups the git status subcommands
type GitCmd struct {
	Status  GitStatusCmd  `cmd:"status" help:"Show branch and staged/unstaged/untracked files" default:"1"`
	Stage   GitStageCmd   `cmd:"stage" help:"Stage a file"`
	Unstage GitUnstageCmd `cmd:"unstage" help:"Unstage a file"`
	Commit  GitCommitCmd  `cmd:"commit" help:"Commit staged changes"`
}

// GitStatusCmd prints the status of a repository
type GitStatusCmd struct {
	Repo   string `arg:"" optional:"" help:"Repository folder" default:"." type:"path"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the status command
func (g *GitStatusCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing git status command", "repo", g.Repo)

	snapshot, err := cli.Container.Workspace.Git().Refresh(context.Background(), g.Repo)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if g.Format == formatJSON {
		return writeJSON(os.Stdout, snapshot)
	}
	writeStatus(os.Stdout, snapshot)
	return nil
}

// GitStageCmd stages one file
type GitStageCmd struct {
	Repo string `arg:"" help:"Repository folder" type:"path"`
	File string `arg:"" help:"File to stage (absolute or relative to the repository)"`
}

// Run executes the stage command
func (g *GitStageCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing git stage command", "repo", g.Repo, "file", g.File)

	engine := cli.Container.Workspace.Git()
	if err := engine.Stage(context.Background(), g.Repo, g.File); err != nil {
		return fmt.Errorf("failed to stage %s: %w", g.File, err)
	}
	fmt.Printf("Staged %s\n", g.File)
	return nil
}

// GitUnstageCmd unstages one file
type GitUnstageCmd struct {
	Repo string `arg:"" help:"Repository folder" type:"path"`
	File string `arg:"" help:"File to unstage (absolute or relative to the repository)"`
}

// Run executes the unstage command
func (g *GitUnstageCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing git unstage command", "repo", g.Repo, "file", g.File)

	engine := cli.Container.Workspace.Git()
	if err := engine.Unstage(context.Background(), g.Repo, g.File); err != nil {
		return fmt.Errorf("failed to unstage %s: %w", g.File, err)
	}
	fmt.Printf("Unstaged %s\n", g.File)
	return nil
}

// GitCommitCmd commits the index, prompting for a message when none is given
type GitCommitCmd struct {
	Repo    string `arg:"" optional:"" help:"Repository folder" default:"." type:"path"`
	Message string `help:"Commit message (prompted when omitted)" short:"m"`
}

// Run executes the commit command
func (g *GitCommitCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing git commit command", "repo", g.Repo)

	message := g.Message
	if message == "" {
		prompted, err := promptCommitMessage()
		if err != nil {
			return err
		}
		message = prompted
	}

	engine := cli.Container.Workspace.Git()
	if err := engine.Commit(context.Background(), g.Repo, message); err != nil {
		if errors.Is(err, domain.ErrEmptyCommitMessage) {
			return err
		}
		return fmt.Errorf("failed to commit: %w", err)
	}
	fmt.Println("Committed staged changes")
	return nil
}

func promptCommitMessage() (string, error) {
	var message string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Commit message").
				Value(&message).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return domain.ErrEmptyCommitMessage
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("commit cancelled")
		}
		return "", fmt.Errorf("failed to read commit message: %w", err)
	}
	return message, nil
}
