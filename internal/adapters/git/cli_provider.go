package git

import (
	"context"
	"strings"
	"time"

	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// CLIProvider implements ports.VCSProvider by shelling out to the git binary
type CLIProvider struct {
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.VCSProvider = (*CLIProvider)(nil)

// NewCLIProvider creates a provider whose commands time out after timeout
func NewCLIProvider(timeout time.Duration) *CLIProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CLIProvider{timeout: timeout}
}

// RepoInspector methods

// IsRepo implements RepoInspector.IsRepo
func (p *CLIProvider) IsRepo(ctx context.Context, path string) bool {
	return isRepo(path)
}

// CurrentBranch implements RepoInspector.CurrentBranch
func (p *CLIProvider) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	out, err := runGit(ctx, p.timeout, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	logging.Logger.Debug("Found branch name", "branch", branch)
	return branch, nil
}

// PorcelainStatus implements RepoInspector.PorcelainStatus
func (p *CLIProvider) PorcelainStatus(ctx context.Context, repoPath string) (string, error) {
	return runGit(ctx, p.timeout, repoPath, "status", "--porcelain")
}

// IndexManager methods

// Stage implements IndexManager.Stage
func (p *CLIProvider) Stage(ctx context.Context, repoPath, relPath string) error {
	_, err := runGit(ctx, p.timeout, repoPath, "add", "--", relPath)
	return err
}

// Unstage implements IndexManager.Unstage
func (p *CLIProvider) Unstage(ctx context.Context, repoPath, relPath string) error {
	_, err := runGit(ctx, p.timeout, repoPath, "reset", "HEAD", "--", relPath)
	return err
}

// Commit implements IndexManager.Commit.
// The message is passed as a single argv element, never through a shell.
func (p *CLIProvider) Commit(ctx context.Context, repoPath, message string) error {
	_, err := runGit(ctx, p.timeout, repoPath, "commit", "-m", message)
	return err
}
