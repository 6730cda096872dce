package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// GoGitProvider implements ports.VCSProvider in-process with go-git.
// Status is rendered as porcelain v1 so classification stays in one place.
type GoGitProvider struct{}

// Verify interface compliance at compile time
var _ ports.VCSProvider = (*GoGitProvider)(nil)

// NewGoGitProvider creates a library-backed provider
func NewGoGitProvider() *GoGitProvider {
	return &GoGitProvider{}
}

// IsRepo implements RepoInspector.IsRepo
func (p *GoGitProvider) IsRepo(ctx context.Context, path string) bool {
	return isRepo(path)
}

// CurrentBranch implements RepoInspector.CurrentBranch.
// A detached HEAD reports "HEAD" like rev-parse --abbrev-ref does.
func (p *GoGitProvider) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	repo, err := open(repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", wrap(err, "rev-parse", "--abbrev-ref", "HEAD")
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return string(plumbing.HEAD), nil
}

// PorcelainStatus implements RepoInspector.PorcelainStatus
func (p *GoGitProvider) PorcelainStatus(ctx context.Context, repoPath string) (string, error) {
	wt, err := worktree(repoPath, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	status, err := wt.Status()
	if err != nil {
		return "", wrap(err, "status", "--porcelain")
	}

	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, path := range paths {
		fs := status[path]
		x, y := byte(fs.Staging), byte(fs.Worktree)
		if x == byte(gogit.Unmodified) && y == byte(gogit.Unmodified) {
			continue
		}
		b.WriteByte(x)
		b.WriteByte(y)
		b.WriteByte(' ')
		if fs.Extra != "" && (x == byte(gogit.Renamed) || x == byte(gogit.Copied)) {
			b.WriteString(quotePath(fs.Extra))
			b.WriteString(" -> ")
		}
		b.WriteString(quotePath(path))
		b.WriteByte('\n')
	}

	logging.Logger.Debug("Rendered go-git status", "repo", repoPath, "entries", len(paths))
	return b.String(), nil
}

// Stage implements IndexManager.Stage; deleted files are removed from the index
func (p *GoGitProvider) Stage(ctx context.Context, repoPath, relPath string) error {
	wt, err := worktree(repoPath, "add", "--", relPath)
	if err != nil {
		return err
	}
	if _, err := wt.Add(relPath); err != nil {
		return wrap(err, "add", "--", relPath)
	}
	return nil
}

// Unstage implements IndexManager.Unstage
func (p *GoGitProvider) Unstage(ctx context.Context, repoPath, relPath string) error {
	wt, err := worktree(repoPath, "reset", "HEAD", "--", relPath)
	if err != nil {
		return err
	}
	if err := wt.Restore(&gogit.RestoreOptions{Staged: true, Files: []string{relPath}}); err != nil {
		return wrap(err, "reset", "HEAD", "--", relPath)
	}
	return nil
}

// Commit implements IndexManager.Commit; the author comes from git config
func (p *GoGitProvider) Commit(ctx context.Context, repoPath, message string) error {
	wt, err := worktree(repoPath, "commit", "-m", message)
	if err != nil {
		return err
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{})
	if err != nil {
		return wrap(err, "commit", "-m", message)
	}
	logging.Logger.Info("Created commit", "repo", repoPath, "hash", hash.String())
	return nil
}

func open(repoPath string, args ...string) (*gogit.Repository, error) {
	if !isRepo(repoPath) {
		return nil, wrap(fmt.Errorf("%s: %w", repoPath, domain.ErrNotARepository), args...)
	}
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return nil, wrap(err, args...)
	}
	return repo, nil
}

func worktree(repoPath string, args ...string) (*gogit.Worktree, error) {
	repo, err := open(repoPath, args...)
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, wrap(err, args...)
	}
	return wt, nil
}

// wrap gives go-git failures the same shape as a failed git subprocess
func wrap(err error, args ...string) error {
	var gitErr *domain.GitCommandError
	if errors.As(err, &gitErr) {
		return err
	}
	logging.Logger.Warn("go-git operation failed", "args", args, "error", err)
	return &domain.GitCommandError{Args: args, ExitCode: -1, Err: err}
}

// quotePath mirrors git's C-style quoting for paths the porcelain parser
// could not otherwise split
func quotePath(path string) string {
	if strings.ContainsAny(path, "\"\\\n\t") || strings.Contains(path, " -> ") {
		return strconv.Quote(path)
	}
	return path
}
