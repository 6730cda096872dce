package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// GitStatusEngine tracks the repository state of the workspace root and
// classifies its status. Stage, Unstage and Commit never refresh on their
// own; callers refresh afterwards.
type GitStatusEngine struct {
	now func() time.Time
	vcs ports.VCSProvider

	mu         sync.Mutex
	generation uint64
	repoPath   string
	snapshot   *domain.GitStatusSnapshot
	state      domain.RepoState
}

// NewGitStatusEngine creates an engine in the no_root state
func NewGitStatusEngine(vcs ports.VCSProvider) *GitStatusEngine {
	return &GitStatusEngine{
		now:   time.Now,
		state: domain.RepoStateNoRoot,
		vcs:   vcs,
	}
}

// IsRepo reports whether a .git entry exists directly under path
func (e *GitStatusEngine) IsRepo(ctx context.Context, path string) bool {
	if path == "" {
		return false
	}
	return e.vcs.IsRepo(ctx, path)
}

// State returns the current state and repository path
func (e *GitStatusEngine) State() (domain.RepoState, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.repoPath
}

// Snapshot returns the last successful snapshot, nil when absent
func (e *GitStatusEngine) Snapshot() *domain.GitStatusSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot
}

// Reset returns the engine to no_root
func (e *GitStatusEngine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	e.repoPath = ""
	e.snapshot = nil
	e.state = domain.RepoStateNoRoot
}

// Refresh fetches branch and status for repoPath and replaces the snapshot.
// A different repoPath becomes the engine's root. If the path is not a
// repository the snapshot is cleared and domain.ErrNotARepository returned.
// A refresh overtaken by a newer one returns domain.ErrStaleRender.
func (e *GitStatusEngine) Refresh(ctx context.Context, repoPath string) (*domain.GitStatusSnapshot, error) {
	logging.Logger.Debug("Refreshing git status", "repo", repoPath)

	e.mu.Lock()
	if repoPath == "" {
		e.generation++
		e.repoPath = ""
		e.snapshot = nil
		e.state = domain.RepoStateNoRoot
		e.mu.Unlock()
		return nil, domain.ErrNoRoot
	}
	if repoPath != e.repoPath {
		e.repoPath = repoPath
		e.snapshot = nil
	}
	e.generation++
	generation := e.generation
	e.mu.Unlock()

	if !e.vcs.IsRepo(ctx, repoPath) {
		e.mu.Lock()
		if generation == e.generation {
			e.state = domain.RepoStateNotARepo
			e.snapshot = nil
		}
		e.mu.Unlock()
		logging.Logger.Debug("Not a git repository", "path", repoPath)
		return nil, fmt.Errorf("%s: %w", repoPath, domain.ErrNotARepository)
	}

	var branch, porcelain string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := e.vcs.CurrentBranch(gctx, repoPath)
		if err != nil {
			logging.Logger.Debug("Failed to get branch name", "repo", repoPath, "error", err)
		}
		branch = strings.TrimSpace(b)
		if err != nil || branch == "" {
			branch = domain.UnknownBranchLabel
		}
		return nil
	})
	g.Go(func() error {
		out, err := e.vcs.PorcelainStatus(gctx, repoPath)
		if err != nil {
			return err
		}
		porcelain = out
		return nil
	})
	if err := g.Wait(); err != nil {
		e.mu.Lock()
		if generation == e.generation {
			e.state = domain.RepoStateRepo
		}
		e.mu.Unlock()
		logging.Logger.Error("Failed to fetch git status", "repo", repoPath, "error", err)
		return nil, err
	}

	staged, unstaged, untracked := domain.ParsePorcelain(porcelain)
	snapshot := &domain.GitStatusSnapshot{
		Branch:    branch,
		FetchedAt: e.now(),
		Staged:    staged,
		Unstaged:  unstaged,
		Untracked: untracked,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if generation != e.generation {
		logging.Logger.Debug("Discarding stale git status", "generation", generation, "current", e.generation)
		return nil, domain.ErrStaleRender
	}
	e.state = domain.RepoStateRepo
	e.snapshot = snapshot

	logging.Logger.Info("Git status refreshed", "repo", repoPath, "branch", branch,
		"staged", len(staged), "unstaged", len(unstaged), "untracked", len(untracked))
	return snapshot, nil
}

// Stage adds filePath to the index. Absolute paths inside repoPath are made
// relative; anything else is passed through unchanged.
func (e *GitStatusEngine) Stage(ctx context.Context, repoPath, filePath string) error {
	if repoPath == "" || filePath == "" {
		return fmt.Errorf("stage: %w", domain.ErrInvalidPath)
	}
	rel := RepoRelative(repoPath, filePath)
	logging.Logger.Info("Staging file", "repo", repoPath, "path", rel)
	return e.vcs.Stage(ctx, repoPath, rel)
}

// Unstage removes filePath from the index, keeping worktree changes
func (e *GitStatusEngine) Unstage(ctx context.Context, repoPath, filePath string) error {
	if repoPath == "" || filePath == "" {
		return fmt.Errorf("unstage: %w", domain.ErrInvalidPath)
	}
	rel := RepoRelative(repoPath, filePath)
	logging.Logger.Info("Unstaging file", "repo", repoPath, "path", rel)
	return e.vcs.Unstage(ctx, repoPath, rel)
}

// Commit records the index with message. Blank messages are rejected
// without running git.
func (e *GitStatusEngine) Commit(ctx context.Context, repoPath, message string) error {
	if strings.TrimSpace(message) == "" {
		return domain.ErrEmptyCommitMessage
	}
	if repoPath == "" {
		return fmt.Errorf("commit: %w", domain.ErrInvalidPath)
	}
	logging.Logger.Info("Committing", "repo", repoPath)
	return e.vcs.Commit(ctx, repoPath, message)
}

// RepoRelative converts an absolute path under repoPath to a repo-relative one
func RepoRelative(repoPath, filePath string) string {
	if !filepath.IsAbs(filePath) {
		return filePath
	}
	repo := filepath.Clean(repoPath)
	clean := filepath.Clean(filePath)
	if !strings.HasPrefix(clean, repo+string(filepath.Separator)) {
		return filePath
	}
	rel, err := filepath.Rel(repo, clean)
	if err != nil {
		return filePath
	}
	return rel
}
