package ports

import "context"

// RepoInspector answers questions about a repository without changing it
type RepoInspector interface {
	// CurrentBranch returns the abbreviated name of HEAD
	CurrentBranch(ctx context.Context, repoPath string) (string, error)
	// IsRepo reports whether a .git entry exists directly under path
	IsRepo(ctx context.Context, path string) bool
	// PorcelainStatus returns status output in porcelain v1 format
	PorcelainStatus(ctx context.Context, repoPath string) (string, error)
}

// IndexManager mutates the index and history
type IndexManager interface {
	Commit(ctx context.Context, repoPath, message string) error
	Stage(ctx context.Context, repoPath, relPath string) error
	Unstage(ctx context.Context, repoPath, relPath string) error
}

// VCSProvider is the composite interface consumed by the status engine.
// Backends may shell out or use a library; classification stays in the engine.
type VCSProvider interface {
	IndexManager
	RepoInspector
}
