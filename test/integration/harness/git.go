package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestRepo is a throwaway git working tree with one commit on main.
type TestRepo struct {
	Path string
	tb   testing.TB
}

// NewTestRepo initializes a repository in a temp dir and commits README.md.
func NewTestRepo(tb testing.TB) *TestRepo {
	tb.Helper()

	repo := &TestRepo{Path: tb.TempDir(), tb: tb}
	repo.Git("init")
	repo.Git("config", "user.email", "test@example.com")
	repo.Git("config", "user.name", "Test User")
	repo.WriteFile("README.md", "# Test Repo\n")
	repo.Git("add", "README.md")
	repo.Git("commit", "-m", "Initial commit")

	// git might default to "master"
	repo.Git("branch", "-M", "main")
	return repo
}

// WriteFile creates or replaces a file relative to the repository root.
func (r *TestRepo) WriteFile(name, content string) string {
	r.tb.Helper()

	path := filepath.Join(r.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// Git runs a git command in the repository and returns its combined output.
func (r *TestRepo) Git(args ...string) string {
	r.tb.Helper()
	return RunGitCommand(r.tb, r.Path, args...)
}

// RunGitCommand executes a git command in dir and fails the test on error.
func RunGitCommand(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return string(output)
}
