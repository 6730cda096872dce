package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/ports"
)

func providers() map[string]ports.VCSProvider {
	return map[string]ports.VCSProvider{
		"cli":   NewCLIProvider(10 * time.Second),
		"gogit": NewGoGitProvider(),
	}
}

func TestIsRepo(t *testing.T) {
	repo := setupTestRepo(t)
	parent := t.TempDir()
	nested := filepath.Join(parent, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	gitCmd(t, nested, "init")

	for name, p := range providers() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			assert.True(t, p.IsRepo(ctx, repo))
			assert.False(t, p.IsRepo(ctx, filepath.Join(repo, "sub")))
			assert.False(t, p.IsRepo(ctx, parent), "nested repo must not count for its ancestor")
			assert.False(t, p.IsRepo(ctx, ""))
		})
	}
}

func TestCurrentBranch(t *testing.T) {
	for name, p := range providers() {
		t.Run(name, func(t *testing.T) {
			repo := setupTestRepo(t)
			gitCmd(t, repo, "checkout", "-b", "feature/x")

			branch, err := p.CurrentBranch(context.Background(), repo)

			require.NoError(t, err)
			assert.Equal(t, "feature/x", branch)
		})
	}
}

func TestCurrentBranch_NotARepo(t *testing.T) {
	for name, p := range providers() {
		t.Run(name, func(t *testing.T) {
			_, err := p.CurrentBranch(context.Background(), t.TempDir())
			assert.ErrorIs(t, err, domain.ErrGitCommandFailed)
		})
	}
}

func TestPorcelainStatus_Classifies(t *testing.T) {
	for name, p := range providers() {
		t.Run(name, func(t *testing.T) {
			repo := setupTestRepo(t)
			writeRepoFile(t, repo, "tracked.txt", "one")
			gitCmd(t, repo, "add", "tracked.txt")
			gitCmd(t, repo, "commit", "-m", "add tracked")

			writeRepoFile(t, repo, "README.md", "# Changed")
			gitCmd(t, repo, "add", "README.md")
			writeRepoFile(t, repo, "tracked.txt", "two")
			writeRepoFile(t, repo, "new.txt", "new")

			out, err := p.PorcelainStatus(context.Background(), repo)
			require.NoError(t, err)

			staged, unstaged, untracked := domain.ParsePorcelain(out)
			assert.Equal(t, []domain.FileStatus{{Kind: domain.StatusModified, Path: "README.md"}}, staged)
			assert.Equal(t, []domain.FileStatus{{Kind: domain.StatusModified, Path: "tracked.txt"}}, unstaged)
			assert.Equal(t, []domain.FileStatus{{Kind: domain.StatusUntracked, Path: "new.txt"}}, untracked)
		})
	}
}

func TestStageAndCommit(t *testing.T) {
	for name, p := range providers() {
		t.Run(name, func(t *testing.T) {
			repo := setupTestRepo(t)
			ctx := context.Background()
			writeRepoFile(t, repo, "new.txt", "new")

			require.NoError(t, p.Stage(ctx, repo, "new.txt"))
			out, err := p.PorcelainStatus(ctx, repo)
			require.NoError(t, err)
			staged, _, _ := domain.ParsePorcelain(out)
			assert.Equal(t, []domain.FileStatus{{Kind: domain.StatusAdded, Path: "new.txt"}}, staged)

			require.NoError(t, p.Commit(ctx, repo, "add new file"))
			out, err = p.PorcelainStatus(ctx, repo)
			require.NoError(t, err)
			assert.Empty(t, out)
			assert.Contains(t, gitCmd(t, repo, "log", "-1", "--format=%s"), "add new file")
		})
	}
}

func TestUnstage(t *testing.T) {
	for name, p := range providers() {
		t.Run(name, func(t *testing.T) {
			repo := setupTestRepo(t)
			ctx := context.Background()
			writeRepoFile(t, repo, "README.md", "# Changed")
			gitCmd(t, repo, "add", "README.md")

			require.NoError(t, p.Unstage(ctx, repo, "README.md"))

			out, err := p.PorcelainStatus(ctx, repo)
			require.NoError(t, err)
			staged, unstaged, _ := domain.ParsePorcelain(out)
			assert.Empty(t, staged)
			assert.Equal(t, []domain.FileStatus{{Kind: domain.StatusModified, Path: "README.md"}}, unstaged)
		})
	}
}

func TestCommit_NothingStagedFails(t *testing.T) {
	for name, p := range providers() {
		t.Run(name, func(t *testing.T) {
			repo := setupTestRepo(t)

			err := p.Commit(context.Background(), repo, "empty")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrGitCommandFailed)
		})
	}
}

func TestCLIProvider_CommandErrorCarriesOutput(t *testing.T) {
	repo := setupTestRepo(t)

	err := NewCLIProvider(0).Stage(context.Background(), repo, "does-not-exist.txt")

	var gitErr *domain.GitCommandError
	require.ErrorAs(t, err, &gitErr)
	assert.NotZero(t, gitErr.ExitCode)
	assert.Contains(t, gitErr.Output, "does-not-exist.txt")
	assert.Equal(t, []string{"add", "--", "does-not-exist.txt"}, gitErr.Args)
}

func TestCLIProvider_MessageIsOneArgument(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	writeRepoFile(t, repo, "a.txt", "a")
	p := NewCLIProvider(0)
	require.NoError(t, p.Stage(ctx, repo, "a.txt"))

	msg := `fix "quoted" $HOME; rm -rf /`
	require.NoError(t, p.Commit(ctx, repo, msg))

	assert.Equal(t, msg+"\n", gitCmd(t, repo, "log", "-1", "--format=%s"))
}

func TestQuotePath(t *testing.T) {
	assert.Equal(t, "plain name.txt", quotePath("plain name.txt"))
	assert.Equal(t, `"a -> b"`, quotePath("a -> b"))
	assert.Equal(t, `"tab\there"`, quotePath("tab\there"))
}
