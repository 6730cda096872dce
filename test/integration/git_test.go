package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/test/integration/harness"
)

type statusSnapshot struct {
	Branch string `json:"branch"`
	Staged []struct {
		Path string `json:"path"`
	} `json:"staged"`
	Unstaged []struct {
		Path string `json:"path"`
	} `json:"unstaged"`
	Untracked []struct {
		Path string `json:"path"`
	} `json:"untracked"`
}

func TestGitStatus(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		setup    func(repo *harness.TestRepo)
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "clean tree",
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "On branch main")
				harness.AssertStdoutContains(t, result, "working tree clean")
			},
		},
		{
			name: "sections for cli backend",
			setup: func(repo *harness.TestRepo) {
				repo.WriteFile("README.md", "# changed\n")
				repo.WriteFile("staged.txt", "new\n")
				repo.Git("add", "staged.txt")
				repo.WriteFile("notes.txt", "untracked\n")
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "Staged changes:")
				harness.AssertStdoutContains(t, result, "staged.txt")
				harness.AssertStdoutContains(t, result, "Unstaged changes:")
				harness.AssertStdoutContains(t, result, "README.md")
				harness.AssertStdoutContains(t, result, "Untracked files:")
				harness.AssertStdoutContains(t, result, "notes.txt")
			},
		},
		{
			name:    "sections for go-git backend",
			backend: "gogit",
			setup: func(repo *harness.TestRepo) {
				repo.WriteFile("staged.txt", "new\n")
				repo.Git("add", "staged.txt")
				repo.WriteFile("notes.txt", "untracked\n")
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "On branch main")
				harness.AssertStdoutContains(t, result, "staged.txt")
				harness.AssertStdoutContains(t, result, "notes.txt")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.backend != "" {
				env.SetEnv("BANCADA_GIT_BACKEND", tt.backend)
			}
			repo := harness.NewTestRepo(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			result := harness.RunCommand(t, env, "git", "status", repo.Path)

			tt.validate(t, result)
		})
	}
}

func TestGitStatusNotARepository(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "git", "status", t.TempDir())

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "not a git repository")
}

func TestGitStageUnstageCommit(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepo(t)
	repo.WriteFile("feature.txt", "feature\n")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "git", "stage", repo.Path, "feature.txt"))
	snapshot := gitStatus(t, env, repo)
	require.Len(t, snapshot.Staged, 1)
	assert.Equal(t, "feature.txt", snapshot.Staged[0].Path)
	assert.Empty(t, snapshot.Untracked)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "git", "unstage", repo.Path, "feature.txt"))
	snapshot = gitStatus(t, env, repo)
	assert.Empty(t, snapshot.Staged)
	require.Len(t, snapshot.Untracked, 1)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "git", "stage", repo.Path, "feature.txt"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "git", "commit", repo.Path, "-m", "Add feature"))

	snapshot = gitStatus(t, env, repo)
	assert.Equal(t, "main", snapshot.Branch)
	assert.Empty(t, snapshot.Staged)
	assert.Empty(t, snapshot.Untracked)
	assert.Contains(t, repo.Git("log", "--oneline", "-1"), "Add feature")
}

func gitStatus(t *testing.T, env *harness.TestEnvironment, repo *harness.TestRepo) statusSnapshot {
	t.Helper()
	result := harness.RunCommand(t, env, "git", "status", repo.Path, "--format", "json")
	harness.AssertSuccess(t, result)
	var snapshot statusSnapshot
	harness.AssertValidJSON(t, result, &snapshot)
	return snapshot
}
