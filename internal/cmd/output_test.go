package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/internal/config"
	"github.com/renato0307/bancada/internal/domain"
)

func TestWriteTree(t *testing.T) {
	tree := &domain.Tree{
		Root: "/ws",
		Nodes: []domain.TreeNode{
			{
				Entry:    domain.DirEntry{Kind: domain.KindDirectory, Name: "src", Path: "/ws/src"},
				Expanded: true,
				Children: []domain.TreeNode{
					{Depth: 1, Entry: domain.DirEntry{Kind: domain.KindFile, Name: "main.go", Path: "/ws/src/main.go"}},
				},
			},
			{Entry: domain.DirEntry{Kind: domain.KindDirectory, Name: "loop", Path: "/ws/loop"}, Expanded: true, Err: domain.ErrSymlinkCycle},
			{Entry: domain.DirEntry{Kind: domain.KindFile, Name: "README.md", Path: "/ws/README.md"}},
		},
	}

	var buf bytes.Buffer
	writeTree(&buf, tree)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "/ws", lines[0])
	assert.Equal(t, "  ▾ src", lines[1])
	assert.Equal(t, "      main.go", lines[2])
	assert.Equal(t, "  ▾ loop  [symlink cycle]", lines[3])
	assert.Equal(t, "    README.md", lines[4])
}

func TestWriteStatus(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *domain.GitStatusSnapshot
		contains []string
		excludes []string
	}{
		{
			name:     "clean tree",
			snapshot: &domain.GitStatusSnapshot{Branch: "main"},
			contains: []string{"On branch main", "Nothing to commit"},
		},
		{
			name: "all sections",
			snapshot: &domain.GitStatusSnapshot{
				Branch:    "feature",
				Staged:    []domain.FileStatus{{Kind: domain.StatusRenamed, OrigPath: "old.txt", Path: "new.txt"}},
				Unstaged:  []domain.FileStatus{{Kind: domain.StatusModified, Path: "b.txt"}},
				Untracked: []domain.FileStatus{{Kind: domain.StatusUntracked, Path: "c.txt"}},
			},
			contains: []string{"Staged changes:", "R old.txt -> new.txt", "Unstaged changes:", "M b.txt", "Untracked files:", "U c.txt"},
			excludes: []string{"Nothing to commit"},
		},
		{
			name: "empty sections are omitted",
			snapshot: &domain.GitStatusSnapshot{
				Branch:   "main",
				Unstaged: []domain.FileStatus{{Kind: domain.StatusDeleted, Path: "gone.txt"}},
			},
			contains: []string{"Unstaged changes:", "D gone.txt"},
			excludes: []string{"Staged changes:", "Untracked files:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeStatus(&buf, tt.snapshot)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestWriteRecent(t *testing.T) {
	items := domain.RecentItems{
		Files:   domain.RecentList{{FolderPath: "/ws", Name: "a.go", Path: "/ws/a.go"}},
		Folders: domain.RecentList{{Name: "ws", Path: "/ws"}},
		Version: domain.RecentItemsVersion,
	}

	var buf bytes.Buffer
	writeRecent(&buf, items)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "KIND"))
	assert.Contains(t, lines[1], "folder")
	assert.Contains(t, lines[1], "/ws")
	assert.Contains(t, lines[2], "file")
	assert.Contains(t, lines[2], "/ws/a.go")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestResolveSettings(t *testing.T) {
	timeout := 5
	hide := true
	show := false

	t.Run("defaults", func(t *testing.T) {
		got := resolveSettings(&config.Settings{}, false)
		assert.Equal(t, config.GitBackendCLI, got.GitBackend)
		assert.Equal(t, config.DefaultGitTimeoutSeconds, got.GitTimeoutSeconds)
		assert.False(t, got.HideGitignored)
		assert.True(t, got.ShowHidden)
		assert.Equal(t, domain.MaxRecentItems, got.MaxRecentItems)
	})

	t.Run("overrides", func(t *testing.T) {
		got := resolveSettings(&config.Settings{
			GitBackend:        "gogit",
			GitTimeoutSeconds: &timeout,
			HideGitignored:    &hide,
			ShowHidden:        &show,
		}, true)
		assert.True(t, got.Debug)
		assert.Equal(t, config.GitBackendGoGit, got.GitBackend)
		assert.Equal(t, 5, got.GitTimeoutSeconds)
		assert.True(t, got.HideGitignored)
		assert.False(t, got.ShowHidden)
	})
}
