package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/test/integration/harness"
)

type recentItems struct {
	Files []struct {
		FolderPath string `json:"folderPath"`
		Path       string `json:"path"`
	} `json:"files"`
	Folders []struct {
		Path string `json:"path"`
	} `json:"folders"`
}

func TestRecentOpenFolderReachesMenu(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	first := newWorkspaceFolder(t)
	second := newWorkspaceFolder(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "recent", "open-folder", first))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "recent", "open-folder", second))

	result := harness.RunCommand(t, env, "recent", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	var items recentItems
	harness.AssertValidJSON(t, result, &items)
	require.Len(t, items.Folders, 2)
	assert.Equal(t, second, items.Folders[0].Path)
	assert.Equal(t, first, items.Folders[1].Path)

	// the mirror file is written by the menu side of the channel
	_, err := os.Stat(env.MirrorPath())
	require.NoError(t, err)

	result = harness.RunCommand(t, env, "menu")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Recent Folders")
	harness.AssertStdoutContains(t, result, second)
}

func TestRecentOpenFileRecordsFolder(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	root := newWorkspaceFolder(t)
	file := filepath.Join(root, "src", "main.go")

	result := harness.RunCommand(t, env, "recent", "open-file", file, "--folder", root)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "main.go")

	result = harness.RunCommand(t, env, "recent", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	var items recentItems
	harness.AssertValidJSON(t, result, &items)
	require.Len(t, items.Files, 1)
	assert.Equal(t, file, items.Files[0].Path)
	assert.Equal(t, root, items.Files[0].FolderPath)

	result = harness.RunCommand(t, env, "menu")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Recent Files")
}

func TestRecentRemove(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	root := newWorkspaceFolder(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "recent", "open-folder", root))

	result := harness.RunCommand(t, env, "recent", "remove", root)
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "recent", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, root)

	result = harness.RunCommand(t, env, "menu")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, root)
}

func TestRecentSyncRebuildsMirror(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	first := newWorkspaceFolder(t)
	second := newWorkspaceFolder(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "recent", "open-folder", first))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "recent", "open-folder", second))
	require.NoError(t, os.Remove(env.MirrorPath()))

	result := harness.RunCommand(t, env, "menu")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, first)

	result = harness.RunCommand(t, env, "recent", "sync")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "2 folders")

	result = harness.RunCommand(t, env, "menu", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, first)
	harness.AssertStdoutContains(t, result, second)
}

func TestRecentMissingFolderIsPruned(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	kept := newWorkspaceFolder(t)
	gone := newWorkspaceFolder(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "recent", "open-folder", kept))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "recent", "open-folder", gone))
	require.NoError(t, os.RemoveAll(gone))

	result := harness.RunCommand(t, env, "recent", "open-folder", gone)
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "not found")

	result = harness.RunCommand(t, env, "menu", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, kept)
	harness.AssertStdoutNotContains(t, result, gone)
}

func TestRecentOpenFolderMissingFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "recent", "open-folder", filepath.Join(t.TempDir(), "missing"))

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "failed to open folder")
}
