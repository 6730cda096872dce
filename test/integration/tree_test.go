package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/test/integration/harness"
)

func newWorkspaceFolder(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.go"), []byte("package main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# hello\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("X=1\n"), 0644))
	return root
}

func TestTree(t *testing.T) {
	tests := []struct {
		name     string
		args     func(root string) []string
		env      map[string]string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "collapsed root lists directories first",
			args: func(root string) []string { return []string{"tree", root} },
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "▸ src")
				harness.AssertStdoutContains(t, result, "README.md")
				harness.AssertStdoutNotContains(t, result, "main.go")
				assert.Less(t, strings.Index(result.Stdout, "▸ src"), strings.Index(result.Stdout, "README.md"))
			},
		},
		{
			name: "expand shows children",
			args: func(root string) []string { return []string{"tree", root, "--expand", "src"} },
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "▾ src")
				harness.AssertStdoutContains(t, result, "main.go")
				harness.AssertStdoutContains(t, result, "▸ pkg")
			},
		},
		{
			name: "hidden files follow settings",
			args: func(root string) []string { return []string{"tree", root} },
			env:  map[string]string{"BANCADA_SHOW_HIDDEN": "false"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutNotContains(t, result, ".env")
			},
		},
		{
			name: "json output",
			args: func(root string) []string { return []string{"tree", root, "--format", "json"} },
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				var tree struct {
					Nodes []struct {
						Entry struct {
							Name string `json:"name"`
						} `json:"entry"`
					} `json:"nodes"`
					Root string `json:"root"`
				}
				harness.AssertValidJSON(t, result, &tree)
				require.NotEmpty(t, tree.Nodes)
				assert.Equal(t, "src", tree.Nodes[0].Entry.Name)
			},
		},
		{
			name: "missing folder fails",
			args: func(root string) []string { return []string{"tree", filepath.Join(root, "missing")} },
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result)
				harness.AssertStderrContains(t, result, "not found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			for k, v := range tt.env {
				env.SetEnv(k, v)
			}

			result := harness.RunCommand(t, env, tt.args(newWorkspaceFolder(t))...)

			tt.validate(t, result)
		})
	}
}
