package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
)

// TreeCmd prints the tree of a folder with some directories expanded
type TreeCmd struct {
	Root   string   `arg:"" help:"Folder to show" type:"path"`
	Expand []string `help:"Directory to expand, relative to the root (repeatable)" short:"e"`
	Format string   `help:"Output format: tree or json" enum:"tree,json" default:"tree"`
}

// Run executes the tree command
func (t *TreeCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing tree command", "root", t.Root, "expand", t.Expand)

	ctx := context.Background()
	trees := cli.Container.Workspace.Tree()

	tree, err := trees.Open(ctx, t.Root)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", t.Root, err)
	}

	// Parents are toggled before their children so nested paths resolve
	for _, dir := range t.Expand {
		path := dir
		if !filepath.IsAbs(path) {
			path = filepath.Join(tree.Root, dir)
		}
		tree, err = trees.Toggle(ctx, filepath.Clean(path))
		if err != nil && !errors.Is(err, domain.ErrStaleRender) {
			return fmt.Errorf("failed to expand %s: %w", dir, err)
		}
	}
	tree = trees.Current()

	if t.Format == formatJSON {
		return writeJSON(os.Stdout, tree)
	}
	writeTree(os.Stdout, tree)
	return nil
}
