package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
)

const syncTimeout = 10 * time.Second

// RecentCmd manages the recent folders and files
type RecentCmd struct {
	List       RecentListCmd       `cmd:"list" help:"List recent folders and files" default:"1"`
	OpenFolder RecentOpenFolderCmd `cmd:"open-folder" help:"Open a folder and record it as recent"`
	OpenFile   RecentOpenFileCmd   `cmd:"open-file" help:"Open a file and record it as recent"`
	Remove     RecentRemoveCmd     `cmd:"remove" help:"Remove a path from the recent lists"`
	Sync       RecentSyncCmd       `cmd:"sync" help:"Re-publish the recent lists to the menu mirror"`
}

// RecentListCmd lists the UI-local recent items
type RecentListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (r *RecentListCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing recent list command")

	recent := cli.Container.Workspace.Recent()
	if err := recent.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load recent items: %w", err)
	}
	items := recent.Items()

	if r.Format == formatJSON {
		return writeJSON(os.Stdout, items)
	}
	writeRecent(os.Stdout, items)
	return nil
}

// RecentOpenFolderCmd opens a folder the way the TUI does
type RecentOpenFolderCmd struct {
	Path string `arg:"" help:"Folder to open" type:"path"`
}

// Run executes the open-folder command
func (r *RecentOpenFolderCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing recent open-folder command", "path", r.Path)

	ctx := context.Background()
	ws := cli.Container.Workspace
	if err := ws.Recent().Load(ctx); err != nil {
		return fmt.Errorf("failed to load recent items: %w", err)
	}

	tree, openErr := ws.OpenFolder(ctx, r.Path)
	if err := syncMirror(cli); err != nil {
		return err
	}
	if openErr != nil {
		return fmt.Errorf("failed to open folder: %w", openErr)
	}

	fmt.Printf("Opened %s (%d entries)\n", tree.Root, len(tree.Nodes))
	return nil
}

// RecentOpenFileCmd opens a file the way the TUI does
type RecentOpenFileCmd struct {
	Path   string `arg:"" help:"File to open" type:"path"`
	Folder string `help:"Workspace folder of the file (defaults to its directory)" type:"path"`
}

// Run executes the open-file command
func (r *RecentOpenFileCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing recent open-file command", "path", r.Path, "folder", r.Folder)

	ctx := context.Background()
	ws := cli.Container.Workspace
	if err := ws.Recent().Load(ctx); err != nil {
		return fmt.Errorf("failed to load recent items: %w", err)
	}

	file, openErr := ws.OpenFile(ctx, r.Path, r.Folder)
	if err := syncMirror(cli); err != nil {
		return err
	}
	if openErr != nil {
		return fmt.Errorf("failed to open file: %w", openErr)
	}

	fmt.Printf("Opened %s (%d bytes) in %s\n", file.Path, len(file.Content), file.FolderPath)
	return nil
}

// RecentRemoveCmd drops a path from one or both lists
type RecentRemoveCmd struct {
	Path string `arg:"" help:"Path to remove" type:"path"`
	Kind string `help:"List to remove from: folders, files or all" enum:"folders,files,all" default:"all"`
}

// Run executes the remove command
func (r *RecentRemoveCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing recent remove command", "path", r.Path, "kind", r.Kind)

	ctx := context.Background()
	recent := cli.Container.Workspace.Recent()
	if err := recent.Load(ctx); err != nil {
		return fmt.Errorf("failed to load recent items: %w", err)
	}

	kinds := []domain.RecentKind{domain.RecentFolders, domain.RecentFiles}
	if r.Kind != "all" {
		kinds = []domain.RecentKind{domain.RecentKind(r.Kind)}
	}
	for _, kind := range kinds {
		if err := recent.Remove(ctx, kind, r.Path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", r.Path, err)
		}
	}

	if err := syncMirror(cli); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", r.Path)
	return nil
}

// RecentSyncCmd runs the startup reconciliation on demand
type RecentSyncCmd struct{}

// Run executes the sync command
func (r *RecentSyncCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing recent sync command")

	if err := cli.Container.Workspace.Startup(context.Background()); err != nil {
		return fmt.Errorf("failed to load recent items: %w", err)
	}
	if err := syncMirror(cli); err != nil {
		return err
	}

	items := cli.Container.Mirror.Items()
	fmt.Printf("Mirror synced: %d folders, %d files\n", len(items.Folders), len(items.Files))
	return nil
}

// syncMirror waits for published events to reach the mirror before the
// process exits
func syncMirror(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()
	if err := cli.Container.Sync(ctx); err != nil {
		return fmt.Errorf("failed to sync menu mirror: %w", err)
	}
	return nil
}

func writeRecent(w io.Writer, items domain.RecentItems) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tPATH\tFOLDER")
	for _, e := range items.Folders {
		fmt.Fprintf(tw, "folder\t%s\t%s\t\n", e.Name, e.Path)
	}
	for _, e := range items.Files {
		fmt.Fprintf(tw, "file\t%s\t%s\t%s\n", e.Name, e.Path, e.FolderPath)
	}
	tw.Flush()
}
