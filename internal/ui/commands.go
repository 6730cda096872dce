package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/ports"
	"github.com/renato0307/bancada/internal/services"
)

// Workspace operations run off the update loop; each returns one result message.

func openFolderCmd(ws *services.Workspace, path string) tea.Cmd {
	return func() tea.Msg {
		tree, err := ws.OpenFolder(context.Background(), path)
		return folderOpenedMsg{Err: err, Tree: tree}
	}
}

func openFileCmd(ws *services.Workspace, path, folderPath string) tea.Cmd {
	return func() tea.Msg {
		file, err := ws.OpenFile(context.Background(), path, folderPath)
		return fileOpenedMsg{Err: err, File: file}
	}
}

func toggleCmd(ws *services.Workspace, dirPath string) tea.Cmd {
	return func() tea.Msg {
		tree, err := ws.Toggle(context.Background(), dirPath)
		return treeLoadedMsg{Err: err, Tree: tree}
	}
}

func refreshTreeCmd(ws *services.Workspace) tea.Cmd {
	return func() tea.Msg {
		tree, err := ws.Tree().Refresh(context.Background())
		return treeLoadedMsg{Err: err, Tree: tree}
	}
}

func refreshStatusCmd(ws *services.Workspace) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := ws.RefreshStatus(context.Background())
		return statusLoadedMsg{Err: err, Snapshot: snapshot}
	}
}

func stageCmd(ws *services.Workspace, path string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := ws.Stage(context.Background(), path)
		return statusLoadedMsg{Err: err, Snapshot: snapshot}
	}
}

func unstageCmd(ws *services.Workspace, path string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := ws.Unstage(context.Background(), path)
		return statusLoadedMsg{Err: err, Snapshot: snapshot}
	}
}

func commitCmd(ws *services.Workspace, message string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := ws.Commit(context.Background(), message)
		return statusLoadedMsg{Err: err, Snapshot: snapshot}
	}
}

func removeRecentCmd(ws *services.Workspace, kind domain.RecentKind, path string) tea.Cmd {
	return func() tea.Msg {
		return recentChangedMsg{Err: ws.Recent().Remove(context.Background(), kind, path)}
	}
}

// editCmd suspends the TUI while the external editor runs on path
func editCmd(launcher ports.EditorLauncher, path string) tea.Cmd {
	cmd, err := launcher.Command(path)
	if err != nil {
		return func() tea.Msg { return editorClosedMsg{Err: err, Path: path} }
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			err = fmt.Errorf("editor exited: %w", err)
		}
		return editorClosedMsg{Err: err, Path: path}
	})
}
