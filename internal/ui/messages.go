package ui

import (
	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/services"
)

// Result messages sent back by the workspace commands in commands.go.
// A nil Err means the payload is valid.

// folderOpenedMsg reports the outcome of opening a workspace root
type folderOpenedMsg struct {
	Err  error
	Tree *domain.Tree
}

// treeLoadedMsg carries a rebuilt tree after a toggle or refresh
type treeLoadedMsg struct {
	Err  error
	Tree *domain.Tree
}

// statusLoadedMsg carries a git snapshot after a refresh or git action
type statusLoadedMsg struct {
	Err      error
	Snapshot *domain.GitStatusSnapshot
}

// fileOpenedMsg carries the content of a file opened in the preview
type fileOpenedMsg struct {
	Err  error
	File *services.OpenedFile
}

// recentChangedMsg asks the recent panel to reload after an add or remove
type recentChangedMsg struct {
	Err error
}

// editorClosedMsg is sent when the external editor process exits
type editorClosedMsg struct {
	Err  error
	Path string
}

// clearErrorMsg is sent by ErrorManager after the error clear delay
type clearErrorMsg struct{}
