package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// OpenedFile is the file currently shown in the editor pane
type OpenedFile struct {
	Content    []byte
	FolderPath string
	Path       string
}

// Workspace is the session context tying the tree, the git engine and the
// recent lists to one open folder
type Workspace struct {
	fs     ports.FilesystemGateway
	git    *GitStatusEngine
	recent *RecentService
	tree   *TreeService

	mu   sync.Mutex
	file *OpenedFile
	root string
}

// NewWorkspace creates a workspace with nothing open
func NewWorkspace(fs ports.FilesystemGateway, tree *TreeService, git *GitStatusEngine, recent *RecentService) *Workspace {
	return &Workspace{fs: fs, git: git, recent: recent, tree: tree}
}

// Tree returns the tree service
func (w *Workspace) Tree() *TreeService { return w.tree }

// Git returns the status engine
func (w *Workspace) Git() *GitStatusEngine { return w.git }

// Recent returns the UI-local recent store
func (w *Workspace) Recent() *RecentService { return w.recent }

// Root returns the open folder, empty when none
func (w *Workspace) Root() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// File returns the open file, nil when none
func (w *Workspace) File() *OpenedFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file
}

// Startup loads the recent lists and re-publishes them to the mirror
func (w *Workspace) Startup(ctx context.Context) error {
	if err := w.recent.Load(ctx); err != nil {
		return err
	}
	if err := w.recent.Reconcile(ctx); err != nil {
		logging.Logger.Warn("Startup reconciliation failed", "error", err)
	}
	return nil
}

// OpenFolder makes path the workspace root. A folder that no longer exists,
// or is no longer a directory, is pruned from the recent folders. Git status is refreshed and the folder is
// recorded as recent; neither failure fails the open.
func (w *Workspace) OpenFolder(ctx context.Context, path string) (*domain.Tree, error) {
	path, err := absPath(path)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Opening folder", "path", path)

	info := w.fs.PathInfo(ctx, path)
	if !info.Exists || !info.IsDir {
		logging.Logger.Warn("Folder is no longer valid, pruning from recent", "path", path, "exists", info.Exists)
		if err := w.recent.Remove(ctx, domain.RecentFolders, path); err != nil {
			logging.Logger.Warn("Failed to prune recent folder", "path", path, "error", err)
		}
		if !info.Exists {
			return nil, fmt.Errorf("open folder %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open folder %s: %w", path, domain.ErrNotADirectory)
	}

	tree, err := w.tree.Open(ctx, path)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.root = path
	w.file = nil
	w.mu.Unlock()

	if _, err := w.git.Refresh(ctx, path); err != nil && !errors.Is(err, domain.ErrNotARepository) {
		logging.Logger.Warn("Git refresh after open failed", "path", path, "error", err)
	}

	if err := w.recent.AddFolder(ctx, path); err != nil {
		logging.Logger.Warn("Failed to record recent folder", "path", path, "error", err)
	}

	return tree, nil
}

// OpenFile reads path into the editor. When folderPath is empty the file's
// directory is used; a folder other than the current root is opened first.
// A file that no longer exists is pruned from the recent files.
func (w *Workspace) OpenFile(ctx context.Context, path, folderPath string) (*OpenedFile, error) {
	path, err := absPath(path)
	if err != nil {
		return nil, err
	}
	if folderPath == "" {
		folderPath = filepath.Dir(path)
	} else if folderPath, err = absPath(folderPath); err != nil {
		return nil, err
	}

	if folderPath != w.Root() {
		if _, err := w.OpenFolder(ctx, folderPath); err != nil {
			return nil, err
		}
	}

	content, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if rmErr := w.recent.Remove(ctx, domain.RecentFiles, path); rmErr != nil {
				logging.Logger.Warn("Failed to prune recent file", "path", path, "error", rmErr)
			}
		}
		return nil, err
	}

	file := &OpenedFile{Content: content, FolderPath: folderPath, Path: path}
	w.mu.Lock()
	w.file = file
	w.mu.Unlock()

	if err := w.recent.AddFile(ctx, path, folderPath); err != nil {
		logging.Logger.Warn("Failed to record recent file", "path", path, "error", err)
	}

	logging.Logger.Info("Opened file", "path", path, "bytes", len(content))
	return file, nil
}

// Toggle expands or collapses a directory of the open tree
func (w *Workspace) Toggle(ctx context.Context, dirPath string) (*domain.Tree, error) {
	return w.tree.Toggle(ctx, dirPath)
}

// RefreshStatus refreshes git status of the open folder
func (w *Workspace) RefreshStatus(ctx context.Context) (*domain.GitStatusSnapshot, error) {
	root := w.Root()
	if root == "" {
		return nil, domain.ErrNoRoot
	}
	return w.git.Refresh(ctx, root)
}

// Stage stages filePath and refreshes status
func (w *Workspace) Stage(ctx context.Context, filePath string) (*domain.GitStatusSnapshot, error) {
	root := w.Root()
	if root == "" {
		return nil, domain.ErrNoRoot
	}
	if err := w.git.Stage(ctx, root, filePath); err != nil {
		return nil, err
	}
	return w.git.Refresh(ctx, root)
}

// Unstage unstages filePath and refreshes status
func (w *Workspace) Unstage(ctx context.Context, filePath string) (*domain.GitStatusSnapshot, error) {
	root := w.Root()
	if root == "" {
		return nil, domain.ErrNoRoot
	}
	if err := w.git.Unstage(ctx, root, filePath); err != nil {
		return nil, err
	}
	return w.git.Refresh(ctx, root)
}

// Commit commits the index and refreshes status
func (w *Workspace) Commit(ctx context.Context, message string) (*domain.GitStatusSnapshot, error) {
	root := w.Root()
	if root == "" {
		return nil, domain.ErrNoRoot
	}
	if err := w.git.Commit(ctx, root, message); err != nil {
		return nil, err
	}
	return w.git.Refresh(ctx, root)
}

func absPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", domain.ErrInvalidPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, domain.ErrInvalidPath)
	}
	return abs, nil
}
