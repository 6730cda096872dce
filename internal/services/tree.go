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

// IgnoreLoader builds the ignore matcher for a workspace root.
// It returns nil when nothing should be hidden.
type IgnoreLoader func(ctx context.Context, root string) ports.IgnoreMatcher

// TreeOptions controls which entries the tree shows
type TreeOptions struct {
	HideIgnored  bool
	IgnoreLoader IgnoreLoader
	ShowHidden   bool
}

// TreeService materializes the directory tree of the workspace root.
// Every Open and Toggle rebuilds the whole tree from the root; only expanded
// directories are listed. Builds run outside the lock and a build that was
// superseded by a later request returns domain.ErrStaleRender.
type TreeService struct {
	fs   ports.FilesystemGateway
	opts TreeOptions

	mu         sync.Mutex
	current    *domain.Tree
	generation uint64
	ignore     ports.IgnoreMatcher
	state      *domain.TreeState
}

// NewTreeService creates a TreeService with no root
func NewTreeService(fs ports.FilesystemGateway, opts TreeOptions) *TreeService {
	return &TreeService{
		fs:    fs,
		opts:  opts,
		state: domain.NewTreeState(),
	}
}

// buildRequest is everything a build needs, captured under the lock
type buildRequest struct {
	expanded   map[string]struct{}
	generation uint64
	ignore     ports.IgnoreMatcher
	root       string
}

// Open sets root as the workspace root, clears every expanded directory
// (even when root is unchanged) and returns its first level
func (s *TreeService) Open(ctx context.Context, root string) (*domain.Tree, error) {
	logging.Logger.Debug("Opening tree", "root", root)

	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("open tree: %w", domain.ErrInvalidPath)
	}
	root = filepath.Clean(root)

	info := s.fs.PathInfo(ctx, root)
	if !info.Exists {
		return nil, fmt.Errorf("open %s: %w", root, domain.ErrNotFound)
	}
	if !info.IsDir {
		return nil, fmt.Errorf("open %s: %w", root, domain.ErrNotADirectory)
	}

	var ignore ports.IgnoreMatcher
	if s.opts.HideIgnored && s.opts.IgnoreLoader != nil {
		ignore = s.opts.IgnoreLoader(ctx, root)
	}

	s.mu.Lock()
	prevRoot, prevExpanded, prevIgnore := s.state.RootPath, s.state.Snapshot(), s.ignore
	s.state.Reset(root)
	s.ignore = ignore
	req := s.nextRequestLocked()
	s.mu.Unlock()

	tree, err := s.buildAndPublish(ctx, req, true)
	if err != nil && !errors.Is(err, domain.ErrStaleRender) {
		s.restore(req.generation, prevRoot, prevExpanded, prevIgnore)
	}
	return tree, err
}

// restore puts back the root and expanded set replaced by a failed Open,
// unless a later request already moved on
func (s *TreeService) restore(generation uint64, root string, expanded map[string]struct{}, ignore ports.IgnoreMatcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	s.state.Reset(root)
	for path := range expanded {
		s.state.Toggle(path)
	}
	s.ignore = ignore
	logging.Logger.Debug("Restored tree root after failed open", "root", root)
}

// Toggle flips dirPath between expanded and collapsed and rebuilds the tree
func (s *TreeService) Toggle(ctx context.Context, dirPath string) (*domain.Tree, error) {
	s.mu.Lock()
	if s.state.RootPath == "" {
		s.mu.Unlock()
		return nil, domain.ErrNoRoot
	}
	expanded := s.state.Toggle(filepath.Clean(dirPath))
	req := s.nextRequestLocked()
	s.mu.Unlock()

	logging.Logger.Debug("Toggled directory", "path", dirPath, "expanded", expanded, "generation", req.generation)
	return s.buildAndPublish(ctx, req, false)
}

// Refresh rebuilds the tree from the filesystem keeping the expanded set
func (s *TreeService) Refresh(ctx context.Context) (*domain.Tree, error) {
	s.mu.Lock()
	if s.state.RootPath == "" {
		s.mu.Unlock()
		return nil, domain.ErrNoRoot
	}
	req := s.nextRequestLocked()
	s.mu.Unlock()

	return s.buildAndPublish(ctx, req, false)
}

// Current returns the last published tree, or nil before the first Open
func (s *TreeService) Current() *domain.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Root returns the workspace root, empty when none is open
func (s *TreeService) Root() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.RootPath
}

// Expanded returns the expanded directories in sorted order
func (s *TreeService) Expanded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Expanded()
}

func (s *TreeService) nextRequestLocked() buildRequest {
	s.generation++
	return buildRequest{
		expanded:   s.state.Snapshot(),
		generation: s.generation,
		ignore:     s.ignore,
		root:       s.state.RootPath,
	}
}

// buildAndPublish builds the tree for req. A root listing failure is only an
// error when opening; later rebuilds render an empty tree.
func (s *TreeService) buildAndPublish(ctx context.Context, req buildRequest, strictRoot bool) (*domain.Tree, error) {
	b := &treeBuilder{ctx: ctx, fs: s.fs, opts: s.opts, req: req}

	ancestors := map[string]struct{}{b.canonical(req.root): {}}
	nodes, err := b.level(req.root, 0, ancestors)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		if strictRoot {
			return nil, fmt.Errorf("list %s: %w", req.root, err)
		}
		logging.Logger.Warn("Failed to list workspace root", "root", req.root, "error", err)
	}
	if nodes == nil {
		nodes = []domain.TreeNode{}
	}

	tree := &domain.Tree{Generation: req.generation, Nodes: nodes, Root: req.root}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.generation != s.generation {
		logging.Logger.Debug("Discarding stale tree", "generation", req.generation, "current", s.generation)
		return nil, domain.ErrStaleRender
	}
	s.current = tree
	return tree, nil
}

// treeBuilder walks the expanded part of the tree for one request
type treeBuilder struct {
	ctx  context.Context
	fs   ports.FilesystemGateway
	opts TreeOptions
	req  buildRequest
}

// level lists dir and recurses into expanded children. Listing failures below
// the root render the directory as an empty leaf.
func (b *treeBuilder) level(dir string, depth int, ancestors map[string]struct{}) ([]domain.TreeNode, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := b.fs.ListDir(b.ctx, dir)
	if err != nil {
		return nil, err
	}

	visible := domain.VisibleEntries(entries)
	nodes := make([]domain.TreeNode, 0, len(visible))
	for _, e := range visible {
		if b.hidden(e) {
			continue
		}

		node := domain.TreeNode{Depth: depth, Entry: e}
		if e.IsDir() {
			if _, ok := b.req.expanded[e.Path]; ok {
				node.Expanded = true
				b.expand(&node, ancestors)
			}
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

func (b *treeBuilder) expand(node *domain.TreeNode, ancestors map[string]struct{}) {
	canonical := b.canonical(node.Entry.Path)
	if _, cycle := ancestors[canonical]; cycle {
		logging.Logger.Warn("Symlink cycle detected", "path", node.Entry.Path, "target", canonical)
		node.Err = domain.ErrSymlinkCycle
		return
	}

	ancestors[canonical] = struct{}{}
	defer delete(ancestors, canonical)

	children, err := b.level(node.Entry.Path, node.Depth+1, ancestors)
	if err != nil {
		logging.Logger.Debug("Rendering unreadable directory as leaf", "path", node.Entry.Path, "error", err)
		node.Err = err
		return
	}
	node.Children = children
}

func (b *treeBuilder) canonical(path string) string {
	resolved, err := b.fs.RealPath(b.ctx, path)
	if err != nil {
		return path
	}
	return resolved
}

func (b *treeBuilder) hidden(e domain.DirEntry) bool {
	if !b.opts.ShowHidden && strings.HasPrefix(e.Name, ".") {
		return true
	}
	if b.req.ignore == nil {
		return false
	}
	rel, err := filepath.Rel(b.req.root, e.Path)
	if err != nil {
		return false
	}
	return b.req.ignore.ShouldIgnore(rel, e.IsDir())
}
