package domain

import "sort"

// TreeState holds the workspace root and the set of expanded directories.
// An empty root always implies an empty expanded set.
type TreeState struct {
	RootPath string
	expanded map[string]struct{}
}

// NewTreeState creates an empty tree state with no root
func NewTreeState() *TreeState {
	return &TreeState{expanded: make(map[string]struct{})}
}

// Reset sets a new root and clears every expanded directory,
// even when the root is unchanged
func (s *TreeState) Reset(root string) {
	s.RootPath = root
	s.expanded = make(map[string]struct{})
}

// Toggle flips membership of path in the expanded set and
// returns whether it is expanded afterwards
func (s *TreeState) Toggle(path string) bool {
	if s.expanded == nil {
		s.expanded = make(map[string]struct{})
	}
	if _, ok := s.expanded[path]; ok {
		delete(s.expanded, path)
		return false
	}
	s.expanded[path] = struct{}{}
	return true
}

// IsExpanded reports whether path is in the expanded set
func (s *TreeState) IsExpanded(path string) bool {
	_, ok := s.expanded[path]
	return ok
}

// Expanded returns the expanded paths in sorted order
func (s *TreeState) Expanded() []string {
	paths := make([]string, 0, len(s.expanded))
	for p := range s.expanded {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Snapshot returns a copy of the expanded set that is safe to read
// while the state keeps changing
func (s *TreeState) Snapshot() map[string]struct{} {
	out := make(map[string]struct{}, len(s.expanded))
	for p := range s.expanded {
		out[p] = struct{}{}
	}
	return out
}

// TreeNode is one rendered row of the tree and its materialized children.
// Collapsed directories and files never have children.
type TreeNode struct {
	Children []TreeNode `json:"children,omitempty"`
	Depth    int        `json:"depth"`
	Entry    DirEntry   `json:"entry"`
	Err      error      `json:"-"`
	Expanded bool       `json:"expanded,omitempty"`
}

// Tree is the fully materialized view of a workspace root
type Tree struct {
	Generation uint64     `json:"generation"`
	Nodes      []TreeNode `json:"nodes"`
	Root       string     `json:"root"`
}

// ExpandedPaths collects every directory rendered as expanded
func (t *Tree) ExpandedPaths() []string {
	var paths []string
	var walk func(nodes []TreeNode)
	walk = func(nodes []TreeNode) {
		for _, n := range nodes {
			if n.Expanded {
				paths = append(paths, n.Entry.Path)
			}
			walk(n.Children)
		}
	}
	walk(t.Nodes)
	sort.Strings(paths)
	return paths
}

// Flatten returns the visible rows in depth-first display order
func (t *Tree) Flatten() []TreeNode {
	var rows []TreeNode
	var walk func(nodes []TreeNode)
	walk = func(nodes []TreeNode) {
		for _, n := range nodes {
			row := n
			row.Children = nil
			rows = append(rows, row)
			walk(n.Children)
		}
	}
	walk(t.Nodes)
	return rows
}

// Find returns the node for path if it is currently visible
func (t *Tree) Find(path string) (TreeNode, bool) {
	for _, row := range t.Flatten() {
		if row.Entry.Path == path {
			return row, true
		}
	}
	return TreeNode{}, false
}
