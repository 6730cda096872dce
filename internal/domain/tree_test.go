package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeState_ResetClearsExpanded(t *testing.T) {
	s := NewTreeState()
	s.Reset("/root")
	s.Toggle("/root/a")
	s.Toggle("/root/b")

	s.Reset("/root")

	assert.Equal(t, "/root", s.RootPath)
	assert.Empty(t, s.Expanded(), "reopening the same root clears expansion")
}

func TestTreeState_Toggle(t *testing.T) {
	s := NewTreeState()
	s.Reset("/root")

	assert.True(t, s.Toggle("/root/a"))
	assert.True(t, s.IsExpanded("/root/a"))
	assert.False(t, s.Toggle("/root/a"))
	assert.False(t, s.IsExpanded("/root/a"))
}

func TestTreeState_SnapshotIsIndependent(t *testing.T) {
	s := NewTreeState()
	s.Toggle("/a")
	snap := s.Snapshot()
	s.Toggle("/b")

	assert.Len(t, snap, 1)
	assert.Equal(t, []string{"/a", "/b"}, s.Expanded())
}

func TestTree_FlattenAndExpandedPaths(t *testing.T) {
	tree := &Tree{
		Root: "/r",
		Nodes: []TreeNode{
			{
				Entry:    DirEntry{Name: "src", Path: "/r/src", Kind: KindDirectory},
				Expanded: true,
				Children: []TreeNode{
					{Entry: DirEntry{Name: "lib", Path: "/r/src/lib", Kind: KindDirectory}, Depth: 1},
					{Entry: DirEntry{Name: "main.go", Path: "/r/src/main.go", Kind: KindFile}, Depth: 1},
				},
			},
			{Entry: DirEntry{Name: "README.md", Path: "/r/README.md", Kind: KindFile}},
		},
	}

	rows := tree.Flatten()
	paths := make([]string, len(rows))
	for i, r := range rows {
		paths[i] = r.Entry.Path
		assert.Nil(t, r.Children)
	}

	assert.Equal(t, []string{"/r/src", "/r/src/lib", "/r/src/main.go", "/r/README.md"}, paths)
	assert.Equal(t, []string{"/r/src"}, tree.ExpandedPaths())

	node, ok := tree.Find("/r/src/lib")
	assert.True(t, ok)
	assert.Equal(t, 1, node.Depth)
	_, ok = tree.Find("/r/nope")
	assert.False(t, ok)
}

func TestVisibleEntries_SortsAndHidesGitDir(t *testing.T) {
	entries := []DirEntry{
		{Name: "b.txt", Kind: KindFile},
		{Name: ".git", Kind: KindDirectory},
		{Name: "Zeta", Kind: KindDirectory},
		{Name: "A.txt", Kind: KindFile},
		{Name: "alpha", Kind: KindDirectory},
		{Name: "a.txt", Kind: KindFile},
	}

	visible := VisibleEntries(entries)

	names := make([]string, len(visible))
	for i, e := range visible {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"alpha", "Zeta", "A.txt", "a.txt", "b.txt"}, names)
}
