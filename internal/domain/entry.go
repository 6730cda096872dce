package domain

import (
	"sort"
	"strings"
)

// EntryKind distinguishes files from directories in a listing
type EntryKind string

const (
	KindDirectory EntryKind = "directory"
	KindFile      EntryKind = "file"
)

// GitDirName is never shown in the tree
const GitDirName = ".git"

// DirEntry is a single item of a directory listing.
// Entries are produced fresh on every listing and never cached.
type DirEntry struct {
	Kind EntryKind `json:"kind"`
	Name string    `json:"name"`
	Path string    `json:"path"`
}

// IsDir reports whether the entry is a directory
func (e DirEntry) IsDir() bool {
	return e.Kind == KindDirectory
}

// PathInfo describes what exists at a path
type PathInfo struct {
	Exists bool `json:"exists"`
	IsDir  bool `json:"isDirectory,omitempty"`
}

// SortEntries orders directories before files, then by case-insensitive name.
// Names that differ only in case fall back to a byte-wise comparison so the
// order is total.
func SortEntries(entries []DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		return a.Name < b.Name
	})
}

// VisibleEntries drops the .git entry and returns the rest sorted for display
func VisibleEntries(entries []DirEntry) []DirEntry {
	visible := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		if e.Name == GitDirName {
			continue
		}
		visible = append(visible, e)
	}
	SortEntries(visible)
	return visible
}
