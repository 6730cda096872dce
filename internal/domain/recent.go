package domain

// MaxRecentItems bounds each recent list
const MaxRecentItems = 10

// RecentItemsVersion is the on-disk format version of persisted recent lists
const RecentItemsVersion = 1

// RecentKind selects one of the two recent lists
type RecentKind string

const (
	RecentFiles   RecentKind = "files"
	RecentFolders RecentKind = "folders"
)

// RecentEntry is a recently opened folder or file.
// FolderPath is only set for files and names the containing workspace.
type RecentEntry struct {
	FolderPath string `json:"folderPath,omitempty"`
	Name       string `json:"name"`
	Path       string `json:"path"`
}

// RecentList is a newest-first list of entries, unique by path
type RecentList []RecentEntry

// Add moves or inserts entry at the front and truncates to MaxRecentItems.
// The receiver is never modified.
func (l RecentList) Add(entry RecentEntry) RecentList {
	out := make(RecentList, 0, MaxRecentItems)
	out = append(out, entry)
	for _, e := range l {
		if e.Path == entry.Path {
			continue
		}
		if len(out) == MaxRecentItems {
			break
		}
		out = append(out, e)
	}
	return out
}

// Remove drops every entry with the given path
func (l RecentList) Remove(path string) RecentList {
	out := make(RecentList, 0, len(l))
	for _, e := range l {
		if e.Path != path {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether path is in the list
func (l RecentList) Contains(path string) bool {
	for _, e := range l {
		if e.Path == path {
			return true
		}
	}
	return false
}

// Paths returns the entry paths in order
func (l RecentList) Paths() []string {
	paths := make([]string, len(l))
	for i, e := range l {
		paths[i] = e.Path
	}
	return paths
}

// RecentItems is the pair of lists kept by each side
type RecentItems struct {
	Files   RecentList `json:"files"`
	Folders RecentList `json:"folders"`
	Version int        `json:"version"`
}

// NewRecentItems returns empty lists at the current version
func NewRecentItems() RecentItems {
	return RecentItems{
		Files:   RecentList{},
		Folders: RecentList{},
		Version: RecentItemsVersion,
	}
}

// List returns the list selected by kind
func (r RecentItems) List(kind RecentKind) RecentList {
	if kind == RecentFiles {
		return r.Files
	}
	return r.Folders
}

// WithList returns a copy of r with the selected list replaced
func (r RecentItems) WithList(kind RecentKind, list RecentList) RecentItems {
	if kind == RecentFiles {
		r.Files = list
	} else {
		r.Folders = list
	}
	return r
}
