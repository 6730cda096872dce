package domain

import (
	"strconv"
	"strings"
	"time"
)

// FileStatusKind is the kind of change recorded for a path
type FileStatusKind string

const (
	StatusAdded     FileStatusKind = "added"
	StatusCopied    FileStatusKind = "copied"
	StatusDeleted   FileStatusKind = "deleted"
	StatusModified  FileStatusKind = "modified"
	StatusRenamed   FileStatusKind = "renamed"
	StatusUntracked FileStatusKind = "untracked"
)

// Badge returns the one-letter marker shown next to a path
func (k FileStatusKind) Badge() string {
	switch k {
	case StatusAdded:
		return "A"
	case StatusCopied:
		return "C"
	case StatusDeleted:
		return "D"
	case StatusModified:
		return "M"
	case StatusRenamed:
		return "R"
	case StatusUntracked:
		return "U"
	default:
		return "?"
	}
}

// FileStatus is one classified path from a status listing
type FileStatus struct {
	Kind     FileStatusKind `json:"status"`
	OrigPath string         `json:"origPath,omitempty"` // source path of a rename or copy
	Path     string         `json:"path"`               // repo-relative
}

// GitStatusSnapshot is the wholesale result of one status refresh
type GitStatusSnapshot struct {
	Branch    string       `json:"branch"`
	FetchedAt time.Time    `json:"fetchedAt"`
	Staged    []FileStatus `json:"staged"`
	Unstaged  []FileStatus `json:"unstaged"`
	Untracked []FileStatus `json:"untracked"`
}

// HasStaged reports whether a commit would record anything
func (s *GitStatusSnapshot) HasStaged() bool {
	return s != nil && len(s.Staged) > 0
}

// IsClean reports whether there is nothing to show
func (s *GitStatusSnapshot) IsClean() bool {
	return s == nil || len(s.Staged)+len(s.Unstaged)+len(s.Untracked) == 0
}

// RepoState is the status engine's state for the current root
type RepoState string

const (
	RepoStateNoRoot    RepoState = "no_root"
	RepoStateNotARepo  RepoState = "not_a_repo"
	RepoStateRepo      RepoState = "repo"
	UnknownBranchLabel           = "unknown"
)

// FileSection is the list a classified path belongs to
type FileSection int

const (
	SectionNone FileSection = iota
	SectionStaged
	SectionUnstaged
	SectionUntracked
)

var stagedKinds = map[byte]FileStatusKind{
	'A': StatusAdded,
	'C': StatusCopied,
	'D': StatusDeleted,
	'M': StatusModified,
	'R': StatusRenamed,
}

var unstagedKinds = map[byte]FileStatusKind{
	'A': StatusAdded,
	'D': StatusDeleted,
	'M': StatusModified,
}

// ClassifyCodes maps the index (x) and worktree (y) status characters to a
// section and kind. Index changes win over worktree changes.
func ClassifyCodes(x, y byte) (FileSection, FileStatusKind) {
	switch {
	case x == '?' && y == '?':
		return SectionUntracked, StatusUntracked
	case x != ' ' && x != '?':
		if kind, ok := stagedKinds[x]; ok {
			return SectionStaged, kind
		}
		return SectionStaged, StatusModified
	case y != ' ' && y != '?':
		if kind, ok := unstagedKinds[y]; ok {
			return SectionUnstaged, kind
		}
		return SectionUnstaged, StatusModified
	default:
		return SectionNone, ""
	}
}

// ParsePorcelain classifies `git status --porcelain` output (format v1).
// Each line is XY, a space and a path; lines that match no section are dropped.
func ParsePorcelain(output string) (staged, unstaged, untracked []FileStatus) {
	staged, unstaged, untracked = []FileStatus{}, []FileStatus{}, []FileStatus{}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 4 {
			continue
		}

		section, kind := ClassifyCodes(line[0], line[1])
		fs := FileStatus{Kind: kind}
		renamed := line[0] == 'R' || line[0] == 'C' || line[1] == 'R' || line[1] == 'C'
		fs.Path, fs.OrigPath = splitPorcelainPath(line[3:], renamed)

		switch section {
		case SectionStaged:
			staged = append(staged, fs)
		case SectionUnstaged:
			unstaged = append(unstaged, fs)
		case SectionUntracked:
			untracked = append(untracked, fs)
		}
	}

	return staged, unstaged, untracked
}

// splitPorcelainPath handles git's C-style quoting and, for renames and
// copies only, the "orig -> new" form. Git quotes any path containing a space
// so an arrow inside a quoted token is part of the name.
func splitPorcelainPath(raw string, renamed bool) (path, orig string) {
	if !renamed {
		return unquotePath(raw), ""
	}
	if strings.HasPrefix(raw, `"`) {
		if token, rest, ok := cutQuoted(raw); ok && strings.HasPrefix(rest, " -> ") {
			return unquotePath(rest[4:]), unquotePath(token)
		}
	}
	if idx := strings.Index(raw, " -> "); idx >= 0 {
		return unquotePath(raw[idx+4:]), unquotePath(raw[:idx])
	}
	return unquotePath(raw), ""
}

// cutQuoted splits a leading double-quoted token, escapes included, from the rest
func cutQuoted(raw string) (token, rest string, ok bool) {
	for i := 1; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '"':
			return raw[:i+1], raw[i+1:], true
		}
	}
	return "", raw, false
}

func unquotePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		if unquoted, err := strconv.Unquote(p); err == nil {
			return unquoted
		}
	}
	return p
}
