package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePorcelain_ClassifiesMixedOutput(t *testing.T) {
	output := "M  a.txt\n M b.txt\n?? c.txt\nA  d.txt\n"

	staged, unstaged, untracked := ParsePorcelain(output)

	assert.Equal(t, []FileStatus{
		{Path: "a.txt", Kind: StatusModified},
		{Path: "d.txt", Kind: StatusAdded},
	}, staged)
	assert.Equal(t, []FileStatus{{Path: "b.txt", Kind: StatusModified}}, unstaged)
	assert.Equal(t, []FileStatus{{Path: "c.txt", Kind: StatusUntracked}}, untracked)
}

func TestParsePorcelain_LeadingSpaceOnFirstLineIsWorktreeChange(t *testing.T) {
	staged, unstaged, _ := ParsePorcelain(" M first.txt\nM  second.txt")

	assert.Equal(t, []FileStatus{{Path: "second.txt", Kind: StatusModified}}, staged)
	assert.Equal(t, []FileStatus{{Path: "first.txt", Kind: StatusModified}}, unstaged)
}

func TestParsePorcelain_EmptyOutput(t *testing.T) {
	staged, unstaged, untracked := ParsePorcelain("")

	assert.Empty(t, staged)
	assert.Empty(t, unstaged)
	assert.Empty(t, untracked)
	assert.NotNil(t, staged, "lists should be empty, not nil")
}

func TestParsePorcelain_Rename(t *testing.T) {
	staged, _, _ := ParsePorcelain("R  old.txt -> new.txt\n")

	assert.Equal(t, []FileStatus{{Path: "new.txt", OrigPath: "old.txt", Kind: StatusRenamed}}, staged)
}

func TestParsePorcelain_QuotedPath(t *testing.T) {
	_, _, untracked := ParsePorcelain("?? \"with space\\tand tab.txt\"\n")

	assert.Equal(t, "with space\tand tab.txt", untracked[0].Path)
}

func TestParsePorcelain_ArrowInFileName(t *testing.T) {
	staged, _, untracked := ParsePorcelain("?? \"a -> b.txt\"\nA  \"x -> y\"\n")

	assert.Equal(t, []FileStatus{{Path: "a -> b.txt", Kind: StatusUntracked}}, untracked)
	assert.Equal(t, []FileStatus{{Path: "x -> y", Kind: StatusAdded}}, staged)
}

func TestParsePorcelain_QuotedRename(t *testing.T) {
	staged, _, _ := ParsePorcelain("R  \"old -> name.txt\" -> \"new \\\"name\\\".txt\"\n")

	assert.Equal(t, []FileStatus{{
		Path:     "new \"name\".txt",
		OrigPath: "old -> name.txt",
		Kind:     StatusRenamed,
	}}, staged)
}

func TestParsePorcelain_CRLF(t *testing.T) {
	_, unstaged, _ := ParsePorcelain(" D gone.txt\r\n")

	assert.Equal(t, []FileStatus{{Path: "gone.txt", Kind: StatusDeleted}}, unstaged)
}

func TestClassifyCodes(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		section FileSection
		kind    FileStatusKind
	}{
		{"untracked", "??", SectionUntracked, StatusUntracked},
		{"staged added", "A ", SectionStaged, StatusAdded},
		{"staged modified", "M ", SectionStaged, StatusModified},
		{"staged deleted", "D ", SectionStaged, StatusDeleted},
		{"staged renamed", "R ", SectionStaged, StatusRenamed},
		{"staged copied", "C ", SectionStaged, StatusCopied},
		{"staged unmapped defaults to modified", "U ", SectionStaged, StatusModified},
		{"staged wins over worktree", "MM", SectionStaged, StatusModified},
		{"added then modified is staged added", "AM", SectionStaged, StatusAdded},
		{"unstaged modified", " M", SectionUnstaged, StatusModified},
		{"unstaged deleted", " D", SectionUnstaged, StatusDeleted},
		{"unstaged added", " A", SectionUnstaged, StatusAdded},
		{"unstaged unmapped defaults to modified", " T", SectionUnstaged, StatusModified},
		{"clean is dropped", "  ", SectionNone, ""},
		{"non-space index code is staged", "!!", SectionStaged, StatusModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, kind := ClassifyCodes(tt.code[0], tt.code[1])
			assert.Equal(t, tt.section, section)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestFileStatusKind_Badge(t *testing.T) {
	assert.Equal(t, "M", StatusModified.Badge())
	assert.Equal(t, "U", StatusUntracked.Badge())
	assert.Equal(t, "?", FileStatusKind("weird").Badge())
}

func TestGitStatusSnapshot_HasStaged(t *testing.T) {
	var nilSnap *GitStatusSnapshot
	assert.False(t, nilSnap.HasStaged())
	assert.True(t, nilSnap.IsClean())

	snap := &GitStatusSnapshot{Staged: []FileStatus{{Path: "a", Kind: StatusAdded}}}
	assert.True(t, snap.HasStaged())
	assert.False(t, snap.IsClean())
}
