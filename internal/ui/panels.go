package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/bancada/internal/adapters/menu"
	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/theme"
)

// cursor is a selection index with a scroll offset over n rows
type cursor struct {
	index  int
	offset int
}

func (c *cursor) move(delta, n int) {
	c.index += delta
	c.clamp(n)
}

func (c *cursor) clamp(n int) {
	if c.index >= n {
		c.index = n - 1
	}
	if c.index < 0 {
		c.index = 0
	}
}

// window returns the [start, end) rows visible in height lines
func (c *cursor) window(n, height int) (int, int) {
	if height <= 0 {
		return 0, 0
	}
	if c.index < c.offset {
		c.offset = c.index
	}
	if c.index >= c.offset+height {
		c.offset = c.index - height + 1
	}
	if c.offset > n-height {
		c.offset = max(n-height, 0)
	}
	return c.offset, min(c.offset+height, n)
}

// filesPanel lists the visible rows of the workspace tree
type filesPanel struct {
	cursor cursor
	root   string
	rows   []domain.TreeNode
}

// setTree replaces the rows, keeping the selection on the same path
func (p *filesPanel) setTree(tree *domain.Tree) {
	var selected string
	if row, ok := p.selected(); ok {
		selected = row.Entry.Path
	}

	p.root = tree.Root
	p.rows = tree.Flatten()
	for i, row := range p.rows {
		if row.Entry.Path == selected {
			p.cursor.index = i
			break
		}
	}
	p.cursor.clamp(len(p.rows))
}

func (p *filesPanel) selected() (domain.TreeNode, bool) {
	if p.cursor.index < 0 || p.cursor.index >= len(p.rows) {
		return domain.TreeNode{}, false
	}
	return p.rows[p.cursor.index], true
}

func (p *filesPanel) render(height int, focused bool) []string {
	if p.root == "" {
		return []string{
			theme.MutedStyle.Render("No folder opened"),
			"press " + theme.HintKeyStyle.Render("o") + " to open one",
		}
	}
	if len(p.rows) == 0 {
		return []string{theme.MutedStyle.Render("(empty folder)")}
	}

	start, end := p.cursor.window(len(p.rows), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, styleRow(renderTreeRow(p.rows[i]), focused && i == p.cursor.index))
	}
	return lines
}

func renderTreeRow(row domain.TreeNode) string {
	indent := strings.Repeat("  ", row.Depth)
	if !row.Entry.IsDir() {
		return indent + "  " + row.Entry.Name
	}

	marker := "▸ "
	if row.Expanded {
		marker = "▾ "
	}
	name := theme.DirectoryStyle.Render(row.Entry.Name)
	if row.Err != nil {
		name += theme.TreeErrorStyle.Render(" !")
	}
	return indent + marker + name
}

// gitEntry is one selectable file of the git panel
type gitEntry struct {
	file    domain.FileStatus
	section domain.FileSection
}

// gitPanel shows branch and the three status sections
type gitPanel struct {
	cursor   cursor
	entries  []gitEntry
	snapshot *domain.GitStatusSnapshot
	state    domain.RepoState
}

func (p *gitPanel) setStatus(state domain.RepoState, snapshot *domain.GitStatusSnapshot) {
	p.state = state
	p.snapshot = snapshot
	p.entries = nil
	if snapshot != nil {
		for _, f := range snapshot.Staged {
			p.entries = append(p.entries, gitEntry{file: f, section: domain.SectionStaged})
		}
		for _, f := range snapshot.Unstaged {
			p.entries = append(p.entries, gitEntry{file: f, section: domain.SectionUnstaged})
		}
		for _, f := range snapshot.Untracked {
			p.entries = append(p.entries, gitEntry{file: f, section: domain.SectionUntracked})
		}
	}
	p.cursor.clamp(len(p.entries))
}

func (p *gitPanel) selected() (gitEntry, bool) {
	if p.cursor.index < 0 || p.cursor.index >= len(p.entries) {
		return gitEntry{}, false
	}
	return p.entries[p.cursor.index], true
}

func (p *gitPanel) render(height int, focused bool) []string {
	switch {
	case p.state == domain.RepoStateNoRoot || p.state == "":
		return []string{theme.MutedStyle.Render("No folder opened")}
	case p.state == domain.RepoStateNotARepo:
		return []string{theme.MutedStyle.Render("Not a git repository")}
	case p.snapshot == nil:
		return []string{theme.MutedStyle.Render("Loading status...")}
	}

	lines := []string{"⎇ " + theme.BranchStyle.Render(p.snapshot.Branch)}
	if p.snapshot.IsClean() {
		return append(lines, theme.MutedStyle.Render("Nothing to commit"))
	}

	start, end := p.cursor.window(len(p.entries), max(height-4, 1))
	var last domain.FileSection
	for i := start; i < end; i++ {
		e := p.entries[i]
		if e.section != last {
			lines = append(lines, theme.SectionTitleStyle.Render(sectionTitle(e.section)))
			last = e.section
		}
		lines = append(lines, styleRow(renderGitRow(e), focused && i == p.cursor.index))
	}
	return lines
}

func sectionTitle(section domain.FileSection) string {
	switch section {
	case domain.SectionStaged:
		return "Staged"
	case domain.SectionUnstaged:
		return "Changes"
	default:
		return "Untracked"
	}
}

func renderGitRow(e gitEntry) string {
	style := theme.UnstagedStyle
	switch {
	case e.section == domain.SectionStaged:
		style = theme.StagedStyle
	case e.section == domain.SectionUntracked:
		style = theme.UntrackedStyle
	case e.file.Kind == domain.StatusDeleted:
		style = theme.DeletedStyle
	}

	path := e.file.Path
	if e.file.OrigPath != "" {
		path = e.file.OrigPath + " → " + path
	}
	return " " + style.Render(e.file.Kind.Badge()) + " " + path
}

// recentRow is one entry of the recent panel
type recentRow struct {
	entry domain.RecentEntry
	kind  domain.RecentKind
}

// recentPanel lists recent folders then recent files
type recentPanel struct {
	cursor cursor
	rows   []recentRow
}

func (p *recentPanel) setItems(items domain.RecentItems) {
	p.rows = nil
	for _, e := range items.Folders {
		p.rows = append(p.rows, recentRow{entry: e, kind: domain.RecentFolders})
	}
	for _, e := range items.Files {
		p.rows = append(p.rows, recentRow{entry: e, kind: domain.RecentFiles})
	}
	p.cursor.clamp(len(p.rows))
}

func (p *recentPanel) selected() (recentRow, bool) {
	if p.cursor.index < 0 || p.cursor.index >= len(p.rows) {
		return recentRow{}, false
	}
	return p.rows[p.cursor.index], true
}

func (p *recentPanel) render(height int, focused bool) []string {
	if len(p.rows) == 0 {
		return []string{theme.MutedStyle.Render(menu.NoRecentItems)}
	}

	start, end := p.cursor.window(len(p.rows), max(height-2, 1))
	var lines []string
	var last domain.RecentKind
	for i := start; i < end; i++ {
		row := p.rows[i]
		if row.kind != last {
			title := menu.HeaderRecentFolders
			if row.kind == domain.RecentFiles {
				title = menu.HeaderRecentFiles
			}
			lines = append(lines, theme.SectionTitleStyle.Render(title))
			last = row.kind
		}
		lines = append(lines, styleRow(" "+menu.Label(row.entry), focused && i == p.cursor.index))
	}
	return lines
}

func styleRow(line string, selected bool) string {
	if selected {
		return theme.SelectedStyle.Render(line)
	}
	return line
}

// renderPanel draws a titled, bordered box of the given outer size
func renderPanel(title string, lines []string, width, height int, focused bool) string {
	style := theme.PanelStyle
	if focused {
		style = theme.FocusedPanelStyle
	}

	// border (2) + padding (2)
	inner := max(width-4, 1)
	body := make([]string, 0, len(lines)+1)
	body = append(body, theme.PanelTitleStyle.Render(title))
	for _, l := range lines {
		body = append(body, lipgloss.NewStyle().MaxWidth(inner).Render(l))
	}

	return style.
		Width(width - 2).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(strings.Join(body, "\n"))
}

// mirrorSummary describes the privileged menu mirror for the status line
func mirrorSummary(items domain.RecentItems) string {
	return fmt.Sprintf("menu: %d folders · %d files", len(items.Folders), len(items.Files))
}
