package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/bancada/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	b.WriteString(renderBinding(keys.Navigation.Up))
	b.WriteString(renderBinding(keys.Navigation.Down))
	b.WriteString(renderBinding(keys.Navigation.NextPanel))
	b.WriteString(renderBinding(keys.Navigation.PrevPanel))
	b.WriteString(renderBinding(keys.Navigation.Select))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Git") + "\n")
	b.WriteString(renderBinding(keys.Git.Stage))
	b.WriteString(renderBinding(keys.Git.Unstage))
	b.WriteString(renderBinding(keys.Git.Commit))
	b.WriteString(renderBinding(keys.Git.Refresh))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Recent") + "\n")
	b.WriteString(renderBinding(keys.Recent.Remove))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.OpenFolder))
	b.WriteString(renderBinding(keys.Application.Edit))
	b.WriteString(renderBinding(keys.Application.Help))
	b.WriteString(renderBinding(keys.Application.Quit))
	b.WriteString(renderBinding(keys.Application.ForceQuit))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Indicators (read-only)") + "\n")
	b.WriteString(renderShortcut("▸ / ▾", "collapsed / expanded folder"))
	b.WriteString(renderShortcut("!", "folder could not be listed or is a symlink cycle"))
	b.WriteString(renderShortcut("A M D R C", "added, modified, deleted, renamed, copied"))
	b.WriteString(renderShortcut("U", "untracked"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, footer: 3 lines
		height := msg.Height - 8
		if height < 5 {
			height = 5
		}
		h.viewport.Width = msg.Width
		h.viewport.Height = height
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n" + footer
}

// Done reports whether the screen was closed
func (h *HelpScreen) Done() bool {
	return h.completed
}
