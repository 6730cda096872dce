package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/bancada/internal/config"
	"github.com/renato0307/bancada/internal/theme"
)

// OpenFolderForm is a single-line path prompt
type OpenFolderForm struct {
	cancelled bool
	completed bool
	input     textinput.Model
}

// NewOpenFolderForm creates the prompt prefilled with initial
func NewOpenFolderForm(initial string) *OpenFolderForm {
	input := textinput.New()
	input.Placeholder = "~/projects/my-repo"
	input.Prompt = "› "
	input.PromptStyle = theme.HintKeyStyle
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()
	return &OpenFolderForm{input: input}
}

func (f *OpenFolderForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *OpenFolderForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.cancelled = true
			f.completed = true
			return f, nil
		case "enter":
			if f.Path() != "" {
				f.completed = true
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *OpenFolderForm) View() string {
	return "Folder path\n\n" + f.input.View() + "\n\n" +
		theme.MutedStyle.Render("enter to open • esc to cancel")
}

// Done reports whether the prompt was submitted or cancelled
func (f *OpenFolderForm) Done() bool {
	return f.completed
}

// Cancelled reports whether the prompt was dismissed
func (f *OpenFolderForm) Cancelled() bool {
	return f.cancelled
}

// Path returns the entered path with ~ expanded
func (f *OpenFolderForm) Path() string {
	return config.ExpandPath(strings.TrimSpace(f.input.Value()))
}
