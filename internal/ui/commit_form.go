package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/bancada/internal/domain"
)

// CommitForm asks for a commit message. The commit itself is run by the
// model once the form completes.
type CommitForm struct {
	cancelled bool
	completed bool
	form      *huh.Form
	message   string
}

// NewCommitForm creates a commit form for the given number of staged files
func NewCommitForm(staged int) *CommitForm {
	cf := &CommitForm{}
	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Commit message").
				Description(fmt.Sprintf("%d staged file(s)", staged)).
				Value(&cf.message).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return domain.ErrEmptyCommitMessage
					}
					return nil
				}),
		),
	)
	return cf
}

func (cf *CommitForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CommitForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		cf.cancelled = true
		cf.completed = true
		return cf, nil
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	switch cf.form.State {
	case huh.StateCompleted:
		cf.completed = true
		return cf, nil
	case huh.StateAborted:
		cf.cancelled = true
		cf.completed = true
		return cf, nil
	}
	return cf, cmd
}

func (cf *CommitForm) View() string {
	return cf.form.View()
}

// Done reports whether the form was submitted or cancelled
func (cf *CommitForm) Done() bool {
	return cf.completed
}

// Result returns the entered message and whether the form was cancelled
func (cf *CommitForm) Result() (message string, cancelled bool) {
	return cf.message, cf.cancelled
}
