package ui

import tea "github.com/charmbracelet/bubbletea"

// completable is implemented by dialog contents that finish on their own
type completable interface {
	Done() bool
}

// Dialog wraps any tea.Model content and prepends the application header
// with a title.
type Dialog struct {
	content tea.Model
	title   string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model) *Dialog {
	return &Dialog{content: content, title: title}
}

// Init delegates to wrapped content's Init method
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view
func (d *Dialog) View() string {
	return renderHeader(d.title) + "\n" + d.content.View()
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}

// Done reports whether the wrapped content has finished
func (d *Dialog) Done() bool {
	if c, ok := d.content.(completable); ok {
		return c.Done()
	}
	return false
}
