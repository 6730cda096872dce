package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	Edit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	OpenFolder key.Binding
	Quit       key.Binding
}

// NavigationKeys defines key bindings for moving between and within panels
type NavigationKeys struct {
	Down      key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	Select    key.Binding
	Up        key.Binding
}

// GitKeys defines key bindings of the git panel
type GitKeys struct {
	Commit  key.Binding
	Refresh key.Binding
	Stage   key.Binding
	Unstage key.Binding
}

// RecentKeys defines key bindings of the recent panel
type RecentKeys struct {
	Remove key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Git         GitKeys
	Navigation  NavigationKeys
	Recent      RecentKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			Edit:       buildBinding("edit"),
			ForceQuit:  buildBinding("force_quit"),
			Help:       buildBinding("help"),
			OpenFolder: buildBinding("open_folder"),
			Quit:       buildBinding("quit"),
		},
		Git: GitKeys{
			Commit:  buildBinding("commit"),
			Refresh: buildBinding("refresh"),
			Stage:   buildBinding("stage"),
			Unstage: buildBinding("unstage"),
		},
		Navigation: NavigationKeys{
			Down:      buildBinding("down"),
			NextPanel: buildBinding("next_panel"),
			PrevPanel: buildBinding("prev_panel"),
			Select:    buildBinding("select"),
			Up:        buildBinding("up"),
		},
		Recent: RecentKeys{
			Remove: buildBinding("remove_recent"),
		},
	}
}

// ShortHelp returns the bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.NextPanel,
		k.Navigation.Select,
		k.Application.OpenFolder,
		k.Application.Edit,
		k.Git.Stage,
		k.Git.Unstage,
		k.Git.Commit,
		k.Git.Refresh,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns every binding grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Up, k.Navigation.Down, k.Navigation.NextPanel, k.Navigation.PrevPanel, k.Navigation.Select},
		{k.Git.Stage, k.Git.Unstage, k.Git.Commit, k.Git.Refresh},
		{k.Recent.Remove},
		{k.Application.OpenFolder, k.Application.Edit, k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}
