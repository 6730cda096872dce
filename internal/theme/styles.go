package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSelected).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Panel styles
var (
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Bold(true)
)

// Tree styles
var (
	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorDirectory).
			Bold(true)

	TreeErrorStyle = lipgloss.NewStyle().
			Foreground(ColorTreeError)
)

// Git styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorBranch).
			Bold(true)

	DeletedStyle = lipgloss.NewStyle().
			Foreground(ColorDeleted)

	StagedStyle = lipgloss.NewStyle().
			Foreground(ColorStaged)

	UnstagedStyle = lipgloss.NewStyle().
			Foreground(ColorUnstaged)

	UntrackedStyle = lipgloss.NewStyle().
			Foreground(ColorUntracked)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// HintKeyStyle highlights keys in empty-state hints
var HintKeyStyle = lipgloss.NewStyle().
	Foreground(ColorHintKey).
	Bold(true)
