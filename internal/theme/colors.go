package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, focused borders
	ColorSecondary Color = "86" // Cyan - panel titles
)

// UI semantic colors
const (
	ColorBorder    Color = "238" // Dark gray - unfocused borders
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Tree colors
const (
	ColorDirectory Color = "75"  // Blue
	ColorTreeError Color = "166" // Orange - unreadable or cyclic directory
)

// Git colors
const (
	ColorBranch    Color = "141" // Purple
	ColorStaged    Color = "2"   // Green
	ColorUnstaged  Color = "3"   // Yellow
	ColorUntracked Color = "8"   // Gray
	ColorDeleted   Color = "1"   // Red
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
)
