package ui

import (
	"fmt"

	"github.com/renato0307/bancada/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "A file tree, git status and recent items workbench",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, version and tagline, plus an optional
// subtitle used as dialog title
func renderHeader(subtitle string) string {
	commit := versionInfo.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	result := theme.AppNameStyle.Render("Bancada") +
		theme.VersionStyle.Render(fmt.Sprintf(" %s | %s", versionInfo.Version, commit)) + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	return result + "\n"
}
