package menu

import (
	"fmt"

	"github.com/renato0307/bancada/internal/domain"
)

const (
	HeaderRecentFiles   = "Recent Files"
	HeaderRecentFolders = "Recent Folders"
	NoRecentItems       = "No recent items"
)

// Build turns the mirror's lists into the items of the "Recent" submenu.
// Files come first; a separator divides the groups only when both are non-empty.
// With both lists empty the submenu holds a single disabled placeholder.
func Build(items domain.RecentItems) []domain.MenuItem {
	if len(items.Files) == 0 && len(items.Folders) == 0 {
		return []domain.MenuItem{{Action: domain.MenuActionNone, Label: NoRecentItems}}
	}

	var out []domain.MenuItem

	if len(items.Files) > 0 {
		out = append(out, header(HeaderRecentFiles))
		for _, f := range items.Files {
			out = append(out, domain.MenuItem{
				Action:     domain.MenuActionOpenFile,
				Enabled:    true,
				FolderPath: f.FolderPath,
				Label:      Label(f),
				Path:       f.Path,
				ToolTip:    f.Path,
			})
		}
	}

	if len(items.Files) > 0 && len(items.Folders) > 0 {
		out = append(out, domain.MenuItem{Action: domain.MenuActionNone, Separator: true})
	}

	if len(items.Folders) > 0 {
		out = append(out, header(HeaderRecentFolders))
		for _, f := range items.Folders {
			out = append(out, domain.MenuItem{
				Action:  domain.MenuActionOpenFolder,
				Enabled: true,
				Label:   Label(f),
				Path:    f.Path,
				ToolTip: f.Path,
			})
		}
	}

	return out
}

func header(label string) domain.MenuItem {
	return domain.MenuItem{Action: domain.MenuActionNone, Label: label}
}

// Label returns the menu label of an entry
func Label(e domain.RecentEntry) string {
	return fmt.Sprintf("%s — %s", e.Name, e.Path)
}
