package domain

// MenuAction is what selecting a menu item asks the UI to do
type MenuAction string

const (
	MenuActionNone       MenuAction = ""
	MenuActionOpenFile   MenuAction = "open-file"
	MenuActionOpenFolder MenuAction = "open-folder"
)

// MenuItem is one row of the recent-items menu
type MenuItem struct {
	Action     MenuAction `json:"action,omitempty"`
	Enabled    bool       `json:"enabled"`
	FolderPath string     `json:"folderPath,omitempty"`
	Label      string     `json:"label,omitempty"`
	Path       string     `json:"path,omitempty"`
	Separator  bool       `json:"separator,omitempty"`
	ToolTip    string     `json:"toolTip,omitempty"`
}
