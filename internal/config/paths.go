package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the state directory
const EnvHome = "BANCADA_HOME"

// GetHome returns $BANCADA_HOME or ~/.bancada
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".bancada"
		}
		return filepath.Join(homeDir, ".bancada")
	}
	return ExpandPath(home)
}

// GetDBPath returns $BANCADA_HOME/state.db, the UI-local store
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetRecentItemsPath returns $BANCADA_HOME/recent-items.json, the menu mirror
func GetRecentItemsPath() string {
	return filepath.Join(GetHome(), "recent-items.json")
}

// GetSettingsPath returns $BANCADA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
