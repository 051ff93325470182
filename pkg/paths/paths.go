package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default directories and files
const (
	// DotmanDirName is the directory name for dotman-specific files
	DotmanDirName = "dotman"

	// SettingsFileName is the name of the user settings file
	SettingsFileName = "config.toml"

	// HomeMarker prefixes portable paths relative to the home directory
	HomeMarker = "~"
)

// ConfigDir returns $XDG_CONFIG_HOME/dotman
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, DotmanDirName)
}

// SettingsPath returns the location of the user settings file
func SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// StateDir returns $XDG_STATE_HOME/dotman
func StateDir() string {
	return filepath.Join(xdg.StateHome, DotmanDirName)
}
