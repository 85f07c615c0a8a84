package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "namestat"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/namestat by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/namestat/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/namestat/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// NameListsFilePath returns the full path to the namelists.yaml file.
// Returns ~/.config/namestat/namelists.yaml by default.
func NameListsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "namelists.yaml")
}
