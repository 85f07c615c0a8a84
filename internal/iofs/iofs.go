// Package iofs handles file system operations of namestat: application
// directories, default configuration files and reading of source
// documents.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/namestat/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed namelists.yaml
var NameListsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

func EnsureNameListsFile(homeDir string) error {
	return ensureFile(config.NameListsFilePath(homeDir), NameListsYAML)
}

// ensureFile writes embedded content to path if the file does not exist.
func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
