// Package ionamelists reads name lists of gender classifiers from
// namelists.yaml.
package ionamelists

import (
	"os"

	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/namelists"
	"gopkg.in/yaml.v3"
)

type ionamelists struct {
	path string
}

// New creates a Loader for the namelists.yaml of the config directory.
func New(cfg *config.Config) namelists.Loader {
	return NewFromPath(config.NameListsFilePath(cfg.HomeDir))
}

// NewFromPath creates a Loader for a given file.
func NewFromPath(path string) namelists.Loader {
	res := ionamelists{path: path}
	return &res
}

func (n *ionamelists) Load() (*namelists.NameLists, error) {
	res, err := loadNameLists(n.path)
	if err != nil {
		return nil, NameListsConfigError(n.path, err)
	}
	return res, nil
}

func loadNameLists(path string) (*namelists.NameLists, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var res namelists.NameLists
	if err = yaml.Unmarshal(bs, &res); err != nil {
		return nil, err
	}

	res.MergeWithDefaults()
	if err = res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
