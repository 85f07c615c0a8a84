package ionamelists

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/errcode"
)

// NameListsConfigError creates an error for when namelists.yaml
// cannot be loaded.
func NameListsConfigError(path string, err error) error {
	msg := `Cannot load name lists

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - A name is forced to both genders

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to get the default one on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.NameListsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load name lists: %w", err),
	}
}
