/*
runtime interrogates a locally installed model runtime through its command
line tool: whether the executable is on the search path, and which models
it has installed.
*/
package runtime

import (
	"context"
	"os/exec"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// PathLocator finds executables on the process search path
type PathLocator struct{}

var _ llmcheck.Locator = PathLocator{}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Locate returns the absolute path of the named executable
func (PathLocator) Locate(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", llmcheck.ErrBadParameter.With("executable name is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", llmcheck.ErrNotInstalled.Withf("%q: %v", name, err)
	}
	return path, nil
}
