package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Report collects the outcome of one run of the diagnostic sequence
type Report struct {
	ID         string  `json:"id"`
	Executable string  `json:"executable"`
	Installed  bool    `json:"installed"`
	Path       string  `json:"path,omitempty"`
	Models     []Model `json:"models"`
	ListError  string  `json:"list_error,omitempty"`
	Model      string  `json:"model"`
	Matching   []Model `json:"matching"`
	Probe      *Result `json:"probe,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Report) String() string {
	return types.Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ModelFound returns true if at least one installed model matched
func (r Report) ModelFound() bool {
	return len(r.Matching) > 0
}
