package schema

import (
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Result is the outcome of a single call to the inference endpoint. On
// success Message holds the response text, otherwise a human-readable
// description of the failure, and Err the underlying error.
type Result struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Model    string        `json:"model,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Result) String() string {
	return types.Stringify(r)
}
