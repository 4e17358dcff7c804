package llmcheck

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-llmcheck/pkg/opt"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Locator resolves an executable on the search path
type Locator interface {
	// Locate returns the path of the named executable, or ErrNotInstalled
	Locate(ctx context.Context, name string) (string, error)
}

// Lister returns the models installed in the runtime
type Lister interface {
	// ListModels returns the installed models in listing order. Duplicate
	// names are returned as-is.
	ListModels(ctx context.Context) ([]schema.Model, error)
}

// Generator sends a single prompt to an inference endpoint
type Generator interface {
	// Generate returns the response text for a prompt, without streaming
	Generate(ctx context.Context, model, prompt string, opts ...opt.Opt) (string, error)
}
