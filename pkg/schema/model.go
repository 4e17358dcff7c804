package schema

import (
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model describes one installed model, as reported by the runtime. It has
// no identity beyond its fields.
type Model struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Size string `json:"size"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return types.Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MatchModels returns the models whose name contains name, in order
func MatchModels(models []Model, name string) []Model {
	result := make([]Model, 0, len(models))
	for _, model := range models {
		if strings.Contains(model.Name, name) {
			result = append(result, model)
		}
	}
	return result
}
