package runtime

import (
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Minimum number of columns for a row: name, id and a two-token size
const minFields = 4

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseList parses the tabular output of "ollama list". The first line is
// a header and is discarded. Each following line contributes a model only
// if it splits into at least four whitespace-separated fields, where the
// third and fourth fields form the size (for example "4.7 GB"). Shorter
// lines are skipped. The parse depends on the column order of the tool.
func ParseList(data []byte) []schema.Model {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) <= 1 {
		return []schema.Model{}
	}

	models := make([]schema.Model, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < minFields {
			continue
		}
		models = append(models, schema.Model{
			Name: fields[0],
			ID:   fields[1],
			Size: fields[2] + " " + fields[3],
		})
	}
	return models
}
