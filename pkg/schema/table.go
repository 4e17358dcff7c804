package schema

import (
	"strings"

	// Packages
	uitable "github.com/mutablelogic/go-llmcheck/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelTable implements table.TableData for a list of models. Rows whose
// name contains Highlight are rendered in bold.
type ModelTable struct {
	Models    []Model
	Highlight string
}

///////////////////////////////////////////////////////////////////////////////
// MODEL TABLE (LIST)

func (t ModelTable) Header() []string {
	return []string{"NAME", "ID", "SIZE"}
}

func (t ModelTable) Len() int {
	return len(t.Models)
}

func (t ModelTable) Row(i int) []any {
	m := t.Models[i]
	row := []any{m.Name, m.ID, m.Size}
	if t.Highlight != "" && strings.Contains(m.Name, t.Highlight) {
		for j, v := range row {
			row[j] = uitable.Bold{Value: v}
		}
	}
	return row
}
