package ollama

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
	api "github.com/ollama/ollama/api"
	format "github.com/ollama/ollama/format"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Length of the digest prefix shown as the model ID
const idLength = 12

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns the models installed on the server, in the same form
// as the listing command prints them
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	var response api.ListResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("tags")); err != nil {
		return nil, classify(err)
	}

	result := make([]schema.Model, 0, len(response.Models))
	for _, m := range response.Models {
		result = append(result, toSchema(m))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func toSchema(m api.ListModelResponse) schema.Model {
	id := m.Digest
	if len(id) > idLength {
		id = id[:idLength]
	}
	return schema.Model{
		Name: m.Name,
		ID:   id,
		Size: format.HumanBytes(m.Size),
	}
}
