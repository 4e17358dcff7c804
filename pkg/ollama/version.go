package ollama

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the version of the ollama server
func (c *Client) Version(ctx context.Context) (string, error) {
	var response struct {
		Version string `json:"version"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("version")); err != nil {
		return "", classify(err)
	}
	return response.Version, nil
}
