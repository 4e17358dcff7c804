/*
ollama implements a client for the local HTTP API of ollama
https://github.com/ollama/ollama/blob/main/docs/api.md
*/
package ollama

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	llmcheck "github.com/mutablelogic/go-llmcheck"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ llmcheck.Lister = (*Client)(nil)
var _ llmcheck.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client, with an ollama endpoint, which should be something like
// "http://localhost:11434/api". An empty endpoint uses the default. Requests
// have no timeout unless one is set with client.OptTimeout.
func New(endPoint string, opts ...client.ClientOpt) (*Client, error) {
	if endPoint == "" {
		endPoint = schema.DefaultEndpoint
	}
	opts = append([]client.ClientOpt{client.OptTimeout(0)}, opts...)
	client, err := client.New(append(opts, client.OptEndpoint(endPoint))...)
	if err != nil {
		return nil, err
	}
	return &Client{client}, nil
}
