package ollama

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	llmcheck "github.com/mutablelogic/go-llmcheck"
	opt "github.com/mutablelogic/go-llmcheck/pkg/opt"
	api "github.com/ollama/ollama/api"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// generateRequest is the body of a non-streaming generate request
type generateRequest struct {
	Model     string         `json:"model"`
	Prompt    string         `json:"prompt"`
	System    string         `json:"system,omitempty"`
	Stream    bool           `json:"stream"`
	KeepAlive string         `json:"keep_alive,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends a prompt to a model and returns the complete response
// text. The response is never streamed.
func (c *Client) Generate(ctx context.Context, model, prompt string, opts ...opt.Opt) (string, error) {
	response, err := c.GenerateResponse(ctx, model, prompt, opts...)
	if err != nil {
		return "", err
	}
	return response.Response, nil
}

// GenerateResponse is the same as Generate, but returns the full response
// including timing metrics
func (c *Client) GenerateResponse(ctx context.Context, model, prompt string, opts ...opt.Opt) (*api.GenerateResponse, error) {
	if model == "" {
		return nil, llmcheck.ErrBadParameter.With("model is required")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Make the request body
	body := generateRequest{
		Model:  model,
		Prompt: prompt,
		System: o.GetString(opt.SystemPromptKey),
		Stream: false,
	}
	if o.Has(opt.KeepAliveKey) {
		body.KeepAlive = o.GetDuration(opt.KeepAliveKey).String()
	}
	if o.Has(opt.TemperatureKey) || o.Has(opt.SeedKey) {
		body.Options = make(map[string]any, 2)
		if o.Has(opt.TemperatureKey) {
			body.Options[opt.TemperatureKey] = o.GetFloat64(opt.TemperatureKey)
		}
		if o.Has(opt.SeedKey) {
			body.Options[opt.SeedKey] = o.GetUint(opt.SeedKey)
		}
	}
	req, err := client.NewJSONRequest(body)
	if err != nil {
		return nil, err
	}

	// Send the request
	var response api.GenerateResponse
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("generate")); err != nil {
		return nil, classify(err)
	}

	// Return the response
	return &response, nil
}
