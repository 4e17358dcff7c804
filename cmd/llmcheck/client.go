package main

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	ollama "github.com/mutablelogic/go-llmcheck/pkg/ollama"
	probe "github.com/mutablelogic/go-llmcheck/pkg/probe"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an endpoint client configured from the global flags
func (g *Globals) Client() (*ollama.Client, error) {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.config.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.config.Timeout))
	}
	return ollama.New(g.config.Endpoint, opts...)
}

// Prober returns a prober which uses the endpoint client
func (g *Globals) Prober(opts ...probe.Opt) (*probe.Prober, error) {
	client, err := g.Client()
	if err != nil {
		return nil, err
	}
	return probe.New(client, append([]probe.Opt{
		probe.WithExecutable(g.config.Executable),
		probe.WithLogger(g.log),
		probe.WithTracer(g.tracer),
	}, opts...)...)
}
