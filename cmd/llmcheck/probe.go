package main

import (
	"fmt"
	"os"

	// Packages
	ollama "github.com/mutablelogic/go-llmcheck/pkg/ollama"
	opt "github.com/mutablelogic/go-llmcheck/pkg/opt"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ProbeCommand struct {
	Model  string `name:"model" short:"m" help:"Model to probe (defaults to the configured model)"`
	Prompt string `name:"prompt" help:"Prompt sent to the model (defaults to the configured prompt)"`
	JSON   bool   `name:"json" help:"Output the result as JSON"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ProbeCommand) Run(globals *Globals) error {
	prober, err := globals.Prober()
	if err != nil {
		return err
	}

	config := globals.config.Merge(schema.Config{
		Model:  cmd.Model,
		Prompt: cmd.Prompt,
	})
	result := prober.Probe(globals.ctx, config.Model, config.Prompt, generateOpts(config)...)

	// Output the result
	if cmd.JSON {
		if err := writeJSON(os.Stdout, result); err != nil {
			return err
		}
	} else {
		writeResult(os.Stdout, result)
	}

	// Exit with an error when the probe failed
	if !result.Success {
		return fmt.Errorf("probe of %q failed", result.Model)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generateOpts returns the generation options from the configuration
func generateOpts(config schema.Config) []opt.Opt {
	var opts []opt.Opt
	if config.System != "" {
		opts = append(opts, ollama.WithSystemPrompt(config.System))
	}
	if config.Temperature != nil {
		opts = append(opts, ollama.WithTemperature(*config.Temperature))
	}
	return opts
}
