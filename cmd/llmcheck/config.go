package main

import (
	"errors"
	"io"
	"os"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
	yaml "gopkg.in/yaml.v3"
)

//////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LoadConfig reads a YAML configuration file. Unknown keys are an error.
func LoadConfig(path string) (schema.Config, error) {
	var config schema.Config

	// Open the file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	// Decode the YAML, an empty file is an empty configuration
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, llmcheck.ErrBadParameter.Withf("%s: %v", path, err)
	}

	// Return success
	return config, nil
}

//////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolveConfig returns the configuration with flags taking precedence
// over the configuration file, and the file over defaults
func (g *Globals) resolveConfig() (schema.Config, error) {
	config := schema.DefaultConfig()
	if g.Config != "" {
		file, err := LoadConfig(g.Config)
		if err != nil {
			return config, err
		}
		config = config.Merge(file)
	}
	return config.Merge(schema.Config{
		Executable: g.OllamaExecutable,
		Endpoint:   g.OllamaEndpoint,
		Timeout:    g.Timeout,
	}), nil
}
