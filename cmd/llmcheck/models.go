package main

import (
	"fmt"
	"os"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
	runtime "github.com/mutablelogic/go-llmcheck/pkg/runtime"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
	table "github.com/mutablelogic/go-llmcheck/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCommand struct {
	Source string `name:"source" enum:"command,api" default:"command" help:"Where to list models from (command or api)"`
	Filter string `name:"filter" short:"f" help:"Only list models whose name contains this text"`
	JSON   bool   `name:"json" help:"Output the models as JSON"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ModelsCommand) Run(globals *Globals) error {
	lister, err := cmd.lister(globals)
	if err != nil {
		return err
	}

	// List the models
	models, err := lister.ListModels(globals.ctx)
	if err != nil {
		return err
	}
	models, err = filterModels(models, cmd.Filter)
	if err != nil {
		return err
	}

	// Output the models
	if cmd.JSON {
		return writeJSON(os.Stdout, models)
	}
	if len(models) == 0 {
		fmt.Println("No models found")
		return nil
	}
	fmt.Println(table.Render(schema.ModelTable{
		Models:    models,
		Highlight: globals.config.Model,
	}))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// filterModels returns the models whose name contains filter, or
// ErrNotFound when a filter matches nothing
func filterModels(models []schema.Model, filter string) ([]schema.Model, error) {
	if filter == "" {
		return models, nil
	}
	if models = schema.MatchModels(models, filter); len(models) == 0 {
		return nil, llmcheck.ErrNotFound.Withf("no models matching %q", filter)
	}
	return models, nil
}

func (cmd *ModelsCommand) lister(globals *Globals) (llmcheck.Lister, error) {
	switch cmd.Source {
	case "api":
		return globals.Client()
	case "command", "":
		return runtime.NewCommandLister(runtime.WithExecutable(globals.config.Executable))
	default:
		return nil, llmcheck.ErrBadParameter.Withf("source %q", cmd.Source)
	}
}
