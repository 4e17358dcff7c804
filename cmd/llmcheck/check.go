package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CheckCommand struct {
	Model  string `name:"model" short:"m" help:"Model to look for and probe (defaults to the configured model)"`
	Prompt string `name:"prompt" help:"Prompt sent to the model (defaults to the configured prompt)"`
	JSON   bool   `name:"json" help:"Output the report as JSON"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	installURL = "https://ollama.ai/download"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CheckCommand) Run(globals *Globals) error {
	prober, err := globals.Prober()
	if err != nil {
		return err
	}

	// Override the configuration
	config := globals.config.Merge(schema.Config{
		Model:  cmd.Model,
		Prompt: cmd.Prompt,
	})

	// Run the checks
	if !cmd.JSON {
		fmt.Println("Checking Ollama installation and functionality...")
	}
	report, err := prober.Check(globals.ctx, config.Model, config.Prompt, generateOpts(config)...)
	if err != nil && !errors.Is(err, llmcheck.ErrNotInstalled) {
		return err
	}

	// Output the report
	if cmd.JSON {
		if err := writeJSON(os.Stdout, report); err != nil {
			return err
		}
	} else {
		writeReport(os.Stdout, report)
	}

	// A missing executable is a failure of the whole check
	return err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// writeReport prints the report in the order the checks were run
func writeReport(w io.Writer, report *schema.Report) {
	if !report.Installed {
		fmt.Fprintln(w, "❌ Ollama is not installed or not in PATH")
		fmt.Fprintln(w, "Please install Ollama from:", installURL)
		return
	}
	fmt.Fprintln(w, "✅ Ollama is installed")

	// Installed models
	if report.ListError != "" {
		fmt.Fprintln(w, "Error listing models:", report.ListError)
	}
	if len(report.Models) > 0 {
		fmt.Fprintf(w, "✅ Found %d models installed\n", len(report.Models))
		writeModels(w, report.Models)
	} else {
		fmt.Fprintln(w, "❌ No models found or couldn't retrieve model list")
	}

	// Requested model
	if report.ModelFound() {
		fmt.Fprintf(w, "✅ %s model found\n", report.Model)
		writeModels(w, report.Matching)
	} else {
		fmt.Fprintf(w, "❌ %s model not found\n", report.Model)
		fmt.Fprintf(w, "You can install it with: %s pull %s\n", report.Executable, report.Model)
	}

	// Probe
	fmt.Fprintf(w, "\nTesting Ollama API with %s model...\n", report.Model)
	if report.Probe != nil {
		writeResult(w, *report.Probe)
	}
	fmt.Fprintln(w, "\nOllama test complete!")
}

func writeModels(w io.Writer, models []schema.Model) {
	for _, model := range models {
		fmt.Fprintf(w, "  - %s (%s)\n", model.Name, model.Size)
	}
}

func writeResult(w io.Writer, result schema.Result) {
	if result.Success {
		fmt.Fprintln(w, "✅ Successfully called Ollama API")
		fmt.Fprintln(w, "Response:", result.Message)
	} else {
		fmt.Fprintln(w, "❌ Failed to call Ollama API:", result.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
