package main

import (
	"fmt"
	"strings"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llmcheck "github.com/mutablelogic/go-llmcheck"
	ollama "github.com/mutablelogic/go-llmcheck/pkg/ollama"
	opt "github.com/mutablelogic/go-llmcheck/pkg/opt"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
	text "github.com/mutablelogic/go-llmcheck/pkg/ui/text"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCommand struct {
	Question    []string      `arg:"" help:"Question to ask the model"`
	Model       string        `name:"model" short:"m" help:"Model to ask (defaults to the configured model)"`
	System      string        `name:"system" help:"System prompt"`
	Temperature *float64      `name:"temperature" help:"Sampling temperature (0.0 to 2.0)"`
	Seed        *uint         `name:"seed" help:"Random seed for reproducible responses"`
	KeepAlive   time.Duration `name:"keep-alive" help:"How long the model stays loaded after the request"`
	Markdown    bool          `name:"markdown" negatable:"" default:"true" help:"Render the response as markdown"`
	Thinking    bool          `name:"thinking" help:"Keep the model's reasoning in the response"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(globals *Globals) (err error) {
	question := strings.TrimSpace(strings.Join(cmd.Question, " "))
	if question == "" {
		return llmcheck.ErrBadParameter.With("question is required")
	}

	// Flags override the configuration
	config := globals.config.Merge(schema.Config{
		Model:  cmd.Model,
		System: cmd.System,
	})
	if cmd.Temperature != nil {
		config.Temperature = types.Ptr(*cmd.Temperature)
	}

	client, err := globals.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(globals.tracer, globals.ctx, "AskCommand",
		attribute.String("model", config.Model),
	)
	defer func() { endSpan(err) }()

	// Ask the question
	response, err := client.Generate(parent, config.Model, question, cmd.opts(config)...)
	if err != nil {
		return err
	}
	if !cmd.Thinking {
		response = text.StripThinking(response)
	}

	// Render the response
	out, err := text.Render(response, text.Width(), cmd.Markdown)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// opts returns the generation options from the configuration and flags
func (cmd *AskCommand) opts(config schema.Config) []opt.Opt {
	opts := generateOpts(config)
	if cmd.Seed != nil {
		opts = append(opts, ollama.WithSeed(*cmd.Seed))
	}
	if cmd.KeepAlive != 0 {
		opts = append(opts, ollama.WithKeepAlive(cmd.KeepAlive))
	}
	return opts
}
