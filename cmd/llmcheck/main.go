package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Config string `name:"config" type:"path" env:"LLMCHECK_CONFIG" help:"YAML configuration file" optional:""`

	// Runtime
	Ollama `embed:"" help:"Ollama configuration"`

	// Context
	ctx    context.Context
	log    *slog.Logger
	tracer trace.Tracer
	config schema.Config
}

type Ollama struct {
	OllamaEndpoint   string        `env:"OLLAMA_URL" help:"Ollama endpoint"`
	OllamaExecutable string        `env:"OLLAMA_EXECUTABLE" help:"Ollama command line tool"`
	Timeout          time.Duration `name:"timeout" help:"Timeout for requests to the endpoint"`
}

type CLI struct {
	Globals

	// Commands
	Check   CheckCommand   `cmd:"" default:"1" help:"Check the runtime is installed, list models and probe the endpoint"`
	Models  ModelsCommand  `cmd:"" help:"List installed models"`
	Probe   ProbeCommand   `cmd:"" help:"Send a single test prompt to a model"`
	Ask     AskCommand     `cmd:"" help:"Ask a model a question"`
	Version VersionCommand `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Check a local LLM runtime"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Create a logger
	level := slog.LevelWarn
	if cli.Debug || cli.Verbose {
		level = slog.LevelDebug
	}
	cli.Globals.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Tracer from the global provider
	cli.Globals.tracer = otel.Tracer(execName())

	// Resolve the configuration
	config, err := cli.Globals.resolveConfig()
	cmd.FatalIfErrorf(err)
	cli.Globals.config = config
	cli.Globals.log.Debug("configuration", "config", config.String())

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
