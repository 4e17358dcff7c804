/*
probe checks that a local model runtime is usable: that its executable is
installed, which models it has, and that its inference endpoint answers a
prompt. Every step is a single blocking call.
*/
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llmcheck "github.com/mutablelogic/go-llmcheck"
	opt "github.com/mutablelogic/go-llmcheck/pkg/opt"
	runtime "github.com/mutablelogic/go-llmcheck/pkg/runtime"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Prober runs the diagnostic steps against a runtime
type Prober struct {
	executable string
	locator    llmcheck.Locator
	lister     llmcheck.Lister
	generator  llmcheck.Generator
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Opt is a functional option for a Prober
type Opt func(*Prober) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	msgUnreachable = "Failed to connect to Ollama API. Is the Ollama service running?"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a prober which sends prompts through the generator. By
// default the executable is located on the search path and models are
// listed by running the listing command.
func New(generator llmcheck.Generator, opts ...Opt) (*Prober, error) {
	if generator == nil {
		return nil, llmcheck.ErrBadParameter.With("generator is required")
	}
	p := &Prober{
		executable: schema.DefaultExecutable,
		locator:    runtime.PathLocator{},
		generator:  generator,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:     noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	// Default lister runs the listing command of the executable
	if p.lister == nil {
		lister, err := runtime.NewCommandLister(runtime.WithExecutable(p.executable))
		if err != nil {
			return nil, err
		}
		p.lister = lister
	}
	return p, nil
}

// WithExecutable sets the name or path of the runtime executable
func WithExecutable(name string) Opt {
	return func(p *Prober) error {
		if name == "" {
			return llmcheck.ErrBadParameter.With("executable name is required")
		}
		p.executable = name
		return nil
	}
}

// WithLocator replaces the executable locator
func WithLocator(locator llmcheck.Locator) Opt {
	return func(p *Prober) error {
		if locator != nil {
			p.locator = locator
		}
		return nil
	}
}

// WithLister replaces the model lister
func WithLister(lister llmcheck.Lister) Opt {
	return func(p *Prober) error {
		if lister != nil {
			p.lister = lister
		}
		return nil
	}
}

// WithLogger sets the logger for diagnostics
func WithLogger(logger *slog.Logger) Opt {
	return func(p *Prober) error {
		if logger != nil {
			p.logger = logger
		}
		return nil
	}
}

// WithTracer sets the tracer, which records a span for each step
func WithTracer(tracer trace.Tracer) Opt {
	return func(p *Prober) error {
		if tracer != nil {
			p.tracer = tracer
		}
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Installed returns the path of the executable and true if it is on the
// search path. Failures are logged and reported as false.
func (p *Prober) Installed(ctx context.Context) (string, bool) {
	path, err := p.locator.Locate(ctx, p.executable)
	if err != nil {
		p.logger.DebugContext(ctx, "executable not available", "executable", p.executable, "error", err)
		return "", false
	}
	p.logger.DebugContext(ctx, "executable found", "executable", p.executable, "path", path)
	return path, true
}

// Models returns the installed models. On failure the error is logged and
// returned together with an empty list, so callers may ignore it.
func (p *Prober) Models(ctx context.Context) (result []schema.Model, err error) {
	ctx, endSpan := otel.StartSpan(p.tracer, ctx, "Models")
	defer func() { endSpan(err) }()

	models, err := p.lister.ListModels(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "error listing models", "error", err)
		return []schema.Model{}, err
	}
	p.logger.DebugContext(ctx, "listed models", "count", len(models))
	return models, nil
}

// Probe sends one prompt to the model and returns the outcome. Failures
// are never returned as errors: the result carries a message describing
// the failure, and the underlying error in Err.
func (p *Prober) Probe(ctx context.Context, model, prompt string, opts ...opt.Opt) schema.Result {
	ctx, endSpan := otel.StartSpan(p.tracer, ctx, "Probe",
		attribute.String("model", model),
	)

	start := time.Now()
	response, err := p.generator.Generate(ctx, model, prompt, opts...)
	result := schema.Result{
		Model:    model,
		Duration: time.Since(start),
		Err:      err,
	}
	endSpan(err)

	switch {
	case err == nil:
		result.Success = true
		result.Message = response
	case errors.Is(err, llmcheck.ErrUnexpectedStatus):
		result.Message = err.Error()
	case errors.Is(err, llmcheck.ErrUnreachable):
		result.Message = msgUnreachable
	default:
		result.Message = fmt.Sprint("Error testing Ollama API: ", err)
	}
	if err != nil {
		p.logger.DebugContext(ctx, "probe failed", "model", model, "error", err)
	}
	return result
}
