package probe

import (
	"context"

	// Packages
	uuid "github.com/google/uuid"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llmcheck "github.com/mutablelogic/go-llmcheck"
	opt "github.com/mutablelogic/go-llmcheck/pkg/opt"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Check runs the diagnostic sequence: locate the executable, list the
// installed models, select those matching the model name, then probe the
// model. The model is probed whether or not it was found in the listing.
//
// If the executable is not installed, the partial report is returned
// with ErrNotInstalled and no further steps are run. A failure to list
// models or to probe the endpoint is recorded in the report.
func (p *Prober) Check(ctx context.Context, model, prompt string, opts ...opt.Opt) (_ *schema.Report, err error) {
	report := &schema.Report{
		ID:         uuid.NewString(),
		Executable: p.executable,
		Model:      model,
		Models:     []schema.Model{},
		Matching:   []schema.Model{},
	}

	ctx, endSpan := otel.StartSpan(p.tracer, ctx, "Check",
		attribute.String("id", report.ID),
		attribute.String("model", model),
	)
	defer func() { endSpan(err) }()

	// Step 1: executable
	report.Path, report.Installed = p.Installed(ctx)
	if !report.Installed {
		return report, llmcheck.ErrNotInstalled.Withf("%q is not installed or not in PATH", p.executable)
	}

	// Step 2: installed models
	if models, err := p.Models(ctx); err != nil {
		report.ListError = err.Error()
	} else {
		report.Models = models
	}

	// Step 3: models matching the name
	report.Matching = schema.MatchModels(report.Models, model)

	// Step 4: probe the endpoint
	result := p.Probe(ctx, model, prompt, opts...)
	report.Probe = &result

	// Return the report
	return report, nil
}
