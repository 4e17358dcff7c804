package ollama

import (
	"time"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
	opt "github.com/mutablelogic/go-llmcheck/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithSystemPrompt sets the system prompt for the request
func WithSystemPrompt(value string) opt.Opt {
	return opt.SetString(opt.SystemPromptKey, value)
}

// WithTemperature sets the sampling temperature (0.0 to 2.0)
func WithTemperature(value float64) opt.Opt {
	if value < 0 || value > 2 {
		return opt.Error(llmcheck.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithSeed sets the random seed for reproducible responses
func WithSeed(value uint) opt.Opt {
	return opt.SetUint(opt.SeedKey, value)
}

// WithKeepAlive controls how long the model stays loaded after the request
func WithKeepAlive(value time.Duration) opt.Opt {
	if value < 0 {
		return opt.Error(llmcheck.ErrBadParameter.With("keep alive must not be negative"))
	}
	return opt.SetDuration(opt.KeepAliveKey, value)
}
