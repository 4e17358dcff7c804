package schema

import (
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the settings for a run of the prober. Zero values mean
// "not set", and are filled from DefaultConfig.
type Config struct {
	Executable  string        `json:"executable,omitempty" yaml:"executable,omitempty"`
	Endpoint    string        `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Model       string        `json:"model,omitempty" yaml:"model,omitempty"`
	Prompt      string        `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	System      string        `json:"system,omitempty" yaml:"system,omitempty"`
	Temperature *float64      `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Timeout     time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultExecutable = "ollama"
	DefaultEndpoint   = "http://localhost:11434/api"
	DefaultModel      = "deepseek-r1"
	DefaultPrompt     = "Say hello in exactly one sentence."
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultConfig returns the configuration used when nothing else is set
func DefaultConfig() Config {
	return Config{
		Executable: DefaultExecutable,
		Endpoint:   DefaultEndpoint,
		Model:      DefaultModel,
		Prompt:     DefaultPrompt,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Config) String() string {
	return types.Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Merge returns a copy of c with every field that is set in other
// replaced by the value from other
func (c Config) Merge(other Config) Config {
	if other.Executable != "" {
		c.Executable = other.Executable
	}
	if other.Endpoint != "" {
		c.Endpoint = other.Endpoint
	}
	if other.Model != "" {
		c.Model = other.Model
	}
	if other.Prompt != "" {
		c.Prompt = other.Prompt
	}
	if other.System != "" {
		c.System = other.System
	}
	if other.Temperature != nil {
		c.Temperature = types.Ptr(*other.Temperature)
	}
	if other.Timeout > 0 {
		c.Timeout = other.Timeout
	}
	return c
}
