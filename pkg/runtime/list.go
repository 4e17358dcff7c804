package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
	schema "github.com/mutablelogic/go-llmcheck/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// RunFunc runs a command to completion and returns its standard output and
// standard error
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

// CommandLister lists models by running the listing command of the runtime
// and parsing its text output
type CommandLister struct {
	executable string
	run        RunFunc
}

// Opt is a functional option for a CommandLister
type Opt func(*CommandLister) error

var _ llmcheck.Lister = (*CommandLister)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCommandLister returns a lister which runs "ollama list"
func NewCommandLister(opts ...Opt) (*CommandLister, error) {
	l := &CommandLister{
		executable: schema.DefaultExecutable,
		run:        Run,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// WithExecutable sets the name or path of the runtime executable
func WithExecutable(name string) Opt {
	return func(l *CommandLister) error {
		if name == "" {
			return llmcheck.ErrBadParameter.With("executable name is required")
		}
		l.executable = name
		return nil
	}
}

// WithRunner replaces the function used to run commands
func WithRunner(fn RunFunc) Opt {
	return func(l *CommandLister) error {
		if fn == nil {
			return llmcheck.ErrBadParameter.With("runner is required")
		}
		l.run = fn
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels runs the listing command and parses its output. A command
// which cannot be started or exits non-zero returns ErrCommandFailed.
func (l *CommandLister) ListModels(ctx context.Context) ([]schema.Model, error) {
	stdout, stderr, err := l.run(ctx, l.executable, "list")
	if err != nil {
		if detail := strings.TrimSpace(string(stderr)); detail != "" {
			return nil, llmcheck.ErrCommandFailed.Withf("%s list: %v: %s", l.executable, err, detail)
		}
		return nil, llmcheck.ErrCommandFailed.Withf("%s list: %v", l.executable, err)
	}
	return ParseList(stdout), nil
}

// Run executes a command and captures its output. A non-zero exit status
// is returned as an error.
func Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), stderr.Bytes(), exitErr
		}
		return nil, nil, err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}
