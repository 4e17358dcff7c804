package llmcheck_test

import (
	"errors"
	"testing"

	// Packages
	llmcheck "github.com/mutablelogic/go-llmcheck"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)
	err := llmcheck.ErrUnexpectedStatus.Withf("%d - %s", 500, "boom")
	assert.Equal("API error: 500 - boom", err.Error())
	assert.True(errors.Is(err, llmcheck.ErrUnexpectedStatus))
	assert.False(errors.Is(err, llmcheck.ErrUnreachable))
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)
	err := llmcheck.ErrNotInstalled.With("ollama")
	assert.Equal("not installed: ollama", err.Error())
	assert.ErrorIs(err, llmcheck.ErrNotInstalled)
	assert.Equal("error code 99", llmcheck.Err(99).Error())
}
