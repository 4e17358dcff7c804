package text_test

import (
	"strings"
	"testing"

	// Packages
	text "github.com/mutablelogic/go-llmcheck/pkg/ui/text"
	assert "github.com/stretchr/testify/assert"
)

func Test_text_001(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in, out string
	}{
		{"Hello there.", "Hello there."},
		{"<think>\nThe user wants a greeting.\n</think>\n\nHello there.", "Hello there."},
		{"<think></think>Hi", "Hi"},
		{"<think>a</think>One<think>b</think> two", "One two"},
		{"no closing <think> tag", "no closing <think> tag"},
	}
	for _, test := range tests {
		assert.Equal(test.out, text.StripThinking(test.in))
	}
}

func Test_text_002(t *testing.T) {
	// Plain text is word-wrapped to the width
	assert := assert.New(t)
	out, err := text.Render("  the quick brown fox jumps over the lazy dog  ", 10, false)
	assert.NoError(err)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(len(line), 10)
	}
	assert.Equal("the quick brown fox jumps over the lazy dog", strings.Join(strings.Fields(out), " "))
}

func Test_text_003(t *testing.T) {
	assert := assert.New(t)
	assert.Greater(text.Width(), 0)
}
