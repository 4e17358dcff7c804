package version_test

import (
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-llmcheck/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	info := version.New("llmcheck")
	assert.Equal("llmcheck", info.Name)
	assert.NotEmpty(info.Version)
	assert.Equal(runtime.Version(), info.Compiler)
	assert.Equal(runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Contains(info.String(), "llmcheck")
}

func Test_version_002(t *testing.T) {
	// A tag set at link time takes precedence
	assert := assert.New(t)
	tag := version.GitTag
	t.Cleanup(func() { version.GitTag = tag })

	version.GitTag = "v1.2.3"
	assert.Equal("v1.2.3", version.Version())
}
