package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithStackTrace(t *testing.T) {
	assert.NoError(t, WithStackTrace(nil))
	assert.NoError(t, WithStackTraceAndPrefix(nil, "prefix"))

	err := WithStackTrace(io.EOF)
	assert.True(t, IsError(err, io.EOF))
	assert.Contains(t, ErrorWithStackTrace(err), "errors_test.go")

	err = WithStackTraceAndPrefix(io.EOF, "reading %s", "a.mp3")
	assert.Equal(t, "reading a.mp3: EOF", err.Error())
	assert.True(t, IsError(err, io.EOF))
}

func TestExitCode(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, 2))
	assert.Equal(t, 1, ExitCode(Errorf("boom")))

	err := fmt.Errorf("wrapped: %w", WithExitCode(New("usage"), 2))
	assert.Equal(t, 2, ExitCode(err))
	assert.Equal(t, "wrapped: usage", err.Error())
}
