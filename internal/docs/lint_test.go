package docs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lintSettings(command string) LintSettings {
	return LintSettings{
		Command:    command,
		ConfigPath: ".markdownlint.json",
		Glob:       "docs/**/*.md",
	}
}

func TestRunLintToolNotFound(t *testing.T) {
	result := RunLint(context.Background(), t.TempDir(), lintSettings("definitely-not-a-real-linter"))

	assert.True(t, result.NotFound)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Output, "definitely-not-a-real-linter not found")
}

func TestRunLintPass(t *testing.T) {
	// "true" ignores its arguments and exits zero, standing in for a clean
	// lint run.
	result := RunLint(context.Background(), t.TempDir(), lintSettings("true"))

	assert.True(t, result.Passed)
	assert.False(t, result.NotFound)
}

func TestRunLintFailure(t *testing.T) {
	result := RunLint(context.Background(), t.TempDir(), lintSettings("false"))

	assert.False(t, result.Passed)
	assert.False(t, result.NotFound)
}
