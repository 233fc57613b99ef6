// internal/output/text_test.go
package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fabbiologia/vibe-coding-for-ecology/internal/docs"
)

func TestTextFormatterSummary(t *testing.T) {
	out, err := NewTextFormatter().Format(sampleReport())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "Documentation build complete")
	assert.Contains(t, text, "Main index: docs/README.md")
	assert.Contains(t, text, "Workflows: 3 files")
	assert.Contains(t, text, "Examples: 1 files")
	assert.Contains(t, text, "Link validation issues:")
	assert.Contains(t, text, "Broken link in intro.md: [text](nonexistent.md)")
	assert.Contains(t, text, "All markdown files pass linting")
}

func TestTextFormatterCleanRun(t *testing.T) {
	report := sampleReport()
	report.LinkIssues = nil

	out, err := NewTextFormatter().Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "All internal links are valid")
}

func TestTextFormatterLintStates(t *testing.T) {
	report := sampleReport()

	report.Lint = docs.LintResult{Skipped: true}
	out, err := NewTextFormatter().Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Markdown linting skipped")

	report.Lint = docs.LintResult{NotFound: true, Output: "markdownlint not found. Please install with: npm install -g markdownlint-cli"}
	out, err = NewTextFormatter().Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "markdownlint not found")

	report.Lint = docs.LintResult{Output: "docs/workflows/intro.md:3 MD012 Multiple consecutive blank lines"}
	out, err = NewTextFormatter().Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Markdown linting issues:")
	assert.Contains(t, string(out), "MD012")
}
