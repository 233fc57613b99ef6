package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWorkflowTitlePrecedence(t *testing.T) {
	content := "**Goal:** Tidy transect data\n\n# Generic Heading\n"
	assert.Equal(t, "Tidy transect data", ExtractWorkflowTitle(content, "x.md"))

	content = "# Vibe Workflow: Data Wrangling\n\n**Goal:** Something else\n"
	assert.Equal(t, "Data Wrangling", ExtractWorkflowTitle(content, "x.md"))

	content = "# Plain Heading\n\nBody.\n"
	assert.Equal(t, "Plain Heading", ExtractWorkflowTitle(content, "x.md"))
}

func TestExtractWorkflowTitleFilenameFallback(t *testing.T) {
	assert.Equal(t, "Data Wrangling Intro",
		ExtractWorkflowTitle("no headings here\n", "data_wrangling_intro.md"))
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Demo", ExtractTitle("# Demo\n", "demo.md"))

	// The generic extractor ignores workflow-specific patterns.
	assert.Equal(t, "Goal Notes",
		ExtractTitle("**Goal:** not a title here\n", "goal_notes.md"))
}

func TestExtractTitleTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "Spaced Out", ExtractTitle("# Spaced Out   \n", "x.md"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Data Wrangling Intro", titleCase("data wrangling intro"))
	assert.Equal(t, "Glm Notes", titleCase("GLM notes"))
	assert.Equal(t, "A-B Test", titleCase("a-b test"))
}
