package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIndexWorkflowGrouping(t *testing.T) {
	dir := t.TempDir()
	docsDir := filepath.Join(dir, "docs")

	intro := filepath.Join(docsDir, "workflows", "intro.md")
	viz := filepath.Join(docsDir, "workflows", "scatterplots.md")
	writeFile(t, intro, "# Intro\n")
	writeFile(t, viz, "# Scatterplots\n")

	fm := &FileMap{Workflows: []CopiedFile{
		{Source: filepath.Join("workflows", "01_data_wrangling", "intro.md"), Dest: intro},
		{Source: filepath.Join("workflows", "02_visualization", "scatterplots.md"), Dest: viz},
	}}

	indexPath, err := GenerateIndex(fm, DefaultTaxonomy(), testRepoURL, docsDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(docsDir, "README.md"), indexPath)

	got, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	content := string(got)

	// Each category heading appears once, with its workflow link below it.
	wranglingIdx := strings.Index(content, "#### 🧹 Data Wrangling")
	introIdx := strings.Index(content, "- [Intro](workflows/intro.md)")
	vizIdx := strings.Index(content, "#### 📊 Visualization")
	scatterIdx := strings.Index(content, "- [Scatterplots](workflows/scatterplots.md)")

	require.NotEqual(t, -1, wranglingIdx)
	require.NotEqual(t, -1, introIdx)
	require.NotEqual(t, -1, vizIdx)
	require.NotEqual(t, -1, scatterIdx)
	assert.Less(t, wranglingIdx, introIdx)
	assert.Less(t, introIdx, vizIdx)
	assert.Less(t, vizIdx, scatterIdx)
}

func TestGenerateIndexStaticSections(t *testing.T) {
	dir := t.TempDir()
	docsDir := filepath.Join(dir, "docs")

	example := filepath.Join(docsDir, "examples", "demo.md")
	rule := filepath.Join(docsDir, "rules", "CONTRIBUTING.md")
	main := filepath.Join(docsDir, "CODE_OF_CONDUCT.md")
	writeFile(t, example, "# Demo Example\n")
	writeFile(t, rule, "# Contributing\n")
	writeFile(t, main, "# Code Of Conduct\n")

	fm := &FileMap{
		Examples: []CopiedFile{{Source: "examples/demo.md", Dest: example}},
		Rules:    []CopiedFile{{Source: "rules/CONTRIBUTING.md", Dest: rule}},
		Main:     []CopiedFile{{Source: "CODE_OF_CONDUCT.md", Dest: main}},
	}

	indexPath, err := GenerateIndex(fm, DefaultTaxonomy(), testRepoURL, docsDir)
	require.NoError(t, err)

	got, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	content := string(got)

	assert.Contains(t, content, "### 📖 Examples & Templates")
	assert.Contains(t, content, "- [Demo Example](examples/demo.md)")
	assert.Contains(t, content, "### 📋 Rules & Guidelines")
	assert.Contains(t, content, "- [Contributing](rules/CONTRIBUTING.md)")
	assert.Contains(t, content, "### 🏠 Main Documentation")
	assert.Contains(t, content, "- [Code Of Conduct](CODE_OF_CONDUCT.md)")

	// Fixed blocks survive into every index.
	assert.Contains(t, content, "```mermaid")
	assert.Contains(t, content, "## 🧪 Quality Assurance")
	assert.Contains(t, content, "## 📞 Support")
	assert.Contains(t, content, testRepoURL+"/issues")
}

func TestGenerateIndexOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	docsDir := filepath.Join(dir, "docs")
	writeFile(t, filepath.Join(docsDir, "README.md"), "stale index")

	_, err := GenerateIndex(&FileMap{}, DefaultTaxonomy(), testRepoURL, docsDir)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(docsDir, "README.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(got), "stale index")
	assert.Contains(t, string(got), "# 🌱 Vibe Coding for Ecology: Documentation Index")
}

func TestGenerateIndexUnknownCategoryUsesKeyAsLabel(t *testing.T) {
	dir := t.TempDir()
	docsDir := filepath.Join(dir, "docs")

	misc := filepath.Join(docsDir, "workflows", "misc.md")
	writeFile(t, misc, "# Misc\n")

	fm := &FileMap{Workflows: []CopiedFile{
		{Source: filepath.Join("workflows", "misc.md"), Dest: misc},
	}}

	indexPath, err := GenerateIndex(fm, DefaultTaxonomy(), testRepoURL, docsDir)
	require.NoError(t, err)

	got, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "#### 00_other")
}
