package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GenerateIndex writes the documentation index (docs/README.md), overwriting
// any previous version. Workflows are listed first, grouped under a category
// heading that is emitted whenever the category changes between consecutive
// files; examples, rules, and main documents follow under static headings.
// Returns the path of the written index.
func GenerateIndex(fm *FileMap, tax Taxonomy, repoURL, docsDir string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, `# 🌱 Vibe Coding for Ecology: Documentation Index

Welcome to the complete documentation for the **Vibe Coding for Ecology** project! This index provides organized access to all workflows, examples, and guidelines for agentic AI-assisted ecological analysis.

[![Reproducible](https://img.shields.io/badge/Reproducible-Yes-brightgreen)](%s)
[![R](https://img.shields.io/badge/R-4.0+-blue)](https://www.r-project.org/)
[![Tidyverse](https://img.shields.io/badge/Tidyverse-Compatible-orange)](https://www.tidyverse.org/)
[![License](https://img.shields.io/badge/License-MIT-yellow.svg)](https://opensource.org/licenses/MIT)

## 🎯 Quick Start

1. **For AI Agents**: Copy any workflow template and paste into your AI coding environment
2. **For Researchers**: Clone the repository and follow the structured workflows
3. **For Contributors**: Check the rules and contributing guidelines

## 📚 Documentation Structure

### 🔬 Workflow Categories

`, repoURL)

	writeWorkflowSections(&b, fm.Workflows, tax)

	b.WriteString("\n\n### 📖 Examples & Templates\n\n")
	writeSectionLinks(&b, fm.Examples, "examples/")

	b.WriteString("\n\n### 📋 Rules & Guidelines\n\n")
	writeSectionLinks(&b, fm.Rules, "rules/")

	b.WriteString("\n\n### 🏠 Main Documentation\n\n")
	writeSectionLinks(&b, fm.Main, "")

	fmt.Fprintf(&b, `

## 🔄 Workflow Dependencies

The workflows are designed to build upon each other:

`+"```mermaid"+`
graph TD
    A[00_agentic_prompt_templates] --> B[01_data_wrangling]
    B --> C[02_visualization]
    B --> D[03_univariate_models]
    B --> E[04_multivariate_analysis]
    E --> F[05_diversity_metrics]
    D --> G[06_mixed_effects_models]
    F --> H[08_spatial_analysis]
    H --> I[09_species_distribution]
    G --> J[10_population_simulation]
    H --> K[07_time_series_analysis]
`+"```"+`

## 🧪 Quality Assurance

All documentation has been:
- ✅ **Linted** with markdownlint for consistency
- ✅ **Cross-referenced** for workflow interconnections
- ✅ **Badge-enhanced** for reproducibility tracking
- ✅ **Organized** in logical categories
- ✅ **Validated** for internal link integrity

## 🚀 Getting Started

### For AI Agents
1. Browse the workflow categories above
2. Copy the relevant workflow template
3. Paste into your AI coding environment (Claude, ChatGPT, Cursor, etc.)
4. Adapt to your specific research question

### For Manual Use
1. Clone the repository: `+"`git clone %s`"+`
2. Navigate to the workflow of interest
3. Follow the 5-part structure: 🪴 Setup → 🧹 Wrangle → 🔬 Analyze → 📊 Visualize → 🧬 Reproduce

## 📞 Support

- **Issues**: Report bugs or request features on [GitHub Issues](%s/issues)
- **Discussions**: Join the conversation on [GitHub Discussions](%s/discussions)
- **Contributing**: See [CONTRIBUTING.md](rules/CONTRIBUTING.md)

---

**Ready to start coding with vibe?** Choose your workflow and feel the difference that clarity and intention make in your analysis!

*Generated automatically by docbuild*
`, repoURL, repoURL, repoURL)

	indexPath := filepath.Join(docsDir, "README.md")
	if err := os.WriteFile(indexPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing index %s: %w", indexPath, err)
	}
	return indexPath, nil
}

// writeWorkflowSections lists workflow links grouped by category. Files are
// sorted by source path, which keeps files from the same numbered workflow
// directory adjacent; keyword-categorized strays may still repeat a heading.
func writeWorkflowSections(b *strings.Builder, workflows []CopiedFile, tax Taxonomy) {
	sorted := make([]CopiedFile, len(workflows))
	copy(sorted, workflows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Source < sorted[j].Source })

	currentCategory := ""
	for _, wf := range sorted {
		category := tax.Categorize(wf.Source)
		if category != currentCategory {
			currentCategory = category
			fmt.Fprintf(b, "\n#### %s\n\n", tax.Label(category))
		}
		title := titleForFile(wf.Dest, ExtractWorkflowTitle)
		fmt.Fprintf(b, "- [%s](workflows/%s)\n", title, filepath.Base(wf.Dest))
	}
}

// writeSectionLinks lists one link per file under a static heading, sorted by
// destination path.
func writeSectionLinks(b *strings.Builder, files []CopiedFile, prefix string) {
	sorted := make([]CopiedFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Dest < sorted[j].Dest })

	for _, f := range sorted {
		title := titleForFile(f.Dest, ExtractTitle)
		fmt.Fprintf(b, "- [%s](%s%s)\n", title, prefix, filepath.Base(f.Dest))
	}
}

// titleForFile reads a copied file and extracts its title with the given
// extractor. Unreadable files fall back to the filename-derived title.
func titleForFile(path string, extract func(content, filename string) string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return titleFromFilename(path)
	}
	return extract(string(data), path)
}
