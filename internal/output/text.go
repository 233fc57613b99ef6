// internal/output/text.go
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Fabbiologia/vibe-coding-for-ecology/internal/docs"
)

// TextFormatter outputs the build report as styled, human-readable text.
type TextFormatter struct {
	okStyle   lipgloss.Style
	warnStyle lipgloss.Style
	failStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

// NewTextFormatter creates a TextFormatter with the default color styles.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		okStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warnStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		failStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		dimStyle:  lipgloss.NewStyle().Faint(true),
	}
}

// Format renders the report as a summary block followed by any diagnostics.
func (f *TextFormatter) Format(report *docs.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("🎉 Documentation build complete!\n")
	fmt.Fprintf(&b, "📖 Main index: %s\n", report.IndexPath)
	fmt.Fprintf(&b, "🔬 Workflows: %d files\n", report.Workflows)
	fmt.Fprintf(&b, "📚 Examples: %d files\n", report.Examples)
	fmt.Fprintf(&b, "📋 Rules: %d files\n", report.Rules)

	if len(report.LinkIssues) == 0 {
		b.WriteString(f.okStyle.Render("✅ All internal links are valid") + "\n")
	} else {
		b.WriteString(f.warnStyle.Render("⚠️  Link validation issues:") + "\n")
		for _, issue := range report.LinkIssues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
	}

	switch {
	case report.Lint.Skipped:
		b.WriteString(f.dimStyle.Render("➖ Markdown linting skipped") + "\n")
	case report.Lint.NotFound:
		b.WriteString(f.failStyle.Render("❌ "+report.Lint.Output) + "\n")
	case report.Lint.Passed:
		b.WriteString(f.okStyle.Render("✅ All markdown files pass linting") + "\n")
	default:
		b.WriteString(f.failStyle.Render("❌ Markdown linting issues:") + "\n")
		b.WriteString(report.Lint.Output)
		if !strings.HasSuffix(report.Lint.Output, "\n") {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "%s\n", f.dimStyle.Render(
		fmt.Sprintf("run %s completed in %dms", report.RunID, report.DurationMs)))

	return []byte(b.String()), nil
}
