package docs

import (
	"regexp"
	"strings"
	"unicode"
)

// Title extraction patterns for workflow files, tried in order. The first
// capturing match wins.
var workflowTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^# Vibe Workflow: (.+)$`),
	regexp.MustCompile(`(?m)^\*\*Goal:\*\* (.+)$`),
	regexp.MustCompile(`(?m)^# (.+)$`),
}

var headingTitlePattern = regexp.MustCompile(`(?m)^# (.+)$`)

// ExtractWorkflowTitle returns the title of a workflow document, trying the
// workflow heading, the goal line, and a generic top-level heading in that
// order. When none match, the title is derived from the file name.
func ExtractWorkflowTitle(content, filename string) string {
	for _, pattern := range workflowTitlePatterns {
		if m := pattern.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return titleFromFilename(filename)
}

// ExtractTitle returns the title of a generic markdown document: its first
// top-level heading, or a title derived from the file name.
func ExtractTitle(content, filename string) string {
	if m := headingTitlePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return titleFromFilename(filename)
}

// titleFromFilename turns a file name into a display title: the extension is
// dropped, underscores become spaces, and each word is title-cased.
func titleFromFilename(filename string) string {
	return titleCase(strings.ReplaceAll(fileStem(filename), "_", " "))
}

// titleCase capitalizes the first letter of every alphabetic run and lowers
// the rest, matching how the generated index names untitled files.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
