package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^\)]+)\)`)
	urlSchemePattern    = regexp.MustCompile(`^[a-z][a-z0-9+.\-]*:`)
)

// LinkIssue describes one broken link or anchor found during validation.
type LinkIssue struct {
	File   string `json:"file"`
	Text   string `json:"text"`
	Target string `json:"target"`
	Anchor bool   `json:"anchor,omitempty"`
}

func (li LinkIssue) String() string {
	if li.Anchor {
		return fmt.Sprintf("Broken anchor in %s: [%s](%s)", li.File, li.Text, li.Target)
	}
	return fmt.Sprintf("Broken link in %s: [%s](%s)", li.File, li.Text, li.Target)
}

// ValidateLinks checks every markdown link in the copied files against the
// set of known destinations. Targets with a URL scheme are skipped. Targets
// that carry a #fragment are additionally checked against the heading
// anchors of the referenced file. Issues are diagnostics, never fatal.
func ValidateLinks(fm *FileMap, docsDir string) ([]LinkIssue, error) {
	all := fm.All()

	// Known targets: the bare file name and the docs-root-relative path.
	known := make(map[string]string, len(all)*2)
	for _, f := range all {
		rel, err := filepath.Rel(docsDir, f.Dest)
		if err != nil {
			return nil, fmt.Errorf("relativizing %s: %w", f.Dest, err)
		}
		known[filepath.Base(f.Dest)] = f.Dest
		known[filepath.ToSlash(rel)] = f.Dest
	}

	var issues []LinkIssue
	for _, f := range all {
		data, err := os.ReadFile(f.Dest)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Dest, err)
		}

		for _, m := range markdownLinkPattern.FindAllStringSubmatch(string(data), -1) {
			linkText, target := m[1], m[2]
			if urlSchemePattern.MatchString(target) {
				continue
			}

			file, fragment, hasFragment := strings.Cut(target, "#")
			issue := LinkIssue{
				File:   filepath.Base(f.Dest),
				Text:   linkText,
				Target: target,
			}

			if file == "" {
				// Same-document anchor.
				if hasFragment && !hasAnchor(data, fragment) {
					issue.Anchor = true
					issues = append(issues, issue)
				}
				continue
			}

			resolved, ok := known[file]
			if !ok {
				issues = append(issues, issue)
				continue
			}
			if hasFragment {
				targetData, err := os.ReadFile(resolved)
				if err != nil {
					return nil, fmt.Errorf("reading %s: %w", resolved, err)
				}
				if !hasAnchor(targetData, fragment) {
					issue.Anchor = true
					issues = append(issues, issue)
				}
			}
		}
	}
	return issues, nil
}

var anchorParser = goldmark.New()

// hasAnchor reports whether the markdown document contains a heading whose
// GitHub-style slug matches fragment.
func hasAnchor(source []byte, fragment string) bool {
	doc := anchorParser.Parser().Parse(text.NewReader(source))

	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if headingSlug(headingText(heading, source)) == fragment {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

// headingText collects the literal text of a heading node.
func headingText(heading *ast.Heading, source []byte) string {
	var b strings.Builder
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}

// headingSlug converts heading text to a GitHub-style anchor: lowercased,
// spaces become hyphens, everything else non-alphanumeric is dropped.
func headingSlug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
