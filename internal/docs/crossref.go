package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// relatedHeader is the sentinel for cross-reference idempotence: files that
// already contain it are never touched again, even if the related set has
// since changed.
const relatedHeader = "## Related Workflows"

// BuildWorkflowLinks maps every copied workflow file to its link target
// relative to the docs root. Entries are sorted by stem so that the inserted
// sections do not depend on traversal order.
func BuildWorkflowLinks(fm *FileMap) []WorkflowLink {
	seen := make(map[string]bool)
	var links []WorkflowLink
	for _, wf := range fm.Workflows {
		stem := fileStem(wf.Dest)
		if seen[stem] {
			continue
		}
		seen[stem] = true
		links = append(links, WorkflowLink{
			Stem: stem,
			Path: "workflows/" + filepath.Base(wf.Dest),
		})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Stem < links[j].Stem })
	return links
}

// InsertCrossReferences adds a "Related Workflows" section to every copied
// workflow file that has related documents.
func InsertCrossReferences(fm *FileMap, tax Taxonomy) error {
	links := BuildWorkflowLinks(fm)
	for _, wf := range fm.Workflows {
		if err := insertCrossReferences(wf, links, tax); err != nil {
			return err
		}
	}
	return nil
}

// insertCrossReferences rewrites a single workflow file. The section is
// placed just before the last "## ... Summary ..." heading; files without
// one get it appended at the end. Files already carrying the section, or
// with an empty related set, are left unchanged.
func insertCrossReferences(wf CopiedFile, links []WorkflowLink, tax Taxonomy) error {
	data, err := os.ReadFile(wf.Dest)
	if err != nil {
		return fmt.Errorf("reading %s: %w", wf.Dest, err)
	}
	content := string(data)

	if strings.Contains(content, relatedHeader) {
		return nil
	}

	related := relatedWorkflows(wf.Source, links, tax)
	if len(related) == 0 {
		return nil
	}

	var section strings.Builder
	section.WriteString("\n" + relatedHeader + "\n\n")
	for _, rel := range related {
		fmt.Fprintf(&section, "- [%s](%s)\n", titleCase(strings.ReplaceAll(rel.Stem, "_", " ")), rel.Path)
	}
	section.WriteString("\n")

	lines := strings.Split(content, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "## ") && strings.Contains(lines[i], "Summary") {
			inserted := make([]string, 0, len(lines)+1)
			inserted = append(inserted, lines[:i]...)
			inserted = append(inserted, section.String())
			inserted = append(inserted, lines[i:]...)
			out := strings.Join(inserted, "\n")
			if err := os.WriteFile(wf.Dest, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", wf.Dest, err)
			}
			return nil
		}
	}

	out := content + section.String()
	if err := os.WriteFile(wf.Dest, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", wf.Dest, err)
	}
	return nil
}

// relatedWorkflows resolves the file's category from its source path and
// collects every known workflow whose name contains one of the related
// category fragments. The file itself is not excluded; self references are
// possible and harmless.
func relatedWorkflows(sourcePath string, links []WorkflowLink, tax Taxonomy) []WorkflowLink {
	category := tax.Categorize(sourcePath)
	fragments := tax.Related(category)
	if len(fragments) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var related []WorkflowLink
	for _, fragment := range fragments {
		for _, link := range links {
			if !strings.Contains(strings.ToLower(link.Stem), fragment) {
				continue
			}
			if seen[link.Stem] {
				continue
			}
			seen[link.Stem] = true
			related = append(related, link)
		}
	}
	return related
}
