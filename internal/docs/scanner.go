package docs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DiscoverMarkdown finds all markdown files that feed the build: *.md at the
// top of baseDir (non-recursive), everything under workflowsDir, and
// everything under each listed subdirectory. Returned paths are relative to
// baseDir. Directories that do not exist are silently skipped.
func DiscoverMarkdown(baseDir, workflowsDir string, subdirs []string) ([]string, error) {
	var found []string
	seen := make(map[string]bool)
	add := func(rel string) {
		if !seen[rel] {
			seen[rel] = true
			found = append(found, rel)
		}
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() && isMarkdown(e.Name()) {
			add(e.Name())
		}
	}

	dirs := append([]string{workflowsDir}, subdirs...)
	for _, dir := range dirs {
		rels, err := walkMarkdown(baseDir, dir)
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			add(rel)
		}
	}

	return found, nil
}

// walkMarkdown lists markdown files under baseDir/dir, relative to baseDir.
// A missing directory is not an error; there is simply nothing to discover.
func walkMarkdown(baseDir, dir string) ([]string, error) {
	root := filepath.Join(baseDir, dir)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var rels []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}
		rels = append(rels, rel)
		return nil
	})
	return rels, err
}

// isMarkdown reports whether name has a .md extension.
func isMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}
