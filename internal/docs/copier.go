package docs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// CopierConfig controls how discovered files are routed into the docs tree.
type CopierConfig struct {
	BaseDir   string
	DocsDir   string
	MainFiles []string // file names copied to the docs root, e.g. README.md
}

// CopyAndOrganize copies the discovered markdown files into the docs tree and
// groups them into a FileMap. Routing inspects the relative source path:
// "workflows", "examples", and "rules" substrings map to the matching
// subdirectory, recognized main files go to the docs root, and anything else
// is dropped. Destination files are overwritten unconditionally and content
// is copied byte for byte. Files whose front matter sets draft: true are
// excluded entirely.
func CopyAndOrganize(files []string, cfg CopierConfig) (*FileMap, error) {
	fm := &FileMap{}

	for _, rel := range files {
		source, err := os.ReadFile(filepath.Join(cfg.BaseDir, rel))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		if isDraft(source) {
			continue
		}

		slash := filepath.ToSlash(rel)
		base := filepath.Base(rel)

		var destDir string
		switch {
		case strings.Contains(slash, "workflows"):
			destDir = filepath.Join(cfg.DocsDir, "workflows")
		case strings.Contains(slash, "examples"):
			destDir = filepath.Join(cfg.DocsDir, "examples")
		case strings.Contains(slash, "rules"):
			destDir = filepath.Join(cfg.DocsDir, "rules")
		case isMainFile(base, cfg.MainFiles):
			destDir = cfg.DocsDir
		default:
			// Uncategorized files are deliberately excluded from the build.
			continue
		}

		dest := filepath.Join(destDir, base)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", destDir, err)
		}
		if err := os.WriteFile(dest, source, 0o644); err != nil {
			return nil, fmt.Errorf("copying %s: %w", rel, err)
		}

		cf := CopiedFile{Source: rel, Dest: dest}
		switch destDir {
		case filepath.Join(cfg.DocsDir, "workflows"):
			fm.Workflows = append(fm.Workflows, cf)
		case filepath.Join(cfg.DocsDir, "examples"):
			fm.Examples = append(fm.Examples, cf)
		case filepath.Join(cfg.DocsDir, "rules"):
			fm.Rules = append(fm.Rules, cf)
		default:
			fm.Main = append(fm.Main, cf)
		}
	}

	return fm, nil
}

func isMainFile(name string, mainFiles []string) bool {
	for _, m := range mainFiles {
		if name == m {
			return true
		}
	}
	return false
}

// isDraft reports whether the file's YAML front matter marks it as a draft.
// Files without front matter, or with front matter that cannot be parsed,
// are treated as publishable.
func isDraft(source []byte) bool {
	var meta struct {
		Draft bool `yaml:"draft"`
	}
	if _, err := frontmatter.Parse(bytes.NewReader(source), &meta); err != nil {
		return false
	}
	return meta.Draft
}
