package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Options holds all pipeline configuration, resolved from defaults, the
// config file, and flags before Run is called.
type Options struct {
	BaseDir      string
	DocsDir      string
	RepoURL      string
	WorkflowsDir string
	Subdirs      []string
	MainFiles    []string
	Taxonomy     Taxonomy
	Lint         LintSettings
	SkipLint     bool
}

// Run executes the full documentation build: discover -> copy -> badges ->
// cross-references -> index -> validate links -> lint. Stages run strictly
// in sequence; per-file problems surface as diagnostics in the report rather
// than aborting the build.
func Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()

	for _, dir := range []string{opts.DocsDir, filepath.Join(opts.DocsDir, "workflows")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	fmt.Fprintf(os.Stderr, "docbuild: discovering markdown under %s...\n", opts.BaseDir)
	files, err := DiscoverMarkdown(opts.BaseDir, opts.WorkflowsDir, opts.Subdirs)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}

	fmt.Fprintf(os.Stderr, "docbuild: copying %d files...\n", len(files))
	fm, err := CopyAndOrganize(files, CopierConfig{
		BaseDir:   opts.BaseDir,
		DocsDir:   opts.DocsDir,
		MainFiles: opts.MainFiles,
	})
	if err != nil {
		return nil, fmt.Errorf("copy: %w", err)
	}

	fmt.Fprintf(os.Stderr, "docbuild: adding reproduction badges...\n")
	for _, wf := range fm.Workflows {
		if err := InjectBadges(wf.Dest, opts.RepoURL); err != nil {
			return nil, fmt.Errorf("badges: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "docbuild: creating cross-references...\n")
	if err := InsertCrossReferences(fm, opts.Taxonomy); err != nil {
		return nil, fmt.Errorf("cross-references: %w", err)
	}

	fmt.Fprintf(os.Stderr, "docbuild: generating documentation index...\n")
	indexPath, err := GenerateIndex(fm, opts.Taxonomy, opts.RepoURL, opts.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	fmt.Fprintf(os.Stderr, "docbuild: validating internal links...\n")
	issues, err := ValidateLinks(fm, opts.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("links: %w", err)
	}

	lint := LintResult{Skipped: true}
	if !opts.SkipLint {
		fmt.Fprintf(os.Stderr, "docbuild: running markdown lint...\n")
		lint = RunLint(ctx, opts.BaseDir, opts.Lint)
	}

	return &Report{
		RunID:      uuid.NewString(),
		BaseDir:    opts.BaseDir,
		IndexPath:  indexPath,
		Workflows:  len(fm.Workflows),
		Examples:   len(fm.Examples),
		Rules:      len(fm.Rules),
		Main:       len(fm.Main),
		LinkIssues: issues,
		Lint:       lint,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}
