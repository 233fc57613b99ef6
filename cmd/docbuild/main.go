// cmd/docbuild/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Fabbiologia/vibe-coding-for-ecology/internal/config"
	"github.com/Fabbiologia/vibe-coding-for-ecology/internal/docs"
	"github.com/Fabbiologia/vibe-coding-for-ecology/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
	docsFlag   string
	repoFlag   string
	reportFlag string
	skipLint   bool
)

func versionString() string {
	return fmt.Sprintf("docbuild %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "docbuild [path]",
		Short: "Build and QA the project documentation",
		Long: `docbuild consolidates all markdown files into docs/, embeds reproduction
badges, creates cross-reference links between workflows, generates a
comprehensive index, validates internal links, and runs markdown linting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir := "."
			if len(args) > 0 {
				baseDir = args[0]
			}

			opts, err := buildOptions(baseDir)
			if err != nil {
				return err
			}

			report, err := docs.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			formatter := newFormatter(reportFlag)
			out, err := formatter.Format(report)
			if err != nil {
				return fmt.Errorf("formatting report: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&docsFlag, "output", "", "docs output directory (default <path>/docs)")
	rootCmd.Flags().StringVar(&repoFlag, "repo-url", "", "override repository URL used in badges")
	rootCmd.Flags().StringVar(&reportFlag, "report", "text", "report format: text, json")
	rootCmd.Flags().BoolVar(&skipLint, "skip-lint", false, "skip the external markdownlint run")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(versionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path and loads the config. With no explicit
// --config, a .docbuild.toml in the base directory is used when present and
// the compiled-in defaults otherwise.
func loadConfig(baseDir string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	local := filepath.Join(baseDir, config.DefaultConfigFile)
	if _, err := os.Stat(local); err == nil {
		return config.Load(local)
	}
	return config.DefaultConfig(), nil
}

// buildOptions turns the loaded config plus flag overrides into pipeline
// options, resolving relative directories against the base directory.
func buildOptions(baseDir string) (docs.Options, error) {
	cfg, err := loadConfig(baseDir)
	if err != nil {
		return docs.Options{}, fmt.Errorf("loading config: %w", err)
	}

	if cfg.BaseDir != "." && baseDir == "." {
		baseDir = cfg.BaseDir
	}

	docsDir := cfg.DocsDir
	if docsFlag != "" {
		docsDir = docsFlag
	}
	if docsDir == "" {
		docsDir = filepath.Join(baseDir, "docs")
	}

	repoURL := cfg.RepoURL
	if repoFlag != "" {
		repoURL = repoFlag
	}

	taxonomy := docs.DefaultTaxonomy()
	if cfg.TaxonomyPath != "" {
		taxonomy, err = docs.LoadTaxonomy(cfg.TaxonomyPath)
		if err != nil {
			return docs.Options{}, err
		}
	}

	return docs.Options{
		BaseDir:      baseDir,
		DocsDir:      docsDir,
		RepoURL:      repoURL,
		WorkflowsDir: cfg.WorkflowsDir,
		Subdirs:      cfg.Subdirs,
		MainFiles:    cfg.MainFiles,
		Taxonomy:     taxonomy,
		Lint: docs.LintSettings{
			Command:    cfg.Lint.Command,
			ConfigPath: cfg.Lint.ConfigPath,
			Glob:       cfg.Lint.Glob,
			Timeout:    time.Duration(cfg.Lint.TimeoutSeconds) * time.Second,
		},
		SkipLint: skipLint || !cfg.Lint.Enabled,
	}, nil
}

// newFormatter selects the report formatter for the --report flag. Unknown
// values fall back to text.
func newFormatter(format string) output.Formatter {
	switch format {
	case "json":
		return output.NewJSONFormatter()
	default:
		return output.NewTextFormatter()
	}
}
