package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is the config file looked up in the base directory when
// no explicit path is given.
const DefaultConfigFile = ".docbuild.toml"

// Config represents the top-level documentation build configuration.
type Config struct {
	BaseDir      string     `toml:"base_dir"`
	DocsDir      string     `toml:"docs_dir"`
	RepoURL      string     `toml:"repo_url"`
	WorkflowsDir string     `toml:"workflows_dir"`
	Subdirs      []string   `toml:"subdirs"`
	MainFiles    []string   `toml:"main_files"`
	TaxonomyPath string     `toml:"taxonomy"`
	Lint         LintConfig `toml:"lint"`
}

// LintConfig holds settings for the external markdown lint invocation.
type LintConfig struct {
	Enabled        bool   `toml:"enabled"`
	Command        string `toml:"command"`
	ConfigPath     string `toml:"config_path"`
	Glob           string `toml:"glob"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DefaultConfig returns a Config matching the tool's fixed historical
// behavior: run from the current directory, write into docs/, and lint with
// markdownlint against .markdownlint.json.
func DefaultConfig() *Config {
	return &Config{
		BaseDir:      ".",
		DocsDir:      "", // resolved to <base>/docs when empty
		RepoURL:      "https://github.com/Fabbiologia/vibe-coding-for-ecology",
		WorkflowsDir: "workflows",
		Subdirs:      []string{"examples", "rules", "manuscript"},
		MainFiles:    []string{"README.md", "CODE_OF_CONDUCT.md"},
		Lint: LintConfig{
			Enabled:    true,
			Command:    "markdownlint",
			ConfigPath: ".markdownlint.json",
			Glob:       "docs/**/*.md",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file at the
// default location is not an error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %s does not exist", path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
