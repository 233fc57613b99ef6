package docs

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// LintSettings configures the external markdown lint invocation.
type LintSettings struct {
	Command    string        // lint executable, e.g. "markdownlint"
	ConfigPath string        // passed via --config
	Glob       string        // file glob, relative to the base directory
	Timeout    time.Duration // zero means no timeout
}

// LintResult reports the outcome of the external lint run. NotFound is set
// when the executable is missing, which is distinct from a lint failure.
type LintResult struct {
	Skipped  bool   `json:"skipped,omitempty"`
	Passed   bool   `json:"passed"`
	NotFound bool   `json:"not_found,omitempty"`
	Output   string `json:"output,omitempty"`
}

// RunLint invokes the external lint tool from baseDir and captures its
// output. The run is never fatal: a missing executable or failing exit code
// is folded into the result.
func RunLint(ctx context.Context, baseDir string, settings LintSettings) LintResult {
	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, settings.Command, "--config", settings.ConfigPath, settings.Glob)
	cmd.Dir = baseDir

	out, err := cmd.Output()
	if err == nil {
		return LintResult{Passed: true}
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return LintResult{
			NotFound: true,
			Output:   settings.Command + " not found. Please install with: npm install -g markdownlint-cli",
		}
	}

	return LintResult{Output: string(out)}
}
