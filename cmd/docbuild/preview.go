// cmd/docbuild/preview.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [path]",
		Short: "Render the generated documentation index in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			baseDir := "."
			if len(args) > 0 {
				baseDir = args[0]
			}

			indexPath := filepath.Join(baseDir, "docs", "README.md")
			data, err := os.ReadFile(indexPath)
			if err != nil {
				return fmt.Errorf("reading index %s (run docbuild first?): %w", indexPath, err)
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(terminalWidth()),
			)
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}

			rendered, err := r.Render(string(data))
			if err != nil {
				return fmt.Errorf("rendering index: %w", err)
			}

			fmt.Print(rendered)
			return nil
		},
	}
}

// terminalWidth returns the current terminal width, or 80 when stdout is not
// a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
