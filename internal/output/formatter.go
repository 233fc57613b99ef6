// internal/output/formatter.go
package output

import "github.com/Fabbiologia/vibe-coding-for-ecology/internal/docs"

// Formatter formats a build report into output bytes.
type Formatter interface {
	Format(report *docs.Report) ([]byte, error)
}
