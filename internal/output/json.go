// internal/output/json.go
package output

import (
	"encoding/json"

	"github.com/Fabbiologia/vibe-coding-for-ecology/internal/docs"
)

// JSONFormatter outputs the build report as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format marshals the report as indented JSON.
func (f *JSONFormatter) Format(report *docs.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
