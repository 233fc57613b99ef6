package docs

// Report summarizes one documentation build for the operator. It is the
// value the output formatters consume.
type Report struct {
	RunID      string      `json:"run_id"`
	BaseDir    string      `json:"base_dir"`
	IndexPath  string      `json:"index_path"`
	Workflows  int         `json:"workflows"`
	Examples   int         `json:"examples"`
	Rules      int         `json:"rules"`
	Main       int         `json:"main"`
	LinkIssues []LinkIssue `json:"link_issues,omitempty"`
	Lint       LintResult  `json:"lint"`
	DurationMs int64       `json:"duration_ms"`
}
