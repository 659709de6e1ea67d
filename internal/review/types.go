// Package review defines the core types for ReviewCritic results and the
// deterministic score and verdict computations over them.
package review

import "time"

// CodeIssue is a single finding reported by the upstream analyzer.
type CodeIssue struct {
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	FilePath   string   `json:"file"`
	LineNumber int      `json:"line,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	RuleID     string   `json:"rule_id,omitempty"`
}

// LayerMetrics is the per-architectural-layer rollup.
type LayerMetrics struct {
	Name           string  `json:"name"`
	FileCount      int     `json:"files"`
	LineCount      int     `json:"lines"`
	ViolationCount int     `json:"violations"`
	TestCoverage   float64 `json:"coverage"`
}

// CodeMetrics holds the aggregate metrics for the reviewed code base.
type CodeMetrics struct {
	TotalFiles            int                     `json:"total_files"`
	TotalLines            int                     `json:"total_lines"`
	AvgComplexity         float64                 `json:"avg_complexity"`
	TestCoverage          float64                 `json:"test_coverage"`
	DuplicationPercentage float64                 `json:"duplication"`
	TechnicalDebtRatio    float64                 `json:"tech_debt_ratio"`
	Layers                map[string]LayerMetrics `json:"layers,omitempty"`
}

// ReviewResult is the aggregate root for one review run. Score and Passed
// are always derived via Evaluate, never supplied by the input document.
type ReviewResult struct {
	Timestamp time.Time   `json:"timestamp"`
	Metrics   CodeMetrics `json:"metrics"`
	Issues    []CodeIssue `json:"issues"`
	Score     float64     `json:"score"`
	Passed    bool        `json:"passed"`
}

// Evaluate fills in the derived Score and Passed fields.
func Evaluate(r *ReviewResult, t Thresholds) {
	r.Score = ComputeScore(r)
	r.Passed = t.Passes(r.Issues)
}
