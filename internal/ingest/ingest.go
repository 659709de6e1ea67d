// Package ingest converts a loosely-typed review document into a typed
// ReviewResult. Malformed issue records are skipped individually so that
// one bad finding never invalidates the whole report.
package ingest

import (
	"fmt"
	"time"

	"github.com/dshills/reviewcritic/internal/review"
)

// RecordError describes a single skipped record.
type RecordError struct {
	Path   string
	Reason string
}

func (e RecordError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Ingest builds a ReviewResult from a decoded document tree. The score and
// verdict fields are left zero; callers run review.Evaluate afterwards.
// The returned record errors identify issue entries that were dropped.
func Ingest(raw map[string]any) (*review.ReviewResult, []RecordError) {
	result := &review.ReviewResult{
		Timestamp: time.Now(),
		Metrics:   extractMetrics(raw),
	}
	issues, errs := extractIssues(raw)
	result.Issues = issues
	return result, errs
}

// extractMetrics reads the optional metrics sub-tree. Every field defaults
// to zero when absent; a missing sub-tree is not a fault.
func extractMetrics(raw map[string]any) review.CodeMetrics {
	var metrics review.CodeMetrics

	m, ok := asMap(raw["metrics"])
	if !ok {
		return metrics
	}

	metrics.TotalFiles, _ = asInt(m["total_files"])
	metrics.TotalLines, _ = asInt(m["total_lines"])
	metrics.AvgComplexity, _ = asFloat(m["avg_complexity"])
	metrics.TestCoverage, _ = asFloat(m["test_coverage"])
	metrics.DuplicationPercentage, _ = asFloat(m["duplication"])
	metrics.TechnicalDebtRatio, _ = asFloat(m["tech_debt_ratio"])

	if layers, ok := asMap(m["layers"]); ok {
		metrics.Layers = make(map[string]review.LayerMetrics, len(layers))
		for name, v := range layers {
			layer := review.LayerMetrics{Name: name}
			if lm, ok := asMap(v); ok {
				layer.FileCount, _ = asInt(lm["files"])
				layer.LineCount, _ = asInt(lm["lines"])
				layer.ViolationCount, _ = asInt(lm["violations"])
				layer.TestCoverage, _ = asFloat(lm["coverage"])
			}
			metrics.Layers[name] = layer
		}
	}

	return metrics
}

// extractIssues reads the optional issues sequence. Entries missing a
// required field or carrying an unrecognized category or severity are
// dropped with a record error; processing always continues.
func extractIssues(raw map[string]any) ([]review.CodeIssue, []RecordError) {
	seq, ok := asSlice(raw["issues"])
	if !ok {
		return nil, nil
	}

	var issues []review.CodeIssue
	var errs []RecordError
	skip := func(i int, format string, args ...any) {
		errs = append(errs, RecordError{
			Path:   fmt.Sprintf("issues[%d]", i),
			Reason: fmt.Sprintf(format, args...),
		})
	}

	for i, el := range seq {
		entry, ok := asMap(el)
		if !ok {
			skip(i, "not a mapping")
			continue
		}

		msg, ok := asString(entry["message"])
		if !ok || msg == "" {
			skip(i, "missing required field %q", "message")
			continue
		}
		file, ok := asString(entry["file"])
		if !ok || file == "" {
			skip(i, "missing required field %q", "file")
			continue
		}

		category := review.CategoryCodeQuality
		if v, present := entry["category"]; present {
			s, _ := asString(v)
			category = review.Category(s)
			if !category.Valid() {
				skip(i, "unknown category %q", s)
				continue
			}
		}

		severity := review.SeverityInfo
		if v, present := entry["severity"]; present {
			s, _ := asString(v)
			severity = review.Severity(s)
			if !severity.Valid() {
				skip(i, "unknown severity %q", s)
				continue
			}
		}

		issue := review.CodeIssue{
			Category: category,
			Severity: severity,
			Message:  msg,
			FilePath: file,
		}
		if line, ok := asInt(entry["line"]); ok && line > 0 {
			issue.LineNumber = line
		}
		issue.Suggestion, _ = asString(entry["suggestion"])
		issue.RuleID, _ = asString(entry["rule_id"])

		issues = append(issues, issue)
	}

	return issues, errs
}
