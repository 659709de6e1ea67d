package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dshills/reviewcritic/internal/review"
)

// Status glyphs used in the metrics table.
const (
	glyphOK   = "✅"     // check mark
	glyphWarn = "⚠️" // warning sign
	glyphFail = "❌"     // cross mark
)

// Metric display thresholds. The comparison direction differs per metric;
// the boundaries are part of the report contract and are not unified.
const (
	complexityLimit   = 10.0
	coverageThreshold = 80.0
	duplicationBound  = 5.0
	techDebtBound     = 5.0
)

// Markdown renders the fixed-structure review report. Output is
// deterministic for a given result: layer rows are sorted by name and
// issues keep their input order within each severity section.
func Markdown(r *review.ReviewResult, opts Options) string {
	var b strings.Builder

	b.WriteString("# Code Review Summary\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", r.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Reviewer:** %s\n", opts.Reviewer)
	fmt.Fprintf(&b, "**Version:** %s\n\n", opts.Version)
	b.WriteString("---\n\n")

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "### Overall Score: %.1f/100.0\n\n", r.Score)
	if r.Passed {
		fmt.Fprintf(&b, "**Status:** %s PASSED\n\n", glyphOK)
	} else {
		fmt.Fprintf(&b, "**Status:** %s FAILED\n\n", glyphFail)
	}

	writeMetrics(&b, r.Metrics)
	writeIssues(&b, r.Issues)
	writeRecommendations(&b, r)

	return b.String()
}

func writeMetrics(b *strings.Builder, m review.CodeMetrics) {
	b.WriteString("## \U0001f4ca Metrics\n\n")
	b.WriteString("### Code Quality Metrics\n")
	b.WriteString("| Metric | Value | Threshold | Status |\n")
	b.WriteString("|--------|-------|-----------|--------|\n")
	fmt.Fprintf(b, "| Lines of Code | %s | - | %s |\n", humanize.Comma(int64(m.TotalLines)), glyphOK)
	fmt.Fprintf(b, "| Avg Complexity | %.1f | 10 | %s |\n", m.AvgComplexity, pick(m.AvgComplexity <= complexityLimit, glyphOK, glyphFail))
	fmt.Fprintf(b, "| Test Coverage | %.1f%% | 80%% | %s |\n", m.TestCoverage, pick(m.TestCoverage >= coverageThreshold, glyphOK, glyphWarn))
	fmt.Fprintf(b, "| Code Duplication | %.1f%% | < 5%% | %s |\n", m.DuplicationPercentage, pick(m.DuplicationPercentage < duplicationBound, glyphOK, glyphWarn))
	fmt.Fprintf(b, "| Technical Debt | %.1f%% | < 5%% | %s |\n\n", m.TechnicalDebtRatio, pick(m.TechnicalDebtRatio < techDebtBound, glyphOK, glyphWarn))

	if len(m.Layers) == 0 {
		return
	}

	names := make([]string, 0, len(m.Layers))
	for name := range m.Layers {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("### Architecture Metrics\n")
	b.WriteString("| Layer | Files | Lines | Violations | Coverage |\n")
	b.WriteString("|-------|-------|-------|------------|----------|\n")
	for _, name := range names {
		layer := m.Layers[name]
		fmt.Fprintf(b, "| %s | %d | %s | %d | %.1f%% |\n",
			layer.Name, layer.FileCount, humanize.Comma(int64(layer.LineCount)),
			layer.ViolationCount, layer.TestCoverage)
	}
	b.WriteString("\n")
}

// writeIssues renders one subsection per severity present. Info issues
// affect the score but are not listed.
func writeIssues(b *strings.Builder, issues []review.CodeIssue) {
	b.WriteString("## \U0001f50d Code Quality Issues\n\n")

	groups := review.GroupBySeverity(issues)
	sections := []struct {
		sev   review.Severity
		title string
	}{
		{review.SeverityCritical, "\U0001f6a8 Critical Issues (Must Fix)"},
		{review.SeverityError, glyphFail + " Errors (Should Fix)"},
		{review.SeverityWarning, glyphWarn + " Warnings"},
	}

	for _, sec := range sections {
		group := groups[sec.sev]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n\n", sec.title)
		for _, iss := range group {
			writeIssue(b, iss)
		}
		b.WriteString("\n")
	}
}

func writeIssue(b *strings.Builder, iss review.CodeIssue) {
	fmt.Fprintf(b, "#### %s\n", iss.Category.Label())
	fmt.Fprintf(b, "- **File:** `%s`\n", iss.FilePath)
	if iss.LineNumber > 0 {
		fmt.Fprintf(b, "- **Line:** %d\n", iss.LineNumber)
	}
	if iss.RuleID != "" {
		fmt.Fprintf(b, "- **Rule:** %s\n", iss.RuleID)
	}
	fmt.Fprintf(b, "- **Issue:** %s\n", iss.Message)
	if iss.Suggestion != "" {
		fmt.Fprintf(b, "- **Suggestion:** %s\n", iss.Suggestion)
	}
	b.WriteString("\n")
}

// writeRecommendations synthesizes priority tiers from simple rule
// triggers. Empty tiers are omitted entirely.
func writeRecommendations(b *strings.Builder, r *review.ReviewResult) {
	b.WriteString("## \U0001f4a1 Recommendations\n\n")

	var high, medium, low []string

	if r.Metrics.TestCoverage < coverageThreshold {
		high = append(high, fmt.Sprintf(
			"Increase test coverage from %.1f%% to at least 80%%", r.Metrics.TestCoverage))
	}

	counts := review.CountBySeverity(r.Issues)
	if n := counts[review.SeverityCritical]; n > 0 {
		high = append(high, fmt.Sprintf("Fix %d critical security/architecture issues", n))
	}

	if r.Metrics.DuplicationPercentage > duplicationBound {
		medium = append(medium, fmt.Sprintf(
			"Reduce code duplication from %.1f%% to below 5%%", r.Metrics.DuplicationPercentage))
	}

	if n := review.CountByCategory(r.Issues)[review.CategoryArchitecture]; n > 0 {
		high = append(high, fmt.Sprintf("Address %d clean architecture violations", n))
	}

	writeTier(b, "High Priority", high)
	writeTier(b, "Medium Priority", medium)
	writeTier(b, "Low Priority", low)
}

func writeTier(b *strings.Builder, title string, recs []string) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for i, rec := range recs {
		fmt.Fprintf(b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")
}

func pick(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
