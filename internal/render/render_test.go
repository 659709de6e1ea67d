package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/reviewcritic/internal/review"
)

var testOpts = Options{Reviewer: "AI Code Review System", Version: "0.1.0"}

func sampleResult() *review.ReviewResult {
	return &review.ReviewResult{
		Timestamp: time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
		Metrics: review.CodeMetrics{
			TotalFiles:            40,
			TotalLines:            12450,
			AvgComplexity:         4.2,
			TestCoverage:          62.0,
			DuplicationPercentage: 8.0,
			TechnicalDebtRatio:    3.0,
			Layers: map[string]review.LayerMetrics{
				"domain": {Name: "domain", FileCount: 12, LineCount: 4100, ViolationCount: 0, TestCoverage: 88.0},
				"api":    {Name: "api", FileCount: 9, LineCount: 2300, ViolationCount: 2, TestCoverage: 54.0},
			},
		},
		Issues: []review.CodeIssue{
			{
				Category: review.CategorySecurity, Severity: review.SeverityCritical,
				Message: "credentials in source", FilePath: "internal/db/conn.go",
				LineNumber: 17, RuleID: "SEC002",
				Suggestion: "move to environment configuration",
			},
			{
				Category: review.CategoryArchitecture, Severity: review.SeverityError,
				Message: "handler imports storage directly", FilePath: "internal/api/users.go",
			},
			{
				Category: review.CategoryCodeQuality, Severity: review.SeverityWarning,
				Message: "function exceeds 80 lines", FilePath: "internal/api/orders.go", LineNumber: 140,
			},
			{
				Category: review.CategoryDocumentation, Severity: review.SeverityInfo,
				Message: "missing package comment", FilePath: "internal/util/util.go",
			},
		},
		Score:  51.5,
		Passed: false,
	}
}

func TestMarkdownHeaderAndBanner(t *testing.T) {
	md := Markdown(sampleResult(), testOpts)

	assert.True(t, strings.HasPrefix(md, "# Code Review Summary\n"))
	assert.Contains(t, md, "**Generated:** 2026-08-30 14:30:00")
	assert.Contains(t, md, "**Reviewer:** AI Code Review System")
	assert.Contains(t, md, "**Version:** 0.1.0")
	assert.Contains(t, md, "### Overall Score: 51.5/100.0")
	assert.Contains(t, md, "FAILED")
	assert.NotContains(t, md, "PASSED")
}

func TestMarkdownPassedBanner(t *testing.T) {
	r := sampleResult()
	r.Issues = nil
	r.Score = 92.4
	r.Passed = true
	md := Markdown(r, testOpts)
	assert.Contains(t, md, "### Overall Score: 92.4/100.0")
	assert.Contains(t, md, "PASSED")
	assert.NotContains(t, md, "FAILED")
}

func TestMarkdownMetricsTable(t *testing.T) {
	md := Markdown(sampleResult(), testOpts)

	assert.Contains(t, md, "| Metric | Value | Threshold | Status |")
	assert.Contains(t, md, "| Lines of Code | 12,450 | - | ✅ |")
	assert.Contains(t, md, "| Avg Complexity | 4.2 | 10 | ✅ |")
	assert.Contains(t, md, "| Test Coverage | 62.0% | 80% | ⚠️ |")
	assert.Contains(t, md, "| Code Duplication | 8.0% | < 5% | ⚠️ |")
	assert.Contains(t, md, "| Technical Debt | 3.0% | < 5% | ✅ |")
}

func TestMarkdownMetricGlyphBoundaries(t *testing.T) {
	r := sampleResult()
	r.Metrics.AvgComplexity = 10.0 // at the limit: still ok
	r.Metrics.TestCoverage = 80.0  // at the threshold: ok
	r.Metrics.DuplicationPercentage = 5.0 // at the bound: warn
	r.Metrics.TechnicalDebtRatio = 5.0    // at the bound: warn
	md := Markdown(r, testOpts)

	assert.Contains(t, md, "| Avg Complexity | 10.0 | 10 | ✅ |")
	assert.Contains(t, md, "| Test Coverage | 80.0% | 80% | ✅ |")
	assert.Contains(t, md, "| Code Duplication | 5.0% | < 5% | ⚠️ |")
	assert.Contains(t, md, "| Technical Debt | 5.0% | < 5% | ⚠️ |")
}

func TestMarkdownLayerTable(t *testing.T) {
	md := Markdown(sampleResult(), testOpts)

	require.Contains(t, md, "### Architecture Metrics")
	apiRow := strings.Index(md, "| api | 9 | 2,300 | 2 | 54.0% |")
	domainRow := strings.Index(md, "| domain | 12 | 4,100 | 0 | 88.0% |")
	require.GreaterOrEqual(t, apiRow, 0)
	require.GreaterOrEqual(t, domainRow, 0)
	// rows sorted by layer name
	assert.Less(t, apiRow, domainRow)
}

func TestMarkdownOmitsLayerTableWhenEmpty(t *testing.T) {
	r := sampleResult()
	r.Metrics.Layers = nil
	md := Markdown(r, testOpts)
	assert.NotContains(t, md, "### Architecture Metrics")
}

func TestMarkdownIssueSections(t *testing.T) {
	md := Markdown(sampleResult(), testOpts)

	assert.Contains(t, md, "Critical Issues (Must Fix)")
	assert.Contains(t, md, "Errors (Should Fix)")
	assert.Contains(t, md, "Warnings")

	assert.Contains(t, md, "#### Security")
	assert.Contains(t, md, "- **File:** `internal/db/conn.go`")
	assert.Contains(t, md, "- **Line:** 17")
	assert.Contains(t, md, "- **Rule:** SEC002")
	assert.Contains(t, md, "- **Issue:** credentials in source")
	assert.Contains(t, md, "- **Suggestion:** move to environment configuration")

	// info issues affect the score but are never listed
	assert.NotContains(t, md, "missing package comment")
	assert.NotContains(t, md, "internal/util/util.go")
}

func TestMarkdownOmitsEmptyIssueSections(t *testing.T) {
	r := sampleResult()
	r.Issues = []review.CodeIssue{
		{Category: review.CategoryTesting, Severity: review.SeverityWarning,
			Message: "m", FilePath: "a.go"},
	}
	md := Markdown(r, testOpts)
	assert.NotContains(t, md, "Critical Issues (Must Fix)")
	assert.NotContains(t, md, "Errors (Should Fix)")
	assert.Contains(t, md, "Warnings")
}

func TestMarkdownOptionalIssueFieldsOmitted(t *testing.T) {
	r := sampleResult()
	r.Issues = []review.CodeIssue{
		{Category: review.CategoryArchitecture, Severity: review.SeverityError,
			Message: "handler imports storage directly", FilePath: "internal/api/users.go"},
	}
	md := Markdown(r, testOpts)
	assert.Contains(t, md, "#### Architecture")
	assert.NotContains(t, md, "- **Line:**")
	assert.NotContains(t, md, "- **Rule:**")
	assert.NotContains(t, md, "- **Suggestion:**")
}

func TestMarkdownRecommendations(t *testing.T) {
	md := Markdown(sampleResult(), testOpts)

	assert.Contains(t, md, "### High Priority")
	assert.Contains(t, md, "Increase test coverage from 62.0% to at least 80%")
	assert.Contains(t, md, "Fix 1 critical security/architecture issues")
	assert.Contains(t, md, "Address 1 clean architecture violations")
	assert.Contains(t, md, "### Medium Priority")
	assert.Contains(t, md, "Reduce code duplication from 8.0% to below 5%")
	assert.NotContains(t, md, "### Low Priority")
}

func TestMarkdownOmitsEmptyRecommendationTiers(t *testing.T) {
	r := sampleResult()
	r.Issues = nil
	r.Metrics.TestCoverage = 95
	r.Metrics.DuplicationPercentage = 1
	md := Markdown(r, testOpts)
	assert.Contains(t, md, "## \U0001f4a1 Recommendations")
	assert.NotContains(t, md, "### High Priority")
	assert.NotContains(t, md, "### Medium Priority")
	assert.NotContains(t, md, "### Low Priority")
}

func TestMarkdownDeterministic(t *testing.T) {
	r := sampleResult()
	first := Markdown(r, testOpts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Markdown(r, testOpts))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	out, err := JSON(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, out, `"score": 51.5`)
	assert.Contains(t, out, `"passed": false`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderDispatch(t *testing.T) {
	r := sampleResult()

	md, err := Render("md", r, testOpts)
	require.NoError(t, err)
	assert.Contains(t, md, "# Code Review Summary")

	js, err := Render("json", r, testOpts)
	require.NoError(t, err)
	assert.Contains(t, js, `"metrics"`)

	_, err = Render("xml", r, testOpts)
	assert.Error(t, err)
}
