package review

import "strings"

// Severity indicates the urgency of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Severities lists all severity levels in decreasing urgency.
var Severities = []Severity{SeverityCritical, SeverityError, SeverityWarning, SeverityInfo}

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Category classifies the nature of a finding.
type Category string

const (
	CategoryArchitecture  Category = "architecture"
	CategoryCodeQuality   Category = "code_quality"
	CategoryTesting       Category = "testing"
	CategorySecurity      Category = "security"
	CategoryDocumentation Category = "documentation"
	CategoryPerformance   Category = "performance"
	CategoryAntiPattern   Category = "anti_pattern"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryArchitecture, CategoryCodeQuality, CategoryTesting,
		CategorySecurity, CategoryDocumentation, CategoryPerformance,
		CategoryAntiPattern:
		return true
	}
	return false
}

// Label returns the display form of a category: underscores become spaces
// and each word is capitalized ("code_quality" -> "Code Quality").
func (c Category) Label() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
