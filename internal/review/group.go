package review

// GroupBySeverity splits issues into per-severity buckets, preserving the
// input order within each bucket. The underlying slice is not reordered.
func GroupBySeverity(issues []CodeIssue) map[Severity][]CodeIssue {
	groups := make(map[Severity][]CodeIssue, len(Severities))
	for _, iss := range issues {
		groups[iss.Severity] = append(groups[iss.Severity], iss)
	}
	return groups
}

// FilterBySeverity returns the issues at the given severity, in input order.
func FilterBySeverity(issues []CodeIssue, sev Severity) []CodeIssue {
	var result []CodeIssue
	for _, iss := range issues {
		if iss.Severity == sev {
			result = append(result, iss)
		}
	}
	return result
}

// CountByCategory tallies issues per category.
func CountByCategory(issues []CodeIssue) map[Category]int {
	counts := make(map[Category]int)
	for _, iss := range issues {
		counts[iss.Category]++
	}
	return counts
}
