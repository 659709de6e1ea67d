package review

// Unlimited marks a severity with no count threshold.
const Unlimited = -1

// Thresholds maps each severity to the maximum allowed issue count.
// A count above the threshold fails the review; Unlimited never fails.
type Thresholds map[Severity]int

// DefaultThresholds returns the standard gate: no criticals, no errors,
// at most 10 warnings, unlimited info.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SeverityCritical: 0,
		SeverityError:    0,
		SeverityWarning:  10,
		SeverityInfo:     Unlimited,
	}
}

// StrictThresholds returns the strict-mode gate, which also fails on any
// warning.
func StrictThresholds() Thresholds {
	t := DefaultThresholds()
	t[SeverityWarning] = 0
	return t
}

// CountBySeverity tallies issues per severity level.
func CountBySeverity(issues []CodeIssue) map[Severity]int {
	counts := make(map[Severity]int, len(Severities))
	for _, s := range Severities {
		counts[s] = 0
	}
	for _, iss := range issues {
		counts[iss.Severity]++
	}
	return counts
}

// Passes reports whether the issue counts stay within every threshold.
// The verdict is independent of the numeric score.
func (t Thresholds) Passes(issues []CodeIssue) bool {
	counts := CountBySeverity(issues)
	for sev, limit := range t {
		if limit == Unlimited {
			continue
		}
		if counts[sev] > limit {
			return false
		}
	}
	return true
}
