package review

// severityWeights are the per-issue score deductions.
var severityWeights = map[Severity]float64{
	SeverityCritical: 10.0,
	SeverityError:    5.0,
	SeverityWarning:  1.0,
	SeverityInfo:     0.1,
}

// Metric adjustment boundaries. Favorable metrics never add points;
// they only stop deducting.
const (
	coverageTarget      = 80.0
	coveragePenaltyRate = 0.2
	duplicationLimit    = 5.0
	duplicationPenalty  = 2.0
)

// ComputeScore calculates the 0-100 quality score. Starts at 100, subtracts
// a fixed weight per issue by severity, then deducts for test coverage below
// 80% and duplication above 5%, and clamps the total to [0, 100].
func ComputeScore(r *ReviewResult) float64 {
	score := 100.0

	for _, iss := range r.Issues {
		score -= severityWeights[iss.Severity]
	}

	if r.Metrics.TestCoverage < coverageTarget {
		score -= (coverageTarget - r.Metrics.TestCoverage) * coveragePenaltyRate
	}
	if r.Metrics.DuplicationPercentage > duplicationLimit {
		score -= (r.Metrics.DuplicationPercentage - duplicationLimit) * duplicationPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
