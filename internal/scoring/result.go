package scoring

import (
	"math"
	"time"
)

// Verdict labels, mapped from fixed composite-score bands.
const (
	VerdictExceptional = "Exceptional Match"
	VerdictStrong      = "Strong Match"
	VerdictModerate    = "Moderate Match"
	VerdictLow         = "Low Match"
)

// VerdictFor maps a composite score onto its verdict band. Lower bounds are
// inclusive; upper bounds exclusive except the top band.
func VerdictFor(composite float64) string {
	switch {
	case composite >= 80:
		return VerdictExceptional
	case composite >= 60:
		return VerdictStrong
	case composite >= 40:
		return VerdictModerate
	default:
		return VerdictLow
	}
}

// MatchResult is the immutable outcome of scoring one (resume, job) pair.
type MatchResult struct {
	// SubScores holds the four component scores in canonical order:
	// skill, semantic, experience, education.
	SubScores []SubScore   `json:"sub_scores"`
	Composite float64      `json:"composite"`
	Verdict   string       `json:"verdict"`
	Degraded  bool         `json:"degraded"`
	Weights   WeightConfig `json:"weights"`
	Timestamp time.Time    `json:"timestamp"`
}

// SubScore returns the named component score.
func (r *MatchResult) SubScore(name string) (SubScore, bool) {
	for _, sub := range r.SubScores {
		if sub.Name == name {
			return sub, true
		}
	}
	return SubScore{}, false
}

// roundHalfUp rounds to the given number of decimal places with ties going
// up, so results reproduce exactly across implementations.
func roundHalfUp(value float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Floor(value*pow+0.5) / pow
}
