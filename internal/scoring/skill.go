package scoring

import "github.com/maksimov/resume-screener/internal/profile"

// SkillAnalyzer computes the skill sub-score from candidate, required and
// preferred skill sets.
type SkillAnalyzer struct {
	bonusCap float64
}

func NewSkillAnalyzer(bonusCap float64) SkillAnalyzer {
	return SkillAnalyzer{bonusCap: bonusCap}
}

// Analyze intersects the candidate skills with the job's required and
// preferred sets. The base score is the required-skill coverage ratio, 1.0
// when nothing is required. Preferred coverage adds a relative bonus up to
// the configured cap; the result is clamped to [0, 1]. Evidence lists follow
// the required/preferred iteration order.
func (a SkillAnalyzer) Analyze(candidate, required, preferred profile.SkillSet) SubScore {
	matched := required.Intersect(candidate)
	missingRequired := required.Subtract(candidate)
	missingPreferred := preferred.Subtract(candidate)

	score := 1.0
	if required.Len() > 0 {
		score = float64(len(matched)) / float64(required.Len())
	}

	if preferred.Len() > 0 && a.bonusCap > 0 {
		coverage := float64(len(preferred.Intersect(candidate))) / float64(preferred.Len())
		score *= 1 + a.bonusCap*coverage
	}

	return SubScore{
		Name:  ComponentSkill,
		Value: clamp01(score),
		Evidence: Evidence{
			MatchedSkills:    matched,
			MissingRequired:  missingRequired,
			MissingPreferred: missingPreferred,
			RequiredTotal:    required.Len(),
		},
	}
}
