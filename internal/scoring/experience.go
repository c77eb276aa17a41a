package scoring

import (
	"fmt"

	"github.com/maksimov/resume-screener/internal/profile"
)

// ExperienceScorer maps candidate years against required years. Pure.
type ExperienceScorer struct {
	tolerance float64
}

func NewExperienceScorer(tolerance float64) ExperienceScorer {
	return ExperienceScorer{tolerance: tolerance}
}

// Score returns min(candidate/required, 1.0), with two fixed policies: a zero
// requirement always scores 1.0, and a candidate within the tolerance
// fraction under the requirement scores 1.0. Negative inputs clamp to zero.
func (s ExperienceScorer) Score(candidateYears, requiredYears float64) SubScore {
	if candidateYears < 0 {
		candidateYears = 0
	}
	if requiredYears < 0 {
		requiredYears = 0
	}

	score := 1.0
	if requiredYears > 0 {
		ratio := candidateYears / requiredYears
		switch {
		case ratio >= 1-s.tolerance:
			score = 1.0
		default:
			score = ratio
		}
	}

	return SubScore{
		Name:  ComponentExperience,
		Value: clamp01(score),
		Evidence: Evidence{
			CandidateYears: floatPtr(candidateYears),
			RequiredYears:  floatPtr(requiredYears),
		},
	}
}

// EducationScorer maps the ordinal distance between candidate and required
// education levels onto a monotone score table. Pure.
type EducationScorer struct {
	stepPenalty float64
}

func NewEducationScorer(stepPenalty float64) EducationScorer {
	return EducationScorer{stepPenalty: stepPenalty}
}

// Score yields 1.0 when the candidate meets or exceeds the required level and
// subtracts the configured penalty per ordinal step short, floored at zero.
func (s EducationScorer) Score(candidate, required profile.EducationLevel) (SubScore, error) {
	candidateRank, err := candidate.Rank()
	if err != nil {
		return SubScore{}, fmt.Errorf("candidate education: %w", err)
	}

	requiredRank, err := required.Rank()
	if err != nil {
		return SubScore{}, fmt.Errorf("required education: %w", err)
	}

	score := 1.0
	if candidateRank < requiredRank {
		score = 1.0 - s.stepPenalty*float64(requiredRank-candidateRank)
	}

	return SubScore{
		Name:  ComponentEducation,
		Value: clamp01(score),
		Evidence: Evidence{
			CandidateLevel: string(candidate),
			RequiredLevel:  string(required),
		},
	}, nil
}
