package scoring

import "fmt"

// Params groups the tunable scoring constants. All values are overridable via
// configuration; the defaults are the documented product policy.
type Params struct {
	// PreferredBonusCap is the maximum relative bonus granted for full
	// preferred-skill coverage.
	PreferredBonusCap float64 `json:"preferred_bonus_cap" mapstructure:"preferred-bonus-cap"`
	// ExperienceTolerance is the fraction under the required years within
	// which a candidate still scores full marks.
	ExperienceTolerance float64 `json:"experience_tolerance" mapstructure:"experience-tolerance"`
	// EducationStepPenalty is subtracted for each ordinal level the candidate
	// falls short of the required education.
	EducationStepPenalty float64 `json:"education_step_penalty" mapstructure:"education-step-penalty"`
	// Precision is the number of decimal places kept in the composite score.
	Precision int `json:"precision" mapstructure:"precision"`
}

func DefaultParams() Params {
	return Params{
		PreferredBonusCap:    0.10,
		ExperienceTolerance:  0.10,
		EducationStepPenalty: 0.25,
		Precision:            1,
	}
}

func (p Params) Validate() error {
	if p.PreferredBonusCap < 0 || p.PreferredBonusCap > 1 {
		return fmt.Errorf("%w: preferred bonus cap must be in [0, 1], got %v", ErrInvalidConfig, p.PreferredBonusCap)
	}
	if p.ExperienceTolerance < 0 || p.ExperienceTolerance >= 1 {
		return fmt.Errorf("%w: experience tolerance must be in [0, 1), got %v", ErrInvalidConfig, p.ExperienceTolerance)
	}
	if p.EducationStepPenalty <= 0 || p.EducationStepPenalty > 1 {
		return fmt.Errorf("%w: education step penalty must be in (0, 1], got %v", ErrInvalidConfig, p.EducationStepPenalty)
	}
	if p.Precision < 0 || p.Precision > 6 {
		return fmt.Errorf("%w: precision must be in [0, 6], got %d", ErrInvalidConfig, p.Precision)
	}
	return nil
}
