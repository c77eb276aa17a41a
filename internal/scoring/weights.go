package scoring

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
)

// WeightSumEpsilon is the tolerance applied when checking that component
// weights sum to 1.0.
const WeightSumEpsilon = 1e-6

// WeightConfig assigns a relative weight to each scoring component. Weights
// must be non-negative and sum to 1.0 within WeightSumEpsilon.
type WeightConfig struct {
	Skill      float64 `json:"skill" mapstructure:"skill"`
	Semantic   float64 `json:"semantic" mapstructure:"semantic"`
	Experience float64 `json:"experience" mapstructure:"experience"`
	Education  float64 `json:"education" mapstructure:"education"`
}

// DefaultWeights returns the documented product policy: skill-heavy with a
// substantial semantic share.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		Skill:      0.40,
		Semantic:   0.30,
		Experience: 0.15,
		Education:  0.15,
	}
}

func (w WeightConfig) Sum() float64 {
	return w.Skill + w.Semantic + w.Experience + w.Education
}

// Validate rejects negative weights and weight sums outside the epsilon band
// around 1.0.
func (w WeightConfig) Validate() error {
	for component, weight := range map[string]float64{
		ComponentSkill:      w.Skill,
		ComponentSemantic:   w.Semantic,
		ComponentExperience: w.Experience,
		ComponentEducation:  w.Education,
	} {
		if weight < 0 {
			return fmt.Errorf("%w: %s weight must be non-negative, got %v", ErrInvalidConfig, component, weight)
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > WeightSumEpsilon {
		return fmt.Errorf("%w: weights must sum to 1.0, got %v", ErrInvalidConfig, sum)
	}

	return nil
}

// For returns the weight assigned to the named component, zero for unknown
// names.
func (w WeightConfig) For(component string) float64 {
	switch component {
	case ComponentSkill:
		return w.Skill
	case ComponentSemantic:
		return w.Semantic
	case ComponentExperience:
		return w.Experience
	case ComponentEducation:
		return w.Education
	default:
		return 0
	}
}

// WeightsFromMap decodes an ad hoc override map (for example from a config
// file or a per-tenant settings blob) into a validated WeightConfig. All four
// components must be present; unknown keys are rejected.
func WeightsFromMap(overrides map[string]any) (WeightConfig, error) {
	var weights WeightConfig

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &weights,
		ErrorUnused: true,
	})
	if err != nil {
		return WeightConfig{}, fmt.Errorf("building weight decoder: %w", err)
	}

	if err := decoder.Decode(overrides); err != nil {
		return WeightConfig{}, fmt.Errorf("%w: decoding weights: %v", ErrInvalidConfig, err)
	}

	if err := weights.Validate(); err != nil {
		return WeightConfig{}, err
	}

	return weights, nil
}
