package scoring

// Component names of the four sub-scores, in their canonical order.
const (
	ComponentSkill      = "skill"
	ComponentSemantic   = "semantic"
	ComponentExperience = "experience"
	ComponentEducation  = "education"
)

// ComponentOrder is the canonical component ordering used for sub-score
// emission and deterministic tie-breaking.
var ComponentOrder = []string{ComponentSkill, ComponentSemantic, ComponentExperience, ComponentEducation}

// SubScore is one named component score in [0, 1] with its supporting
// evidence. Sub-scores are produced once per match and never mutated.
type SubScore struct {
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	Evidence Evidence `json:"evidence"`
}

// Evidence is the serializable payload backing a sub-score. Only the fields
// relevant to the producing component are populated.
type Evidence struct {
	MatchedSkills    []string `json:"matched_skills,omitempty"`
	MissingRequired  []string `json:"missing_required,omitempty"`
	MissingPreferred []string `json:"missing_preferred,omitempty"`
	RequiredTotal    int      `json:"required_total,omitempty"`

	Similarity *float64 `json:"similarity,omitempty"`
	// Substituted reports that the value is a neutral stand-in because the
	// embedding collaborator was unavailable.
	Substituted bool `json:"substituted,omitempty"`

	CandidateYears *float64 `json:"candidate_years,omitempty"`
	RequiredYears  *float64 `json:"required_years,omitempty"`

	CandidateLevel string `json:"candidate_level,omitempty"`
	RequiredLevel  string `json:"required_level,omitempty"`
}

func floatPtr(v float64) *float64 { return &v }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
