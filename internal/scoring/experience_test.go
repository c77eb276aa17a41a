package scoring

import (
	"testing"

	"github.com/maksimov/resume-screener/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceScorerRatio(t *testing.T) {
	scorer := NewExperienceScorer(0.10)

	tests := []struct {
		name      string
		candidate float64
		required  float64
		expect    float64
	}{
		{"no requirement", 0, 0, 1.0},
		{"exceeds requirement", 10, 5, 1.0},
		{"meets requirement exactly", 5, 5, 1.0},
		{"within tolerance band", 4.6, 5, 1.0},
		{"below tolerance band", 3, 5, 0.6},
		{"no experience", 0, 5, 0.0},
		{"negative years clamp to zero", -2, 5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := scorer.Score(tt.candidate, tt.required)
			assert.Equal(t, ComponentExperience, sub.Name)
			assert.InDelta(t, tt.expect, sub.Value, 1e-9)
		})
	}
}

func TestExperienceScorerEvidence(t *testing.T) {
	sub := NewExperienceScorer(0.10).Score(3, 5)

	require.NotNil(t, sub.Evidence.CandidateYears)
	require.NotNil(t, sub.Evidence.RequiredYears)
	assert.Equal(t, 3.0, *sub.Evidence.CandidateYears)
	assert.Equal(t, 5.0, *sub.Evidence.RequiredYears)
}

func TestEducationScorerTable(t *testing.T) {
	scorer := NewEducationScorer(0.25)

	tests := []struct {
		name      string
		candidate profile.EducationLevel
		required  profile.EducationLevel
		expect    float64
	}{
		{"meets requirement", profile.EducationBachelor, profile.EducationBachelor, 1.0},
		{"exceeds requirement", profile.EducationDoctorate, profile.EducationBachelor, 1.0},
		{"one step short", profile.EducationBachelor, profile.EducationMaster, 0.75},
		{"two steps short", profile.EducationAssociate, profile.EducationMaster, 0.5},
		{"floors at zero", profile.EducationNone, profile.EducationDoctorate, 0.0},
		{"no requirement", profile.EducationNone, profile.EducationNone, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := scorer.Score(tt.candidate, tt.required)
			require.NoError(t, err)
			assert.Equal(t, ComponentEducation, sub.Name)
			assert.InDelta(t, tt.expect, sub.Value, 1e-9)
		})
	}
}

func TestEducationScorerRejectsUnknownLevel(t *testing.T) {
	scorer := NewEducationScorer(0.25)

	_, err := scorer.Score(profile.EducationLevel("bootcamp"), profile.EducationBachelor)
	assert.ErrorIs(t, err, profile.ErrInvalidInput)

	_, err = scorer.Score(profile.EducationBachelor, profile.EducationLevel("diploma"))
	assert.ErrorIs(t, err, profile.ErrInvalidInput)
}
