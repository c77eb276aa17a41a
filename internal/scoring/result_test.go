package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictBands(t *testing.T) {
	tests := []struct {
		composite float64
		verdict   string
	}{
		{100, VerdictExceptional},
		{80.0, VerdictExceptional},
		{79.9, VerdictStrong},
		{60.0, VerdictStrong},
		{59.9, VerdictModerate},
		{40.0, VerdictModerate},
		{39.9, VerdictLow},
		{0, VerdictLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.verdict, VerdictFor(tt.composite), "composite %v", tt.composite)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		expect    float64
	}{
		{50.66666, 1, 50.7},
		{50.64, 1, 50.6},
		{50.75, 1, 50.8},
		{99.99, 0, 100},
		{0.444, 2, 0.44},
		{0.125, 2, 0.13},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expect, roundHalfUp(tt.value, tt.precision), 1e-9,
			"value %v precision %d", tt.value, tt.precision)
	}
}

func TestMatchResultSubScoreLookup(t *testing.T) {
	result := &MatchResult{SubScores: []SubScore{
		{Name: ComponentSkill, Value: 0.5},
		{Name: ComponentSemantic, Value: 0.9},
	}}

	sub, ok := result.SubScore(ComponentSemantic)
	assert.True(t, ok)
	assert.Equal(t, 0.9, sub.Value)

	_, ok = result.SubScore("unknown")
	assert.False(t, ok)
}
