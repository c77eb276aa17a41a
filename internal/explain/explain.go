// Package explain turns a MatchResult into a human-readable report: ranked
// contributing factors, skill gaps, recommendations and a templated summary.
// Everything here is pure string assembly over the result's evidence; no
// generative model is involved.
package explain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maksimov/resume-screener/internal/scoring"

	"go.uber.org/zap"
)

const (
	DirectionPositive = "positive"
	DirectionNegative = "negative"

	defaultMaxMissingSkills = 5

	maxStrengths = 3
	maxGaps      = 3
)

// Factor is one ranked statement about a score driver.
type Factor struct {
	Component string  `json:"component"`
	Direction string  `json:"direction"`
	Magnitude float64 `json:"magnitude"`
	Text      string  `json:"text"`
}

// Recommendation suggests a skill the candidate should acquire next.
type Recommendation struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
}

// Report is the ordered explanation derived from a single MatchResult.
type Report struct {
	Factors         []Factor         `json:"factors"`
	Strengths       []string         `json:"strengths,omitempty"`
	Gaps            []string         `json:"gaps,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Summary         string           `json:"summary"`
	Narrative       string           `json:"narrative"`
	Degraded        bool             `json:"degraded,omitempty"`
}

// Generator builds explanation reports.
type Generator struct {
	maxMissingSkills int
	log              *zap.Logger
}

func NewGenerator(maxMissingSkills int, log *zap.Logger) *Generator {
	if maxMissingSkills <= 0 {
		maxMissingSkills = defaultMaxMissingSkills
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{maxMissingSkills: maxMissingSkills, log: log}
}

// Explain ranks the result's components by how much score they gave away
// (weight x (1 - value), descending; canonical component order breaks ties)
// and renders the factor list, skill-gap lines, recommendations, and the
// overall summary.
func (g *Generator) Explain(result *scoring.MatchResult) (*Report, error) {
	if result == nil {
		return nil, fmt.Errorf("match result is required")
	}

	ranked := make([]scoring.SubScore, len(result.SubScores))
	copy(ranked, result.SubScores)
	sort.SliceStable(ranked, func(i, j int) bool {
		dragI := result.Weights.For(ranked[i].Name) * (1 - ranked[i].Value)
		dragJ := result.Weights.For(ranked[j].Name) * (1 - ranked[j].Value)
		return dragI > dragJ
	})

	factors := make([]Factor, 0, len(ranked)+g.maxMissingSkills+1)
	for _, sub := range ranked {
		factor := g.componentFactor(sub, result.Weights.For(sub.Name))
		factors = append(factors, factor)

		if sub.Name == scoring.ComponentSkill {
			factors = append(factors, g.missingSkillFactors(sub, result.Weights.For(sub.Name))...)
		}
	}

	report := &Report{
		Factors:         factors,
		Strengths:       strengths(result),
		Gaps:            gaps(result),
		Recommendations: recommendations(result),
		Summary:         summary(result, factors),
		Narrative:       narrative(result),
		Degraded:        result.Degraded,
	}

	g.log.Debug("explanation generated",
		zap.Int("factors", len(report.Factors)),
		zap.Int("recommendations", len(report.Recommendations)),
	)

	return report, nil
}

func (g *Generator) componentFactor(sub scoring.SubScore, weight float64) Factor {
	drag := weight * (1 - sub.Value)
	direction := DirectionPositive
	if drag > 0 {
		direction = DirectionNegative
	}

	return Factor{
		Component: sub.Name,
		Direction: direction,
		Magnitude: drag,
		Text:      componentText(sub),
	}
}

func (g *Generator) missingSkillFactors(skill scoring.SubScore, weight float64) []Factor {
	missing := skill.Evidence.MissingRequired
	if len(missing) == 0 {
		return nil
	}

	perSkill := weight
	if skill.Evidence.RequiredTotal > 0 {
		perSkill = weight / float64(skill.Evidence.RequiredTotal)
	}

	limit := len(missing)
	if limit > g.maxMissingSkills {
		limit = g.maxMissingSkills
	}

	factors := make([]Factor, 0, limit+1)
	for _, token := range missing[:limit] {
		factors = append(factors, Factor{
			Component: scoring.ComponentSkill,
			Direction: DirectionNegative,
			Magnitude: perSkill,
			Text:      fmt.Sprintf("Missing required skill: %s", token),
		})
	}

	if rest := len(missing) - limit; rest > 0 {
		factors = append(factors, Factor{
			Component: scoring.ComponentSkill,
			Direction: DirectionNegative,
			Magnitude: perSkill * float64(rest),
			Text:      fmt.Sprintf("%d more required skills are missing", rest),
		})
	}

	return factors
}

func componentText(sub scoring.SubScore) string {
	switch sub.Name {
	case scoring.ComponentSkill:
		matched := len(sub.Evidence.MatchedSkills)
		total := sub.Evidence.RequiredTotal
		if total == 0 {
			return "No required skills were specified"
		}
		return fmt.Sprintf("Covers %d of %d required skills (%.0f%%)", matched, total, sub.Value*100)
	case scoring.ComponentSemantic:
		if sub.Evidence.Substituted {
			return "Semantic similarity was unavailable; a neutral score was used"
		}
		return fmt.Sprintf("Resume content is %.0f%% similar to the job description", sub.Value*100)
	case scoring.ComponentExperience:
		candidate, required := evidenceYears(sub)
		if required == 0 {
			return "No minimum experience was required"
		}
		return fmt.Sprintf("Has %s of %s required years of experience", formatYears(candidate), formatYears(required))
	case scoring.ComponentEducation:
		if sub.Value >= 1 {
			return "Meets the required education level"
		}
		return fmt.Sprintf("Education level %s is below the required %s",
			orNone(sub.Evidence.CandidateLevel), orNone(sub.Evidence.RequiredLevel))
	default:
		return fmt.Sprintf("Component %s scored %.0f%%", sub.Name, sub.Value*100)
	}
}

func summary(result *scoring.MatchResult, factors []Factor) string {
	score := strconv.FormatFloat(result.Composite, 'f', -1, 64)

	var top *Factor
	for i := range factors {
		if factors[i].Direction == DirectionNegative {
			top = &factors[i]
			break
		}
	}

	if top == nil {
		return fmt.Sprintf("%s (%s/100): all scoring components are at full marks.", result.Verdict, score)
	}

	return fmt.Sprintf("%s (%s/100): the largest drag on the score is the %s component. %s.",
		result.Verdict, score, top.Component, top.Text)
}

func narrative(result *scoring.MatchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The candidate scores %s/100 on the job match assessment. ",
		strconv.FormatFloat(result.Composite, 'f', -1, 64))

	if skill, ok := result.SubScore(scoring.ComponentSkill); ok && skill.Evidence.RequiredTotal > 0 {
		coverage := skill.Value * 100
		switch {
		case coverage > 80:
			fmt.Fprintf(&b, "With %.0f%% of required skills covered, the candidate shows strong technical alignment. ", coverage)
		case coverage > 60:
			fmt.Fprintf(&b, "The candidate covers %.0f%% of the required skills, a good foundation. ", coverage)
		default:
			fmt.Fprintf(&b, "The candidate covers %.0f%% of required skills, suggesting a learning curve. ", coverage)
		}
	}

	if experience, ok := result.SubScore(scoring.ComponentExperience); ok {
		years, _ := evidenceYears(experience)
		switch {
		case years > 5:
			fmt.Fprintf(&b, "With %s years of experience, the candidate brings substantial industry background. ", formatYears(years))
		case years > 2:
			fmt.Fprintf(&b, "The candidate's %s years of experience provide relevant background. ", formatYears(years))
		default:
			b.WriteString("The candidate appears to be early in their career. ")
		}
	}

	if skill, ok := result.SubScore(scoring.ComponentSkill); ok {
		if missing := len(skill.Evidence.MissingRequired); missing > 0 {
			if missing <= 3 {
				fmt.Fprintf(&b, "Only %d required skill gaps remain.", missing)
			} else {
				fmt.Fprintf(&b, "There are %d required skill gaps that would need additional training.", missing)
			}
		} else if skill.Evidence.RequiredTotal > 0 {
			b.WriteString("Every required skill is covered.")
		}
	}

	return strings.TrimSpace(b.String())
}

func strengths(result *scoring.MatchResult) []string {
	out := make([]string, 0, maxStrengths)

	if skill, ok := result.SubScore(scoring.ComponentSkill); ok {
		if skill.Evidence.RequiredTotal > 0 && skill.Value > 0.8 {
			out = append(out, fmt.Sprintf("Strong skill alignment (%.0f%% of required skills)", skill.Value*100))
		}
	}

	if experience, ok := result.SubScore(scoring.ComponentExperience); ok {
		if years, _ := evidenceYears(experience); years > 5 {
			out = append(out, fmt.Sprintf("Substantial industry experience (%s years)", formatYears(years)))
		}
	}

	if education, ok := result.SubScore(scoring.ComponentEducation); ok && education.Value >= 1 && education.Evidence.RequiredLevel != "" {
		out = append(out, "Meets or exceeds the required education level")
	}

	if len(out) > maxStrengths {
		out = out[:maxStrengths]
	}
	return out
}

func gaps(result *scoring.MatchResult) []string {
	out := make([]string, 0, maxGaps)

	if skill, ok := result.SubScore(scoring.ComponentSkill); ok {
		for _, token := range skill.Evidence.MissingRequired {
			if len(out) == maxGaps {
				return out
			}
			out = append(out, fmt.Sprintf("Missing required skill: %s", token))
		}
	}

	if education, ok := result.SubScore(scoring.ComponentEducation); ok && education.Value < 1 && len(out) < maxGaps {
		out = append(out, fmt.Sprintf("Education level below the required %s", orNone(education.Evidence.RequiredLevel)))
	}

	if experience, ok := result.SubScore(scoring.ComponentExperience); ok && experience.Value < 1 && len(out) < maxGaps {
		candidate, required := evidenceYears(experience)
		out = append(out, fmt.Sprintf("Experience short of requirement (%s of %s years)", formatYears(candidate), formatYears(required)))
	}

	return out
}

func recommendations(result *scoring.MatchResult) []Recommendation {
	skill, ok := result.SubScore(scoring.ComponentSkill)
	if !ok {
		return nil
	}

	out := make([]Recommendation, 0, len(skill.Evidence.MissingRequired)+len(skill.Evidence.MissingPreferred))
	for _, token := range skill.Evidence.MissingRequired {
		out = append(out, Recommendation{Skill: token, Priority: "High"})
	}
	for _, token := range skill.Evidence.MissingPreferred {
		out = append(out, Recommendation{Skill: token, Priority: "Medium"})
	}
	return out
}

func evidenceYears(sub scoring.SubScore) (candidate, required float64) {
	if sub.Evidence.CandidateYears != nil {
		candidate = *sub.Evidence.CandidateYears
	}
	if sub.Evidence.RequiredYears != nil {
		required = *sub.Evidence.RequiredYears
	}
	return candidate, required
}

func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNone(level string) string {
	if strings.TrimSpace(level) == "" {
		return "none"
	}
	return level
}
