// Package scoring implements the resume-to-job matching engine: four
// independent sub-scorers (skill, semantic, experience, education) combined
// into a weighted composite score with a verdict and supporting evidence.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maksimov/resume-screener/internal/logger"
	"github.com/maksimov/resume-screener/internal/profile"

	"go.uber.org/zap"
)

// neutralSemanticScore replaces the semantic sub-score when the embedding
// collaborator is unavailable.
const neutralSemanticScore = 0.5

// Engine orchestrates the four sub-scorers. It holds no mutable state across
// calls and is safe to share between concurrent workers.
type Engine struct {
	weights    WeightConfig
	params     Params
	skills     SkillAnalyzer
	experience ExperienceScorer
	education  EducationScorer
	semantic   *SemanticScorer
	log        *zap.Logger
	now        func() time.Time
}

// NewEngine validates the supplied configuration and builds an engine. Weight
// and parameter violations fail here with ErrInvalidConfig, before any match
// is attempted.
func NewEngine(weights WeightConfig, params Params, semantic *SemanticScorer, log *zap.Logger) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if semantic == nil {
		semantic = NewSemanticScorer(nil, 0, log)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		weights:    weights,
		params:     params,
		skills:     NewSkillAnalyzer(params.PreferredBonusCap),
		experience: NewExperienceScorer(params.ExperienceTolerance),
		education:  NewEducationScorer(params.EducationStepPenalty),
		semantic:   semantic,
		log:        log,
		now:        time.Now,
	}, nil
}

// Match scores one resume against one job using the engine's configured
// weights.
func (e *Engine) Match(ctx context.Context, resume *profile.ResumeProfile, job *profile.JobRequirement) (*MatchResult, error) {
	return e.MatchWithWeights(ctx, resume, job, e.weights)
}

// MatchWithWeights scores one resume against one job with a per-call weight
// override. The override is validated the same way as the engine defaults.
func (e *Engine) MatchWithWeights(ctx context.Context, resume *profile.ResumeProfile, job *profile.JobRequirement, weights WeightConfig) (*MatchResult, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, fmt.Errorf("%w: resume profile is required", profile.ErrInvalidInput)
	}
	if job == nil {
		return nil, fmt.Errorf("%w: job requirement is required", profile.ErrInvalidInput)
	}
	if err := resume.Validate(); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	degraded := false

	skill := e.skills.Analyze(resume.Skills, job.RequiredSkills, job.PreferredSkills)

	semantic, err := e.semantic.Score(ctx, resume.Summary, job.Description)
	if err != nil {
		if !errors.Is(err, ErrEmbeddingUnavailable) {
			return nil, err
		}

		// One failed signal never aborts the match.
		e.log.Warn("semantic signal unavailable, substituting neutral score",
			zap.Float64("neutral_score", neutralSemanticScore),
			zap.Error(err),
		)
		semantic = SubScore{
			Name:     ComponentSemantic,
			Value:    neutralSemanticScore,
			Evidence: Evidence{Substituted: true},
		}
		degraded = true
	}

	experience := e.experience.Score(resume.ExperienceYears, job.MinExperienceYears)

	education, err := e.education.Score(resume.Education, job.Education)
	if err != nil {
		return nil, err
	}

	subScores := []SubScore{skill, semantic, experience, education}

	var composite float64
	for _, sub := range subScores {
		composite += weights.For(sub.Name) * sub.Value * 100

		e.log.Debug("component scored",
			zap.String(logger.FieldComponent, sub.Name),
			zap.Float64("value", sub.Value),
			zap.Float64("weight", weights.For(sub.Name)),
		)
	}
	composite = roundHalfUp(composite, e.params.Precision)

	result := &MatchResult{
		SubScores: subScores,
		Composite: composite,
		Verdict:   VerdictFor(composite),
		Degraded:  degraded,
		Weights:   weights,
		Timestamp: e.now(),
	}

	e.log.Info("match scored",
		zap.Float64("composite", result.Composite),
		zap.String("verdict", result.Verdict),
		zap.Bool("degraded", result.Degraded),
	)

	return result, nil
}

// Params returns the engine's tuning constants, for consumers that render
// results.
func (e *Engine) Params() Params { return e.params }
