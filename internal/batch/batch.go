// Package batch screens many resumes against one job requirement. Pairs are
// independent, so the run fans out across a bounded worker group; one pair's
// failure never affects its siblings.
package batch

import (
	"context"
	"sort"

	"github.com/maksimov/resume-screener/internal/explain"
	"github.com/maksimov/resume-screener/internal/profile"
	"github.com/maksimov/resume-screener/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// Entry is one candidate queued for screening.
type Entry struct {
	// Source identifies where the profile came from, typically a file path
	// or the candidate name.
	Source string
	Resume *profile.ResumeProfile
}

// Item is the per-candidate outcome. Exactly one of Result or Err is set.
type Item struct {
	ID     string               `json:"id"`
	Source string               `json:"source"`
	Result *scoring.MatchResult `json:"result,omitempty"`
	Report *explain.Report      `json:"report,omitempty"`
	Err    string               `json:"error,omitempty"`
}

// Summary is the outcome of a batch run, ranked by composite score
// descending with failed items last.
type Summary struct {
	RunID     string `json:"run_id"`
	Items     []Item `json:"items"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// Screener runs (resume, job) pairs through the engine and the explanation
// generator with bounded parallelism.
type Screener struct {
	engine      *scoring.Engine
	generator   *explain.Generator
	concurrency int
	log         *zap.Logger
}

func New(engine *scoring.Engine, generator *explain.Generator, concurrency int, log *zap.Logger) *Screener {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Screener{
		engine:      engine,
		generator:   generator,
		concurrency: concurrency,
		log:         log,
	}
}

// Run screens every entry against the job. Per-item failures are recorded on
// the item; the returned error only reflects run-level faults such as context
// cancellation.
func (s *Screener) Run(ctx context.Context, job *profile.JobRequirement, entries []Entry) (*Summary, error) {
	runID := uuid.NewString()
	items := make([]Item, len(entries))

	s.log.Info("starting batch screening",
		zap.String("run_id", runID),
		zap.Int("candidates", len(entries)),
		zap.Int("concurrency", s.concurrency),
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)

	for i, entry := range entries {
		group.Go(func() error {
			items[i] = s.screen(groupCtx, job, entry)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(a, b int) bool {
		ra, rb := items[a].Result, items[b].Result
		if ra == nil || rb == nil {
			return rb == nil && ra != nil
		}
		return ra.Composite > rb.Composite
	})

	summary := &Summary{RunID: runID, Items: items}
	for _, item := range items {
		if item.Err == "" {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	s.log.Info("batch screening finished",
		zap.String("run_id", runID),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}

func (s *Screener) screen(ctx context.Context, job *profile.JobRequirement, entry Entry) Item {
	item := Item{ID: uuid.NewString(), Source: entry.Source}

	result, err := s.engine.Match(ctx, entry.Resume, job)
	if err != nil {
		s.log.Warn("screening candidate failed",
			zap.String("source", entry.Source),
			zap.Error(err),
		)
		item.Err = err.Error()
		return item
	}

	item.Result = result

	report, err := s.generator.Explain(result)
	if err != nil {
		item.Err = err.Error()
		return item
	}
	item.Report = report

	return item
}
