// Package assess orchestrates one full readiness assessment: eligibility,
// confidence (graph-aware when a stored graph exists), the rule battery and
// the optional generated narrative.
package assess

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/claimready/internal/eligibility"
	"github.com/ppiankov/claimready/internal/graph"
	"github.com/ppiankov/claimready/internal/llm"
	"github.com/ppiankov/claimready/internal/model"
	"github.com/ppiankov/claimready/internal/rules"
	"github.com/ppiankov/claimready/internal/score"
	"github.com/ppiankov/claimready/internal/store"
	"github.com/ppiankov/claimready/internal/worker"
)

// Assessor runs the full battery over claim snapshots.
type Assessor struct {
	cfg model.Config

	eligibility *eligibility.Evaluator
	engine      *score.Engine
	graphScorer *score.GraphScorer
	rules       *rules.Evaluator
	adapter     *store.Adapter

	provider llm.Provider
	limiter  *worker.APILimiter
}

// New creates an assessor. The narrative provider comes from cfg.LLM and is
// nil when disabled; an unknown provider name is an error.
func New(cfg model.Config) (*Assessor, error) {
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return nil, err
	}

	var st store.Store = store.NewFileStore(cfg.Store.Dir)
	if cfg.Store.CacheEnabled {
		st = store.NewCachedStore(st, cfg.Store.CacheTTL)
	}

	return &Assessor{
		cfg:         cfg,
		eligibility: eligibility.NewEvaluator(cfg.Eligibility),
		engine:      score.NewEngine(cfg),
		graphScorer: score.NewGraphScorer(),
		rules:       rules.NewEvaluator(cfg),
		adapter:     store.NewAdapter(st),
		provider:    provider,
		limiter:     worker.NewAPILimiter(cfg.LLM.RatePerMinute, 5),
	}, nil
}

// Engine exposes the confidence engine for label/color rendering.
func (a *Assessor) Engine() *score.Engine {
	return a.engine
}

// Adapter exposes the graph adapter for graph editing commands.
func (a *Assessor) Adapter() *store.Adapter {
	return a.adapter
}

// AssessClaim computes the full assessment for one claim snapshot. Scores
// are computed before any LLM call; a narrative failure degrades to a
// warning on the artifact, never an assessment failure.
func (a *Assessor) AssessClaim(ctx context.Context, claim model.ClaimForScoring) (model.Assessment, error) {
	assessment := model.Assessment{
		ClaimID:     claim.ID,
		AssessedAt:  time.Now().UTC(),
		Eligibility: a.eligibility.Check(claim),
		Rules:       a.rules.Evaluate(claim),
	}

	g, err := a.adapter.GetOrCreate(ctx, claim)
	if err != nil {
		return model.Assessment{}, err
	}

	if graph.HasEvidentiaryNodes(g) {
		gs := a.graphScorer.Score(g)
		assessment.GraphScore = &gs
		assessment.Confidence = a.engine.CalculateWithGraph(claim, g)
	} else {
		assessment.Confidence = a.engine.Calculate(claim)
	}

	if a.provider != nil {
		assessment.LLM = a.narrate(ctx, assessment)
	}

	return assessment, nil
}

// AssessFile reads a claim snapshot document and assesses it.
func (a *Assessor) AssessFile(ctx context.Context, path string) (model.Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("reading claim document: %w", err)
	}

	var claim model.ClaimForScoring
	if err := json.Unmarshal(data, &claim); err != nil {
		return model.Assessment{}, fmt.Errorf("parsing claim document %q: %w", path, err)
	}
	if claim.ID == "" {
		return model.Assessment{}, fmt.Errorf("claim document %q has no id", path)
	}

	return a.AssessClaim(ctx, claim)
}

// narrate generates the optional narrative. The scores are already final.
func (a *Assessor) narrate(ctx context.Context, assessment model.Assessment) *model.LLMSummary {
	summary := &model.LLMSummary{
		Enabled:  true,
		Provider: a.provider.Name(),
		Model:    a.cfg.LLM.Model,
	}

	if err := a.limiter.Wait(ctx); err != nil {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("narrative skipped: %v", err))
		return summary
	}

	resp, err := a.provider.Summarize(ctx, llm.SummarizeRequest{Assessment: assessment})
	if err != nil {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("narrative generation failed: %v", err))
		return summary
	}

	summary.Model = resp.Model
	summary.SummaryMD = resp.Summary
	return summary
}
