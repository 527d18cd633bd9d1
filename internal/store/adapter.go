package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/claimready/internal/graph"
	"github.com/ppiankov/claimready/internal/model"
)

// Adapter maps a claim snapshot to its case graph, creating one on first
// access. The caller owns the returned graph between GetOrCreate and Save;
// nothing is persisted implicitly.
type Adapter struct {
	store Store
}

// NewAdapter creates a graph adapter over the given store.
func NewAdapter(s Store) *Adapter {
	return &Adapter{store: s}
}

// GetOrCreate loads the persisted graph for the claim, or builds a new empty
// graph stamped with the claim id, seeded from demand strings already on the
// snapshot. Repeated calls before any Save return an equivalent graph.
func (a *Adapter) GetOrCreate(ctx context.Context, claim model.ClaimForScoring) (model.CaseGraph, error) {
	if claim.ID == "" {
		return model.CaseGraph{}, fmt.Errorf("claim has no id")
	}

	g, err := a.store.Load(ctx, claim.ID)
	if err == nil {
		return *g, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return model.CaseGraph{}, fmt.Errorf("load graph for %q: %w", claim.ID, err)
	}

	return seed(claim), nil
}

// Save persists the full graph, replacing any prior version. Last write
// wins; concurrent sessions are not merged.
func (a *Adapter) Save(ctx context.Context, g model.CaseGraph) error {
	if err := a.store.Save(ctx, &g); err != nil {
		return fmt.Errorf("save graph for %q: %w", g.ClaimID, err)
	}
	return nil
}

// seed materializes a fresh graph from facts already present on the claim.
func seed(claim model.ClaimForScoring) model.CaseGraph {
	g := graph.New(claim.ID)
	for _, d := range claim.Demands {
		if d == "" {
			continue
		}
		g = graph.AddDemand(g, d, nil)
	}
	return g
}
