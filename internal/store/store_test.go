package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/claimready/internal/graph"
	"github.com/ppiankov/claimready/internal/model"
)

func sampleGraph(claimID string) model.CaseGraph {
	g := graph.New(claimID)
	g = graph.AddEvent(g, "2025-11-02", "Delivery arrived broken")
	g = graph.AddEvidence(g, "Photo of the box", model.FileImage, "file://box.jpg")

	events := graph.Events(g)
	evidence := graph.Evidence(g)
	g = graph.AddEdge(g, model.GraphEdge{
		ID:     graph.NewID(),
		Source: evidence[0].ID,
		Target: events[0].ID,
		Kind:   model.EdgeSupports,
	})
	return g
}

// sameGraph compares nodes and edges as sets, ignoring order.
func sameGraph(a, b model.CaseGraph) bool {
	if a.ClaimID != b.ClaimID || len(a.Nodes) != len(b.Nodes) || len(a.Edges) != len(b.Edges) {
		return false
	}
	nodes := make(map[string]model.NodeKind)
	for _, n := range a.Nodes {
		nodes[n.ID] = n.Kind
	}
	for _, n := range b.Nodes {
		if nodes[n.ID] != n.Kind {
			return false
		}
	}
	edges := make(map[string]model.GraphEdge)
	for _, e := range a.Edges {
		edges[e.ID] = e
	}
	for _, e := range b.Edges {
		if edges[e.ID] != e {
			return false
		}
	}
	return true
}

func TestFileStore_RoundTrip(t *testing.T) {
	st := NewFileStore(t.TempDir())
	ctx := context.Background()

	g := sampleGraph("claim-1")
	if err := st.Save(ctx, &g); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load(ctx, "claim-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !sameGraph(g, *loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", g, *loaded)
	}
}

func TestFileStore_NotFound(t *testing.T) {
	st := NewFileStore(t.TempDir())

	_, err := st.Load(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_SaveReplacesPriorVersion(t *testing.T) {
	st := NewFileStore(t.TempDir())
	ctx := context.Background()

	g := sampleGraph("claim-1")
	if err := st.Save(ctx, &g); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	g2 := graph.New("claim-1")
	if err := st.Save(ctx, &g2); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := st.Load(ctx, "claim-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Nodes) != 0 {
		t.Errorf("expected last write to win, got %d nodes", len(loaded.Nodes))
	}
}

func TestCachedStore_ReadThroughAndInvalidation(t *testing.T) {
	inner := NewFileStore(t.TempDir())
	st := NewCachedStore(inner, time.Minute)
	ctx := context.Background()

	g := sampleGraph("claim-1")
	if err := st.Save(ctx, &g); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	first, err := st.Load(ctx, "claim-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// Save an updated graph; the next load must see the new version, not
	// the cached one.
	updated := graph.AddDemand(*first, "Full refund", nil)
	if err := st.Save(ctx, &updated); err != nil {
		t.Fatalf("update save failed: %v", err)
	}

	second, err := st.Load(ctx, "claim-1")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(second.Nodes) != len(first.Nodes)+1 {
		t.Errorf("cache returned a stale graph: %d nodes, want %d", len(second.Nodes), len(first.Nodes)+1)
	}
}

func TestAdapter_GetOrCreate_SeedsFromClaim(t *testing.T) {
	adapter := NewAdapter(NewFileStore(t.TempDir()))
	ctx := context.Background()

	claim := model.ClaimForScoring{
		ID:      "claim-7",
		Demands: []string{"Refund of 4,200 NIS", "Taxi costs"},
	}

	g, err := adapter.GetOrCreate(ctx, claim)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if g.ClaimID != "claim-7" {
		t.Errorf("graph stamped with wrong claim id: %s", g.ClaimID)
	}

	demands := graph.Demands(g)
	if len(demands) != 2 {
		t.Fatalf("expected 2 seeded demands, got %d", len(demands))
	}
	if demands[0].Demand.Description != "Refund of 4,200 NIS" {
		t.Errorf("unexpected seeded demand: %+v", demands[0].Demand)
	}
}

// Repeated GetOrCreate calls before any save return an equivalent graph.
func TestAdapter_GetOrCreate_Idempotent(t *testing.T) {
	adapter := NewAdapter(NewFileStore(t.TempDir()))
	ctx := context.Background()

	claim := model.ClaimForScoring{ID: "claim-8", Demands: []string{"Refund"}}

	first, err := adapter.GetOrCreate(ctx, claim)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := adapter.GetOrCreate(ctx, claim)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if len(first.Nodes) != len(second.Nodes) || len(first.Edges) != len(second.Edges) {
		t.Errorf("repeated GetOrCreate diverged: %+v vs %+v", first, second)
	}
}

func TestAdapter_SaveThenReload(t *testing.T) {
	adapter := NewAdapter(NewFileStore(t.TempDir()))
	ctx := context.Background()

	claim := model.ClaimForScoring{ID: "claim-9"}

	g, err := adapter.GetOrCreate(ctx, claim)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	g = graph.AddEvent(g, "2025-01-05", "Contract signed")
	if err := adapter.Save(ctx, g); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, err := adapter.GetOrCreate(ctx, claim)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !sameGraph(g, reloaded) {
		t.Errorf("persisted graph differs:\nsaved:    %+v\nreloaded: %+v", g, reloaded)
	}
}

func TestAdapter_RejectsClaimWithoutID(t *testing.T) {
	adapter := NewAdapter(NewFileStore(t.TempDir()))

	if _, err := adapter.GetOrCreate(context.Background(), model.ClaimForScoring{}); err == nil {
		t.Error("expected an error for a claim without an id")
	}
}
