package graph

import (
	"testing"

	"github.com/ppiankov/claimready/internal/model"
)

// testGraph builds a graph with one event, one demand and one evidence node
// with fixed ids.
func testGraph() model.CaseGraph {
	return model.CaseGraph{
		ClaimID: "claim-1",
		Nodes: []model.Node{
			{ID: "ev1", Kind: model.NodeEvent, Event: &model.EventData{Date: "2025-11-02", Description: "Delivery arrived broken"}},
			{ID: "dm1", Kind: model.NodeDemand, Demand: &model.DemandData{Description: "Full refund"}},
			{ID: "ex1", Kind: model.NodeEvidence, Evidence: &model.EvidenceData{Description: "Photo", FileType: model.FileImage}},
		},
	}
}

func TestAddEdge_ValidatesEndpoints(t *testing.T) {
	g := testGraph()

	out := AddEdge(g, model.GraphEdge{ID: "e1", Source: "ex1", Target: "ev1", Kind: model.EdgeSupports})
	if len(out.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(out.Edges))
	}

	// Missing endpoint: no-op
	out2 := AddEdge(out, model.GraphEdge{ID: "e2", Source: "ex1", Target: "nope", Kind: model.EdgeSupports})
	if len(out2.Edges) != 1 {
		t.Errorf("expected edge to missing node to be ignored, got %d edges", len(out2.Edges))
	}

	// Self-loop: no-op
	out3 := AddEdge(out, model.GraphEdge{ID: "e3", Source: "ex1", Target: "ex1", Kind: model.EdgeSupports})
	if len(out3.Edges) != 1 {
		t.Errorf("expected self-loop to be ignored, got %d edges", len(out3.Edges))
	}
}

func TestAddEdge_DeduplicatesExactMatch(t *testing.T) {
	g := testGraph()
	g = AddEdge(g, model.GraphEdge{ID: "e1", Source: "ex1", Target: "ev1", Kind: model.EdgeSupports})

	// Same source/target/kind with a fresh id is still a duplicate
	g = AddEdge(g, model.GraphEdge{ID: "e2", Source: "ex1", Target: "ev1", Kind: model.EdgeSupports})
	if len(g.Edges) != 1 {
		t.Errorf("expected duplicate edge to be ignored, got %d edges", len(g.Edges))
	}

	// Different kind between the same pair is allowed
	g = AddEdge(g, model.GraphEdge{ID: "e3", Source: "ex1", Target: "ev1", Kind: model.EdgeUndermines})
	if len(g.Edges) != 2 {
		t.Errorf("expected undermines edge to be added, got %d edges", len(g.Edges))
	}
}

func TestRemoveEdge_Idempotent(t *testing.T) {
	g := testGraph()
	g = AddEdge(g, model.GraphEdge{ID: "e1", Source: "ex1", Target: "ev1", Kind: model.EdgeSupports})

	g = RemoveEdge(g, "e1")
	if len(g.Edges) != 0 {
		t.Fatalf("expected edge removed, got %d edges", len(g.Edges))
	}

	// Removing again or removing an unknown id changes nothing
	out := RemoveEdge(g, "e1")
	if len(out.Edges) != 0 || len(out.Nodes) != len(g.Nodes) {
		t.Error("expected removeEdge on absent id to be a no-op")
	}
}

func TestRemoveNode_CascadesEdges(t *testing.T) {
	g := testGraph()
	g = AddEdge(g, model.GraphEdge{ID: "e1", Source: "ex1", Target: "ev1", Kind: model.EdgeSupports})
	g = AddEdge(g, model.GraphEdge{ID: "e2", Source: "ex1", Target: "dm1", Kind: model.EdgeSupports})

	g = RemoveNode(g, "ex1")

	if g.HasNode("ex1") {
		t.Error("expected node removed")
	}
	for _, e := range g.Edges {
		if e.Source == "ex1" || e.Target == "ex1" {
			t.Errorf("dangling edge %s survived node removal", e.ID)
		}
	}
	if len(g.Edges) != 0 {
		t.Errorf("expected all edges cascaded, got %d", len(g.Edges))
	}
}

func TestRemoveNode_AbsentIsNoOp(t *testing.T) {
	g := testGraph()
	out := RemoveNode(g, "missing")
	if len(out.Nodes) != len(g.Nodes) || len(out.Edges) != len(g.Edges) {
		t.Error("expected removeNode on absent id to leave the graph unchanged")
	}
}

func TestBuilder_ValueSemantics(t *testing.T) {
	g := testGraph()
	before := len(g.Nodes)

	out := AddDemand(g, "Apology letter", nil)
	if len(g.Nodes) != before {
		t.Error("input graph was mutated by AddDemand")
	}
	if len(out.Nodes) != before+1 {
		t.Fatalf("expected %d nodes, got %d", before+1, len(out.Nodes))
	}

	added := out.Nodes[len(out.Nodes)-1]
	if added.Kind != model.NodeDemand || added.ID == "" || added.Demand == nil {
		t.Errorf("unexpected demand node: %+v", added)
	}
}

func TestAddNodes_FreshUniqueIDs(t *testing.T) {
	g := New("claim-9")
	g = AddEvent(g, "2025-01-01", "first")
	g = AddEvidence(g, "receipt", model.FilePDF, "file://r.pdf")
	g = AddDemand(g, "refund", nil)

	seen := make(map[string]bool)
	for _, n := range g.Nodes {
		if n.ID == "" {
			t.Error("node created without id")
		}
		if seen[n.ID] {
			t.Errorf("duplicate node id %s", n.ID)
		}
		seen[n.ID] = true
	}
}
