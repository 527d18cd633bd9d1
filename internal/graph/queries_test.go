package graph

import (
	"testing"

	"github.com/ppiankov/claimready/internal/model"
)

func coverageGraph() model.CaseGraph {
	return model.CaseGraph{
		ClaimID: "claim-2",
		Nodes: []model.Node{
			{ID: "ev1", Kind: model.NodeEvent, Event: &model.EventData{Description: "Paid deposit"}},
			{ID: "ev2", Kind: model.NodeEvent, Event: &model.EventData{Description: "Landlord kept deposit"}},
			{ID: "ex1", Kind: model.NodeEvidence, Evidence: &model.EvidenceData{Description: "Bank transfer"}},
			{ID: "ex2", Kind: model.NodeEvidence, Evidence: &model.EvidenceData{Description: "Unused photo"}},
			{ID: "dm1", Kind: model.NodeDemand, Demand: &model.DemandData{Description: "Return the deposit"}},
		},
		Edges: []model.GraphEdge{
			{ID: "e1", Source: "ex1", Target: "ev1", Kind: model.EdgeSupports},
		},
	}
}

func TestTypedQueries_InsertionOrder(t *testing.T) {
	g := coverageGraph()

	events := Events(g)
	if len(events) != 2 || events[0].ID != "ev1" || events[1].ID != "ev2" {
		t.Errorf("unexpected events: %+v", events)
	}
	if n := len(Demands(g)); n != 1 {
		t.Errorf("expected 1 demand, got %d", n)
	}
	if n := len(Evidence(g)); n != 2 {
		t.Errorf("expected 2 evidence nodes, got %d", n)
	}
}

func TestUncoveredEvents(t *testing.T) {
	g := coverageGraph()

	uncovered := UncoveredEvents(g)
	if len(uncovered) != 1 || uncovered[0].ID != "ev2" {
		t.Fatalf("expected only ev2 uncovered, got %+v", uncovered)
	}
}

// Covered and uncovered events must partition the event set.
func TestUncoveredEvents_Partition(t *testing.T) {
	g := coverageGraph()

	uncovered := make(map[string]bool)
	for _, n := range UncoveredEvents(g) {
		uncovered[n.ID] = true
	}

	covered := make(map[string]bool)
	for _, e := range g.Edges {
		if e.Kind == model.EdgeSupports {
			covered[e.Target] = true
		}
	}

	for id := range covered {
		if uncovered[id] {
			t.Errorf("event %s is both covered and uncovered", id)
		}
	}
	if len(uncovered)+len(covered) != len(Events(g)) {
		t.Errorf("partition mismatch: %d uncovered + %d covered != %d events",
			len(uncovered), len(covered), len(Events(g)))
	}
}

func TestUncoveredEvents_UnderminesDoesNotCover(t *testing.T) {
	g := coverageGraph()
	g = AddEdge(g, model.GraphEdge{ID: "e2", Source: "ex2", Target: "ev2", Kind: model.EdgeUndermines})

	for _, n := range UncoveredEvents(g) {
		if n.ID == "ev2" {
			return
		}
	}
	t.Error("expected ev2 to stay uncovered: undermines edges do not count as support")
}

func TestUnlinkedEvidence(t *testing.T) {
	g := coverageGraph()

	unlinked := UnlinkedEvidence(g)
	if len(unlinked) != 1 || unlinked[0].ID != "ex2" {
		t.Fatalf("expected only ex2 unlinked, got %+v", unlinked)
	}

	// Any outgoing edge counts, including undermines
	g = AddEdge(g, model.GraphEdge{ID: "e2", Source: "ex2", Target: "ev2", Kind: model.EdgeUndermines})
	if len(UnlinkedEvidence(g)) != 0 {
		t.Error("expected no unlinked evidence after linking ex2")
	}
}

// Linking evidence to an event removes it from the uncovered set; unlinking
// reinstates it.
func TestLinkUnlink_RoundTrip(t *testing.T) {
	g := coverageGraph()

	g = AddEdge(g, model.GraphEdge{ID: "e2", Source: "ex2", Target: "ev2", Kind: model.EdgeSupports})
	for _, n := range UncoveredEvents(g) {
		if n.ID == "ev2" {
			t.Fatal("ev2 still uncovered after linking")
		}
	}

	g = RemoveEdge(g, "e2")
	found := false
	for _, n := range UncoveredEvents(g) {
		if n.ID == "ev2" {
			found = true
		}
	}
	if !found {
		t.Error("ev2 not reinstated in uncovered events after unlinking")
	}
}

func TestCoverage_Counts(t *testing.T) {
	g := coverageGraph()

	coveredEvents, totalEvents, linkedEvidence, totalEvidence := Coverage(g)
	if coveredEvents != 1 || totalEvents != 2 {
		t.Errorf("expected 1/2 events covered, got %d/%d", coveredEvents, totalEvents)
	}
	if linkedEvidence != 1 || totalEvidence != 2 {
		t.Errorf("expected 1/2 evidence linked, got %d/%d", linkedEvidence, totalEvidence)
	}
}

func TestHasEvidentiaryNodes(t *testing.T) {
	if HasEvidentiaryNodes(New("empty")) {
		t.Error("empty graph has no evidentiary nodes")
	}

	demandOnly := AddDemand(New("claim-d"), "Refund", nil)
	if HasEvidentiaryNodes(demandOnly) {
		t.Error("demand-only graph has no evidentiary nodes")
	}

	if !HasEvidentiaryNodes(AddEvent(demandOnly, "2025-01-01", "Delivery failed")) {
		t.Error("expected evidentiary nodes after adding an event")
	}
	if !HasEvidentiaryNodes(AddEvidence(demandOnly, "Receipt", model.FilePDF, "")) {
		t.Error("expected evidentiary nodes after adding evidence")
	}
}
