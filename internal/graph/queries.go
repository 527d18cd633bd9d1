package graph

import "github.com/ppiankov/claimready/internal/model"

// Events returns the event nodes in insertion order.
func Events(g model.CaseGraph) []model.Node {
	return byKind(g, model.NodeEvent)
}

// Demands returns the demand nodes in insertion order.
func Demands(g model.CaseGraph) []model.Node {
	return byKind(g, model.NodeDemand)
}

// Evidence returns the evidence nodes in insertion order.
func Evidence(g model.CaseGraph) []model.Node {
	return byKind(g, model.NodeEvidence)
}

func byKind(g model.CaseGraph, kind model.NodeKind) []model.Node {
	var out []model.Node
	for _, n := range g.Nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// UncoveredEvents returns the events with no incoming supports edge from an
// evidence node. These are the gaps the user should address next. Multiple
// edges to the same event are redundant; one is enough for coverage.
func UncoveredEvents(g model.CaseGraph) []model.Node {
	covered := coveredEventIDs(g)

	var out []model.Node
	for _, n := range g.Nodes {
		if n.Kind == model.NodeEvent && !covered[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// UnlinkedEvidence returns the evidence nodes with no outgoing edge of
// either kind: artifacts uploaded but never tied to a fact.
func UnlinkedEvidence(g model.CaseGraph) []model.Node {
	linked := make(map[string]bool)
	for _, e := range g.Edges {
		linked[e.Source] = true
	}

	var out []model.Node
	for _, n := range g.Nodes {
		if n.Kind == model.NodeEvidence && !linked[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// coveredEventIDs collects ids of events reached by a supports edge whose
// source is an evidence node. Edges with other source kinds are inert.
func coveredEventIDs(g model.CaseGraph) map[string]bool {
	covered := make(map[string]bool)
	for _, e := range g.Edges {
		if e.Kind != model.EdgeSupports {
			continue
		}
		src := g.Node(e.Source)
		if src == nil || src.Kind != model.NodeEvidence {
			continue
		}
		covered[e.Target] = true
	}
	return covered
}

// HasEvidentiaryNodes reports whether the graph contains any event or
// evidence node. A demand-only graph carries no coverage signal.
func HasEvidentiaryNodes(g model.CaseGraph) bool {
	for _, n := range g.Nodes {
		if n.Kind == model.NodeEvent || n.Kind == model.NodeEvidence {
			return true
		}
	}
	return false
}

// Coverage counts the evidentiary coverage of the graph: how many events
// have at least one incoming supports edge, and how many evidence nodes
// have at least one outgoing edge.
func Coverage(g model.CaseGraph) (coveredEvents, totalEvents, linkedEvidence, totalEvidence int) {
	totalEvents = len(Events(g))
	coveredEvents = totalEvents - len(UncoveredEvents(g))
	totalEvidence = len(Evidence(g))
	linkedEvidence = totalEvidence - len(UnlinkedEvidence(g))
	return coveredEvents, totalEvents, linkedEvidence, totalEvidence
}
