// Package graph provides the mutation and query operations over a case
// graph. All mutations use value semantics: the input graph is never
// modified, the returned graph is a consistent new value. Callers own
// persistence.
package graph

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/ppiankov/claimready/internal/model"
)

const idSize = 12

// NewID generates a fresh node or edge id.
func NewID() string {
	return gonanoid.Must(idSize)
}

// New creates an empty graph for the given claim.
func New(claimID string) model.CaseGraph {
	return model.CaseGraph{ClaimID: claimID}
}

// clone copies the graph so mutations never alias the caller's value.
func clone(g model.CaseGraph) model.CaseGraph {
	out := model.CaseGraph{ClaimID: g.ClaimID}
	if len(g.Nodes) > 0 {
		out.Nodes = make([]model.Node, len(g.Nodes))
		copy(out.Nodes, g.Nodes)
	}
	if len(g.Edges) > 0 {
		out.Edges = make([]model.GraphEdge, len(g.Edges))
		copy(out.Edges, g.Edges)
	}
	return out
}

// AddEdge appends the edge if both endpoints exist, the edge is not a
// self-loop, and no edge with the same source, target and kind is already
// present. Anything else returns the graph unchanged: the UI issues
// toggle-style calls and treats "nothing to do" as success.
func AddEdge(g model.CaseGraph, edge model.GraphEdge) model.CaseGraph {
	if edge.Source == edge.Target {
		return g
	}
	if !g.HasNode(edge.Source) || !g.HasNode(edge.Target) {
		return g
	}
	for _, e := range g.Edges {
		if e.Source == edge.Source && e.Target == edge.Target && e.Kind == edge.Kind {
			return g
		}
	}

	out := clone(g)
	out.Edges = append(out.Edges, edge)
	return out
}

// RemoveEdge removes the edge with the given id. Absent ids are a no-op so
// unlink toggles stay idempotent.
func RemoveEdge(g model.CaseGraph, edgeID string) model.CaseGraph {
	idx := -1
	for i, e := range g.Edges {
		if e.ID == edgeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return g
	}

	out := clone(g)
	out.Edges = append(out.Edges[:idx], out.Edges[idx+1:]...)
	return out
}

// AddEvent inserts a new event node with a freshly generated id.
func AddEvent(g model.CaseGraph, date, description string) model.CaseGraph {
	return addNode(g, model.Node{
		ID:    NewID(),
		Kind:  model.NodeEvent,
		Event: &model.EventData{Date: date, Description: description},
	})
}

// AddDemand inserts a new demand node with a freshly generated id.
func AddDemand(g model.CaseGraph, description string, amountNIS *float64) model.CaseGraph {
	return addNode(g, model.Node{
		ID:     NewID(),
		Kind:   model.NodeDemand,
		Demand: &model.DemandData{Description: description, AmountNIS: amountNIS},
	})
}

// AddEvidence inserts a new evidence node with a freshly generated id.
func AddEvidence(g model.CaseGraph, description string, fileType model.FileType, uri string) model.CaseGraph {
	return addNode(g, model.Node{
		ID:       NewID(),
		Kind:     model.NodeEvidence,
		Evidence: &model.EvidenceData{Description: description, FileType: fileType, URI: uri},
	})
}

func addNode(g model.CaseGraph, node model.Node) model.CaseGraph {
	out := clone(g)
	out.Nodes = append(out.Nodes, node)
	return out
}

// RemoveNode deletes the node and every edge referencing it as source or
// target, so edges never dangle. Absent ids are a no-op.
func RemoveNode(g model.CaseGraph, nodeID string) model.CaseGraph {
	if !g.HasNode(nodeID) {
		return g
	}

	out := model.CaseGraph{ClaimID: g.ClaimID}
	for _, n := range g.Nodes {
		if n.ID != nodeID {
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range g.Edges {
		if e.Source != nodeID && e.Target != nodeID {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}
