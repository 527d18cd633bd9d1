package model

// CaseGraph is the structured representation of one claim's facts: nodes for
// events, demands and evidence, plus typed edges linking evidence to facts.
// Exactly one graph exists per claim. Nodes and edges keep insertion order
// for stable rendering; scoring never depends on order.
type CaseGraph struct {
	ClaimID string      `json:"claim_id"`
	Nodes   []Node      `json:"nodes"` // Ids unique within the graph
	Edges   []GraphEdge `json:"edges"`
}

// Node carries one fact. Kind is immutable after creation; exactly one of
// the data fields is populated, matching Kind.
type Node struct {
	ID   string   `json:"id"`
	Kind NodeKind `json:"kind"`

	Event    *EventData    `json:"event,omitempty"`
	Demand   *DemandData   `json:"demand,omitempty"`
	Evidence *EvidenceData `json:"evidence,omitempty"`
}

// NodeKind is the node variant tag. The set is closed today but stored as a
// string so future kinds deserialize without data loss.
type NodeKind string

const (
	NodeEvent    NodeKind = "event"    // A fact asserted to have occurred
	NodeDemand   NodeKind = "demand"   // A specific relief sought
	NodeEvidence NodeKind = "evidence" // An artifact offered in support
)

// EventData describes an asserted occurrence.
type EventData struct {
	Date        string `json:"date,omitempty"` // ISO date (YYYY-MM-DD)
	Description string `json:"description,omitempty"`
}

// DemandData describes relief sought from the defendant.
type DemandData struct {
	Description string   `json:"description"`
	AmountNIS   *float64 `json:"amount_nis,omitempty"`
}

// EvidenceData describes a supporting artifact.
type EvidenceData struct {
	Description string   `json:"description,omitempty"`
	FileType    FileType `json:"file_type,omitempty"`
	URI         string   `json:"uri,omitempty"`
}

// FileType classifies an evidence artifact.
type FileType string

const (
	FileImage    FileType = "image"
	FilePDF      FileType = "pdf"
	FileDocument FileType = "document"
)

// GraphEdge is a directed, typed relation. Meaningful edges run from an
// evidence node to an event or demand node; other combinations are tolerated
// as inert so future node kinds do not break old graphs.
type GraphEdge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"` // Node id
	Target string   `json:"target"` // Node id
	Kind   EdgeKind `json:"kind"`
}

// EdgeKind classifies the evidentiary relation.
type EdgeKind string

const (
	EdgeSupports   EdgeKind = "supports"
	EdgeUndermines EdgeKind = "undermines"
)

// Node returns the node with the given id, or nil.
func (g *CaseGraph) Node(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// HasNode reports whether a node with the given id exists.
func (g *CaseGraph) HasNode(id string) bool {
	return g.Node(id) != nil
}
