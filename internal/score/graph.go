package score

import (
	"math"

	"github.com/ppiankov/claimready/internal/graph"
	"github.com/ppiankov/claimready/internal/model"
)

// GraphScorer weighs evidentiary coverage computed from a case graph: how
// many asserted events are actually supported by evidence, and how much of
// the uploaded evidence is actually tied to a fact.
type GraphScorer struct{}

// NewGraphScorer creates a new graph scorer.
func NewGraphScorer() *GraphScorer {
	return &GraphScorer{}
}

// Score computes the coverage ratios and the 0-100 coverage score. Details
// carries the raw counts and the formulas so the number stays explainable.
func (s *GraphScorer) Score(g model.CaseGraph) model.GraphScoreResult {
	coveredEvents, totalEvents, linkedEvidence, totalEvidence := graph.Coverage(g)

	eventCoverage := ratio(coveredEvents, totalEvents)
	evidenceLinkage := ratio(linkedEvidence, totalEvidence)

	// Equal weight between "facts are supported" and "artifacts are used".
	score := int(math.Round((eventCoverage + evidenceLinkage) / 2 * 100))

	return model.GraphScoreResult{
		Breakdown: model.GraphScoreBreakdown{
			EventCoverage:   eventCoverage,
			EvidenceLinkage: evidenceLinkage,
		},
		Score: score,
		Details: map[string]interface{}{
			"covered_events":  coveredEvents,
			"total_events":    totalEvents,
			"linked_evidence": linkedEvidence,
			"total_evidence":  totalEvidence,
			"event_formula":   "covered_events / total_events",
			"linkage_formula": "linked_evidence / total_evidence",
			"score_formula":   "round((event_coverage + evidence_linkage) / 2 * 100)",
		},
	}
}

// ratio returns num/den; an empty denominator counts as zero coverage.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
