package model

import "time"

// ScoreBreakdown holds the six independently capped sub-scores. Their sum is
// the readiness score, bounded 0-100 by construction.
type ScoreBreakdown struct {
	RequiredFields int `json:"required_fields"` // 0-40
	Evidence       int `json:"evidence"`        // 0-15
	Signature      int `json:"signature"`       // 0-15
	ValidAmount    int `json:"valid_amount"`    // 0-10
	Demands        int `json:"demands"`         // 0-10
	Timeline       int `json:"timeline"`        // 0-10
}

// Total sums the sub-scores into the readiness score.
func (b ScoreBreakdown) Total() int {
	return b.RequiredFields + b.Evidence + b.Signature + b.ValidAmount + b.Demands + b.Timeline
}

// Strength is the qualitative rating of case merit.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Importance marks whether a missing field blocks filing.
type Importance string

const (
	ImportanceRequired    Importance = "required"    // Blocks filing
	ImportanceRecommended Importance = "recommended" // Improves but doesn't block
)

// MissingField is one unmet expectation on the claim.
type MissingField struct {
	Label      string     `json:"label"`
	Importance Importance `json:"importance"`
}

// Severity grades risk flags and rule findings.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// RiskFlag is a detected hazard, independent of the numeric score.
type RiskFlag struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Priority orders suggestions.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is an actionable next step. The id comes from a closed
// vocabulary the consuming UI switches on; the text is advisory only.
type Suggestion struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// Stable suggestion ids. The UI maps these to follow-up actions, so they
// must not change between calls or releases.
const (
	SuggestCompleteRequiredFields = "complete-required-fields"
	SuggestAddEvidence            = "add-evidence"
	SuggestAddSignature           = "add-signature"
	SuggestSetValidAmount         = "set-valid-amount"
	SuggestAddDemand              = "add-demand"
	SuggestAddTimeline            = "add-timeline"
	SuggestLinkEvidence           = "link-evidence"
	SuggestMockTrial              = "mock-trial"
)

// ConfidenceResult is the readiness artifact computed from a claim snapshot.
type ConfidenceResult struct {
	Breakdown      ScoreBreakdown `json:"breakdown"`
	ReadinessScore int            `json:"readiness_score"` // 0-100
	Strength       Strength       `json:"strength"`
	MissingFields  []MissingField `json:"missing_fields"`
	RiskFlags      []RiskFlag     `json:"risk_flags"`
	Suggestions    []Suggestion   `json:"suggestions"`
}

// GraphScoreBreakdown holds the evidentiary coverage ratios derived from a
// case graph.
type GraphScoreBreakdown struct {
	EventCoverage   float64 `json:"event_coverage"`   // Events with >=1 incoming supports edge / events
	EvidenceLinkage float64 `json:"evidence_linkage"` // Evidence with >=1 outgoing edge / evidence
}

// GraphScoreResult is the graph-aware partial score. Details carries the
// transparent inputs and formulas so the number is always explainable.
type GraphScoreResult struct {
	Breakdown GraphScoreBreakdown    `json:"breakdown"`
	Score     int                    `json:"score"` // 0-100 coverage score
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Assessment is the complete artifact written back onto the claim record by
// a recalculate action: confidence, eligibility, rules and graph coverage.
type Assessment struct {
	ClaimID    string    `json:"claim_id"`
	AssessedAt time.Time `json:"assessed_at"`

	Confidence  ConfidenceResult  `json:"confidence"`
	Eligibility EligibilityResult `json:"eligibility"`
	Rules       RulesOutput       `json:"rules"`

	GraphScore *GraphScoreResult `json:"graph_score,omitempty"` // Present when a graph exists

	LLM *LLMSummary `json:"llm,omitempty"` // Optional narrative, never affects scores
}

// LLMSummary is an optional generated narrative of the assessment.
// CRITICAL: it never affects scoring and is clearly separated.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
