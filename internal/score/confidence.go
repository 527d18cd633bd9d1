// Package score computes the readiness assessment of a claim: a weighted
// breakdown, an aggregate 0-100 readiness score, a qualitative strength
// rating, missing-field and risk diagnostics, and actionable suggestions.
// All computation is pure and deterministic; incompleteness is absorbed as
// zero credit, never as an error.
package score

import (
	"fmt"
	"math"

	"github.com/ppiankov/claimready/internal/graph"
	"github.com/ppiankov/claimready/internal/model"
)

// Sub-score caps. The six categories sum to at most 100.
const (
	capRequiredFields = 40
	capEvidence       = 15
	capSignature      = 15
	capValidAmount    = 10
	capDemands        = 10
	capTimeline       = 10
)

// Engine calculates confidence results from claim snapshots.
type Engine struct {
	cfg model.Config
}

// NewEngine creates a scoring engine with the given configuration.
func NewEngine(cfg model.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Calculate computes the full readiness artifact from the flat snapshot.
func (e *Engine) Calculate(claim model.ClaimForScoring) model.ConfidenceResult {
	return e.calculate(claim, e.evidenceFromCount(claim.EvidenceCount), nil)
}

// CalculateWithGraph computes the same artifact, but the evidence category
// rewards evidentiary coverage from the case graph instead of the raw count
// alone. A graph with no event or evidence nodes (empty, or seeded with
// demands only) falls back to the count-only formula.
func (e *Engine) CalculateWithGraph(claim model.ClaimForScoring, g model.CaseGraph) model.ConfidenceResult {
	if !graph.HasEvidentiaryNodes(g) {
		return e.Calculate(claim)
	}
	gs := NewGraphScorer().Score(g)
	return e.calculate(claim, e.evidenceFromGraph(claim.EvidenceCount, gs), &gs)
}

func (e *Engine) calculate(claim model.ClaimForScoring, evidenceScore int, gs *model.GraphScoreResult) model.ConfidenceResult {
	var missing []model.MissingField

	required, requiredMissing := e.requiredFields(claim)
	missing = append(missing, requiredMissing...)

	breakdown := model.ScoreBreakdown{
		RequiredFields: required,
		Evidence:       evidenceScore,
		Signature:      e.signature(claim),
		ValidAmount:    e.validAmount(claim),
		Demands:        e.demands(claim),
		Timeline:       e.timeline(claim),
	}

	if breakdown.ValidAmount == 0 {
		missing = append(missing, model.MissingField{Label: "Valid claim amount", Importance: model.ImportanceRequired})
	}
	if breakdown.Signature == 0 {
		missing = append(missing, model.MissingField{Label: "Signature", Importance: model.ImportanceRequired})
	}
	if breakdown.Evidence < capEvidence {
		missing = append(missing, model.MissingField{Label: "Supporting evidence", Importance: model.ImportanceRecommended})
	}
	if breakdown.Demands < capDemands {
		missing = append(missing, model.MissingField{Label: "Demand from the defendant", Importance: model.ImportanceRecommended})
	}
	if breakdown.Timeline < capTimeline {
		missing = append(missing, model.MissingField{Label: "Timeline of events", Importance: model.ImportanceRecommended})
	}

	readiness := breakdown.Total()

	return model.ConfidenceResult{
		Breakdown:      breakdown,
		ReadinessScore: readiness,
		Strength:       e.StrengthOf(readiness),
		MissingFields:  missing,
		RiskFlags:      e.riskFlags(claim),
		Suggestions:    e.suggestions(claim, breakdown, readiness, gs),
	}
}

// requiredFields grants proportional credit for the identity and fact fields
// that block filing when absent: plaintiff name/id/phone/address, defendant
// name/address, facts summary and claim category.
func (e *Engine) requiredFields(claim model.ClaimForScoring) (int, []model.MissingField) {
	fields := []struct {
		label   string
		present bool
	}{
		{"Plaintiff name", claim.PlaintiffName != ""},
		{"Plaintiff ID number", claim.PlaintiffIDNum != ""},
		{"Plaintiff phone", claim.PlaintiffPhone != ""},
		{"Plaintiff address", claim.PlaintiffAddress != ""},
		{"Defendant name", claim.DefendantName != ""},
		{"Defendant address", claim.DefendantAddress != ""},
		{"Facts summary", claim.Summary != ""},
		{"Claim category", claim.Category != ""},
	}

	perField := capRequiredFields / len(fields)
	score := 0
	var missing []model.MissingField
	for _, f := range fields {
		if f.present {
			score += perField
		} else {
			missing = append(missing, model.MissingField{Label: f.label, Importance: model.ImportanceRequired})
		}
	}
	return score, missing
}

// evidenceFromCount scales with the number of evidence items, saturating at
// the configured target count. Zero evidence yields zero.
func (e *Engine) evidenceFromCount(count int) int {
	target := e.cfg.Scoring.EvidenceTarget
	if target <= 0 {
		target = 3
	}
	if count <= 0 {
		return 0
	}
	if count >= target {
		return capEvidence
	}
	return count * capEvidence / target
}

// evidenceFromGraph blends the raw count with the graph coverage ratios:
// 15 * (0.4*count_ratio + 0.35*event_coverage + 0.25*evidence_linkage).
func (e *Engine) evidenceFromGraph(count int, gs model.GraphScoreResult) int {
	target := e.cfg.Scoring.EvidenceTarget
	if target <= 0 {
		target = 3
	}
	countRatio := math.Min(float64(count)/float64(target), 1)

	blend := 0.4*countRatio + 0.35*gs.Breakdown.EventCoverage + 0.25*gs.Breakdown.EvidenceLinkage
	score := int(math.Round(blend * capEvidence))
	if score > capEvidence {
		score = capEvidence
	}
	return score
}

// signature is binary: full credit when the claim is signed.
func (e *Engine) signature(claim model.ClaimForScoring) int {
	if claim.HasSignature {
		return capSignature
	}
	return 0
}

// validAmount grants full credit only for a positive amount within the cap.
func (e *Engine) validAmount(claim model.ClaimForScoring) int {
	if claim.AmountNIS > 0 && claim.AmountNIS <= e.cfg.Eligibility.MaxAmountNIS {
		return capValidAmount
	}
	return 0
}

// demands is binary: one clear demand is all the court needs.
func (e *Engine) demands(claim model.ClaimForScoring) int {
	for _, d := range claim.Demands {
		if d != "" {
			return capDemands
		}
	}
	return 0
}

// timeline saturates at the configured entry count.
func (e *Engine) timeline(claim model.ClaimForScoring) int {
	target := e.cfg.Scoring.TimelineTarget
	if target <= 0 {
		target = 2
	}
	n := len(claim.Timeline)
	if n <= 0 {
		return 0
	}
	if n >= target {
		return capTimeline
	}
	return n * capTimeline / target
}

// riskFlags detects hazards independent of the numeric score.
func (e *Engine) riskFlags(claim model.ClaimForScoring) []model.RiskFlag {
	var flags []model.RiskFlag

	if claim.AmountNIS > e.cfg.Eligibility.MaxAmountNIS {
		flags = append(flags, model.RiskFlag{
			ID:    "amount-exceeds-cap",
			Icon:  "alert-triangle",
			Title: "Amount above the small-claims cap",
			Description: fmt.Sprintf("The claimed amount (%.0f NIS) exceeds the small-claims limit of %.0f NIS. The claim cannot be filed as-is.",
				claim.AmountNIS, e.cfg.Eligibility.MaxAmountNIS),
			Severity: model.SeverityHigh,
		})
	}

	if claim.Category != "" && !e.cfg.Eligibility.Supports(claim.Category) {
		flags = append(flags, model.RiskFlag{
			ID:          "category-unsupported",
			Icon:        "ban",
			Title:       "Category outside small-claims jurisdiction",
			Description: fmt.Sprintf("Claims in category %q are not heard by the small-claims court.", claim.Category),
			Severity:    model.SeverityHigh,
		})
	}

	if categoryExpectsAgreement(claim.Category) && !claim.HasWrittenAgreement {
		flags = append(flags, model.RiskFlag{
			ID:          "no-written-agreement",
			Icon:        "file-text",
			Title:       "No written agreement",
			Description: "Claims of this kind usually rest on a written agreement. Without one, proving the terms is harder.",
			Severity:    model.SeverityMedium,
		})
	}

	if !claim.HasPriorNotice {
		flags = append(flags, model.RiskFlag{
			ID:          "no-prior-notice",
			Icon:        "bell",
			Title:       "No prior notice to the defendant",
			Description: "Courts expect the defendant to have had a chance to settle before being sued.",
			Severity:    model.SeverityMedium,
		})
	}

	if categoryExpectsPayment(claim.Category) && !claim.HasProofOfPayment {
		flags = append(flags, model.RiskFlag{
			ID:          "no-proof-of-payment",
			Icon:        "credit-card",
			Title:       "No proof of payment",
			Description: "A receipt or bank record of the payment strengthens the monetary claim considerably.",
			Severity:    model.SeverityLow,
		})
	}

	return flags
}

// suggestions ranks fixable gaps. Ids are stable across calls; the UI
// switches on them, not on the text.
func (e *Engine) suggestions(claim model.ClaimForScoring, b model.ScoreBreakdown, readiness int, gs *model.GraphScoreResult) []model.Suggestion {
	var out []model.Suggestion

	if b.RequiredFields < capRequiredFields {
		out = append(out, model.Suggestion{
			ID:          model.SuggestCompleteRequiredFields,
			Icon:        "clipboard-list",
			Title:       "Complete the required details",
			Description: "Identity and fact fields are still missing. These block filing entirely.",
			Priority:    model.PriorityHigh,
		})
	}
	if b.ValidAmount == 0 {
		out = append(out, model.Suggestion{
			ID:          model.SuggestSetValidAmount,
			Icon:        "calculator",
			Title:       "Set a valid claim amount",
			Description: "Enter a positive amount within the small-claims cap.",
			Priority:    model.PriorityHigh,
		})
	}
	if b.Signature == 0 {
		out = append(out, model.Suggestion{
			ID:          model.SuggestAddSignature,
			Icon:        "pen-line",
			Title:       "Sign the claim",
			Description: "An unsigned statement of claim will be rejected by the court office.",
			Priority:    model.PriorityHigh,
		})
	}
	if b.Evidence < capEvidence {
		out = append(out, model.Suggestion{
			ID:          model.SuggestAddEvidence,
			Icon:        "paperclip",
			Title:       "Add supporting evidence",
			Description: "Receipts, photos, messages or contracts that back up the facts.",
			Priority:    model.PriorityMedium,
		})
	}
	if gs != nil && gs.Breakdown.EventCoverage < 1 {
		out = append(out, model.Suggestion{
			ID:          model.SuggestLinkEvidence,
			Icon:        "link",
			Title:       "Link evidence to your events",
			Description: "Some events have no evidence tied to them. Connect each fact to the artifact that proves it.",
			Priority:    model.PriorityMedium,
		})
	}
	if b.Demands == 0 {
		out = append(out, model.Suggestion{
			ID:          model.SuggestAddDemand,
			Icon:        "target",
			Title:       "State what you demand",
			Description: "Spell out the specific relief you want from the defendant.",
			Priority:    model.PriorityMedium,
		})
	}
	if b.Timeline < capTimeline {
		out = append(out, model.Suggestion{
			ID:          model.SuggestAddTimeline,
			Icon:        "calendar",
			Title:       "Build the timeline",
			Description: "A handful of dated events makes the story easy for the judge to follow.",
			Priority:    model.PriorityLow,
		})
	}
	if readiness >= e.cfg.Scoring.StrongMin {
		out = append(out, model.Suggestion{
			ID:          model.SuggestMockTrial,
			Icon:        "gavel",
			Title:       "Rehearse with a mock trial",
			Description: "The case looks ready. Practicing the hearing is the best remaining preparation.",
			Priority:    model.PriorityLow,
		})
	}

	return out
}

// StrengthOf maps the aggregate readiness score to the qualitative rating.
func (e *Engine) StrengthOf(readiness int) model.Strength {
	switch {
	case readiness >= e.cfg.Scoring.StrongMin:
		return model.StrengthStrong
	case readiness >= e.cfg.Scoring.MediumMin:
		return model.StrengthMedium
	default:
		return model.StrengthWeak
	}
}

// categoryExpectsAgreement reports whether the category typically rests on a
// written agreement.
func categoryExpectsAgreement(cat model.ClaimCategory) bool {
	switch cat {
	case model.CategoryContract, model.CategoryServices, model.CategoryRental:
		return true
	}
	return false
}

// categoryExpectsPayment reports whether the category typically involves a
// payment the plaintiff should be able to prove.
func categoryExpectsPayment(cat model.ClaimCategory) bool {
	switch cat {
	case model.CategoryConsumer, model.CategoryServices, model.CategoryRental:
		return true
	}
	return false
}
