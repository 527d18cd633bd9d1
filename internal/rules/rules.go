// Package rules runs an ordered battery of legal-process checks over a
// claim snapshot. The output is narrative guidance ("what should I do
// next"), distinct from the numeric readiness score. Every rule tolerates a
// partially complete claim: missing or unparsable inputs degrade to a skip
// result, never a panic.
package rules

import (
	"fmt"
	"time"

	"github.com/ppiankov/claimready/internal/model"
)

// Limitation period for civil claims, and the proximity window that turns a
// pass into a warning.
const (
	limitationYears   = 7
	limitationWarning = 6
)

// Evaluator runs the rule battery.
type Evaluator struct {
	cfg model.Config
	now func() time.Time
}

// NewEvaluator creates a rules evaluator with the given configuration.
func NewEvaluator(cfg model.Config) *Evaluator {
	return &Evaluator{cfg: cfg, now: time.Now}
}

// Evaluate runs every rule in a fixed order and returns the full battery.
func (e *Evaluator) Evaluate(claim model.ClaimForScoring) model.RulesOutput {
	results := []model.RuleResult{
		e.limitationPeriod(claim),
		e.amountCap(claim),
		e.categorySupported(claim),
		e.priorNotice(claim),
		e.writtenAgreement(claim),
		e.proofOfPayment(claim),
		e.evidencePresence(claim),
		e.signature(claim),
	}
	return model.RulesOutput{Results: results}
}

// limitationPeriod checks how close the incident is to the statute of
// limitations. An unparsable or missing date skips the rule.
func (e *Evaluator) limitationPeriod(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "limitation-period",
		Name: "Statute of limitations",
	}

	incident, ok := parseDate(claim.IncidentDate)
	if !ok {
		r.Status = model.RuleSkip
		r.Severity = model.SeverityLow
		r.Detail = "no usable incident date on the claim"
		return r
	}

	years := e.now().Sub(incident).Hours() / 24 / 365
	switch {
	case years >= limitationYears:
		r.Status = model.RuleFail
		r.Severity = model.SeverityHigh
		r.Detail = fmt.Sprintf("the incident is %.1f years old; civil claims lapse after %d years", years, limitationYears)
	case years >= limitationWarning:
		r.Status = model.RuleWarn
		r.Severity = model.SeverityHigh
		r.Detail = fmt.Sprintf("the incident is %.1f years old; the %d-year limitation period is close", years, limitationYears)
		r.NextAction = &model.NextAction{
			ID:          "file-promptly",
			Title:       "File without delay",
			Description: "Finish the claim now; waiting risks losing the right to sue entirely.",
		}
	default:
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = fmt.Sprintf("incident is %.1f years old, within the limitation period", years)
	}
	return r
}

func (e *Evaluator) amountCap(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "amount-cap",
		Name: "Small-claims monetary cap",
	}
	switch {
	case claim.AmountNIS <= 0:
		r.Status = model.RuleSkip
		r.Severity = model.SeverityLow
		r.Detail = "no claim amount entered yet"
	case claim.AmountNIS > e.cfg.Eligibility.MaxAmountNIS:
		r.Status = model.RuleFail
		r.Severity = model.SeverityHigh
		r.Detail = fmt.Sprintf("%.0f NIS exceeds the %.0f NIS cap", claim.AmountNIS, e.cfg.Eligibility.MaxAmountNIS)
		r.NextAction = &model.NextAction{
			ID:          "reduce-or-relocate",
			Title:       "Reduce the amount or file in a higher court",
			Description: "Waive the excess to stay in small claims, or file the full amount in magistrate court.",
		}
	default:
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = "amount is within the small-claims cap"
	}
	return r
}

func (e *Evaluator) categorySupported(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "category-supported",
		Name: "Claim category jurisdiction",
	}
	switch {
	case claim.Category == "":
		r.Status = model.RuleSkip
		r.Severity = model.SeverityLow
		r.Detail = "no category selected yet"
	case !e.cfg.Eligibility.Supports(claim.Category):
		r.Status = model.RuleFail
		r.Severity = model.SeverityHigh
		r.Detail = fmt.Sprintf("category %q is outside small-claims jurisdiction", claim.Category)
	default:
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = "category is handled by the small-claims court"
	}
	return r
}

func (e *Evaluator) priorNotice(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "prior-notice",
		Name: "Prior notice to the defendant",
	}
	if claim.HasPriorNotice {
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = "the defendant was warned before filing"
		return r
	}
	r.Status = model.RuleWarn
	r.Severity = model.SeverityMedium
	r.Detail = "no record of a demand letter or warning to the defendant"
	r.NextAction = &model.NextAction{
		ID:          "send-demand-letter",
		Title:       "Send a demand letter",
		Description: "A dated written demand gives the defendant a chance to settle and shows the court you acted in good faith.",
	}
	return r
}

func (e *Evaluator) writtenAgreement(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "written-agreement",
		Name: "Written agreement",
	}
	if !expectsAgreement(claim.Category) {
		r.Status = model.RuleSkip
		r.Severity = model.SeverityLow
		r.Detail = "not expected for this category"
		return r
	}
	if claim.HasWrittenAgreement {
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = "a written agreement backs the claim"
		return r
	}
	r.Status = model.RuleWarn
	r.Severity = model.SeverityMedium
	r.Detail = "claims of this kind usually rest on a written agreement"
	r.NextAction = &model.NextAction{
		ID:          "collect-agreement",
		Title:       "Locate the agreement or written terms",
		Description: "Emails, messages or invoices stating the terms can substitute for a formal contract.",
	}
	return r
}

func (e *Evaluator) proofOfPayment(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "proof-of-payment",
		Name: "Proof of payment",
	}
	if !expectsPayment(claim.Category) {
		r.Status = model.RuleSkip
		r.Severity = model.SeverityLow
		r.Detail = "not expected for this category"
		return r
	}
	if claim.HasProofOfPayment {
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = "payment is documented"
		return r
	}
	r.Status = model.RuleWarn
	r.Severity = model.SeverityLow
	r.Detail = "no receipt or bank record of the payment"
	r.NextAction = &model.NextAction{
		ID:          "collect-payment-proof",
		Title:       "Obtain a payment record",
		Description: "A bank statement or credit-card record proves the payment even without the original receipt.",
	}
	return r
}

func (e *Evaluator) evidencePresence(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "evidence-presence",
		Name: "Supporting evidence",
	}
	if claim.EvidenceCount > 0 {
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = fmt.Sprintf("%d evidence item(s) attached", claim.EvidenceCount)
		return r
	}
	r.Status = model.RuleWarn
	r.Severity = model.SeverityMedium
	r.Detail = "the claim has no attached evidence"
	r.NextAction = &model.NextAction{
		ID:          "gather-evidence",
		Title:       "Gather evidence",
		Description: "Photos, receipts, correspondence or witness details that support the facts.",
	}
	return r
}

func (e *Evaluator) signature(claim model.ClaimForScoring) model.RuleResult {
	r := model.RuleResult{
		ID:   "signature",
		Name: "Claim signature",
	}
	if claim.HasSignature {
		r.Status = model.RulePass
		r.Severity = model.SeverityLow
		r.Detail = "the statement of claim is signed"
		return r
	}
	r.Status = model.RuleFail
	r.Severity = model.SeverityHigh
	r.Detail = "an unsigned claim is rejected at filing"
	r.NextAction = &model.NextAction{
		ID:          "sign-claim",
		Title:       "Sign the claim",
	}
	return r
}

// parseDate accepts the date layouts the interview produces.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func expectsAgreement(cat model.ClaimCategory) bool {
	switch cat {
	case model.CategoryContract, model.CategoryServices, model.CategoryRental:
		return true
	}
	return false
}

func expectsPayment(cat model.ClaimCategory) bool {
	switch cat {
	case model.CategoryConsumer, model.CategoryServices, model.CategoryRental:
		return true
	}
	return false
}
