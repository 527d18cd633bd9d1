// Package eligibility gates whether a case may proceed as a small claim
// under the jurisdictional rules: monetary cap and category fit. It is a
// deterministic check, not legal advice.
package eligibility

import (
	"fmt"

	"github.com/ppiankov/claimready/internal/model"
)

// Evaluator checks claim snapshots against the jurisdictional rules.
type Evaluator struct {
	cfg model.EligibilityConfig
}

// NewEvaluator creates an evaluator with the given rules configuration.
func NewEvaluator(cfg model.EligibilityConfig) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Check evaluates the claim and accumulates one blocker per violated rule.
// Verdict is ineligible when any hard blocker fires, borderline when only
// soft findings fire, otherwise eligible. An incomplete claim (no amount, no
// category yet) is not penalized with hard blockers.
func (e *Evaluator) Check(claim model.ClaimForScoring) model.EligibilityResult {
	var blockers []model.EligibilityBlocker

	if claim.AmountNIS > e.cfg.MaxAmountNIS {
		blockers = append(blockers, model.EligibilityBlocker{
			Code: model.BlockerAmountExceedsCap,
			Reason: fmt.Sprintf("claimed amount %.0f NIS exceeds the small-claims cap of %.0f NIS",
				claim.AmountNIS, e.cfg.MaxAmountNIS),
			Hard: true,
		})
	}

	switch {
	case claim.Category == "":
		blockers = append(blockers, model.EligibilityBlocker{
			Code:   model.BlockerCategoryMissing,
			Reason: "no claim category selected yet",
			Hard:   false,
		})
	case !e.cfg.Supports(claim.Category):
		blockers = append(blockers, model.EligibilityBlocker{
			Code:   model.BlockerCategoryUnsupported,
			Reason: fmt.Sprintf("category %q is not handled by the small-claims court", claim.Category),
			Hard:   true,
		})
	}

	result := model.EligibilityResult{Blockers: blockers}
	switch {
	case result.HasHardBlocker():
		result.Verdict = model.VerdictIneligible
	case len(blockers) > 0:
		result.Verdict = model.VerdictBorderline
	default:
		result.Verdict = model.VerdictEligible
	}
	return result
}

// QuickCheck is the coarse yes/no gate used before the interview begins. It
// agrees with Check on the hard-blocker dimension: it never says yes when
// Check would find a hard blocker.
func (e *Evaluator) QuickCheck(claim model.ClaimForScoring) bool {
	return !e.Check(claim).HasHardBlocker()
}
