package model

// EligibilityVerdict states whether a claim may proceed as a small claim.
type EligibilityVerdict string

const (
	VerdictEligible   EligibilityVerdict = "eligible"
	VerdictIneligible EligibilityVerdict = "ineligible"
	VerdictBorderline EligibilityVerdict = "borderline" // Soft findings only
)

// EligibilityBlocker names one violated jurisdictional rule. Hard blockers
// force an ineligible verdict; soft ones only downgrade to borderline.
type EligibilityBlocker struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
	Hard   bool   `json:"hard"`
}

// Blocker codes.
const (
	BlockerAmountExceedsCap    = "amount_exceeds_cap"
	BlockerCategoryUnsupported = "category_unsupported"
	BlockerCategoryMissing     = "category_missing"
)

// EligibilityResult is the jurisdictional gate verdict plus its reasons.
type EligibilityResult struct {
	Verdict  EligibilityVerdict   `json:"verdict"`
	Blockers []EligibilityBlocker `json:"blockers,omitempty"`
}

// HasHardBlocker reports whether any hard blocker fired.
func (r EligibilityResult) HasHardBlocker() bool {
	for _, b := range r.Blockers {
		if b.Hard {
			return true
		}
	}
	return false
}
