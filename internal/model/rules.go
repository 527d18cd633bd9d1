package model

// RuleStatus is the outcome of one rule check.
type RuleStatus string

const (
	RulePass RuleStatus = "pass"
	RuleFail RuleStatus = "fail"
	RuleWarn RuleStatus = "warn"
	RuleSkip RuleStatus = "skip" // Inputs missing or unparsable
)

// NextAction is a recommended follow-up for a failed or warned rule. The id
// is stable; the UI maps it to a concrete flow.
type NextAction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// RuleResult is one entry in the ordered rule battery output.
type RuleResult struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Status     RuleStatus  `json:"status"`
	Severity   Severity    `json:"severity"`
	Detail     string      `json:"detail,omitempty"`
	NextAction *NextAction `json:"next_action,omitempty"`
}

// RulesOutput is the full ordered battery result, used for "what should I do
// next" guidance distinct from the numeric score.
type RulesOutput struct {
	Results []RuleResult `json:"results"`
}

// Failed returns the results with fail status, preserving order.
func (o RulesOutput) Failed() []RuleResult {
	var out []RuleResult
	for _, r := range o.Results {
		if r.Status == RuleFail {
			out = append(out, r)
		}
	}
	return out
}
