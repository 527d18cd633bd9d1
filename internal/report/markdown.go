package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/claimready/internal/model"
)

// Markdown renders the assessment as a human-readable report. When
// includeFooter is set, a provenance footer closes the document.
func Markdown(a model.Assessment, readinessLabel string, includeFooter bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Claim Readiness Report\n\n")
	fmt.Fprintf(&b, "- **Claim**: %s\n", a.ClaimID)
	fmt.Fprintf(&b, "- **Assessed**: %s\n", a.AssessedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- **Readiness**: %d/100 (%s)\n", a.Confidence.ReadinessScore, readinessLabel)
	fmt.Fprintf(&b, "- **Strength**: %s\n", a.Confidence.Strength)
	fmt.Fprintf(&b, "- **Eligibility**: %s\n\n", a.Eligibility.Verdict)

	fmt.Fprintf(&b, "## Score breakdown\n\n")
	fmt.Fprintf(&b, "| Category | Score | Cap |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Required fields | %d | 40 |\n", a.Confidence.Breakdown.RequiredFields)
	fmt.Fprintf(&b, "| Evidence | %d | 15 |\n", a.Confidence.Breakdown.Evidence)
	fmt.Fprintf(&b, "| Signature | %d | 15 |\n", a.Confidence.Breakdown.Signature)
	fmt.Fprintf(&b, "| Valid amount | %d | 10 |\n", a.Confidence.Breakdown.ValidAmount)
	fmt.Fprintf(&b, "| Demands | %d | 10 |\n", a.Confidence.Breakdown.Demands)
	fmt.Fprintf(&b, "| Timeline | %d | 10 |\n\n", a.Confidence.Breakdown.Timeline)

	if a.GraphScore != nil {
		fmt.Fprintf(&b, "## Evidentiary coverage\n\n")
		fmt.Fprintf(&b, "- Events supported by evidence: %.0f%%\n", a.GraphScore.Breakdown.EventCoverage*100)
		fmt.Fprintf(&b, "- Evidence linked to facts: %.0f%%\n", a.GraphScore.Breakdown.EvidenceLinkage*100)
		fmt.Fprintf(&b, "- Coverage score: %d/100\n\n", a.GraphScore.Score)
	}

	if len(a.Eligibility.Blockers) > 0 {
		fmt.Fprintf(&b, "## Eligibility blockers\n\n")
		for _, bl := range a.Eligibility.Blockers {
			kind := "soft"
			if bl.Hard {
				kind = "hard"
			}
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", bl.Code, kind, bl.Reason)
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(a.Confidence.MissingFields) > 0 {
		fmt.Fprintf(&b, "## Missing fields\n\n")
		for _, m := range a.Confidence.MissingFields {
			fmt.Fprintf(&b, "- %s (%s)\n", m.Label, m.Importance)
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(a.Confidence.RiskFlags) > 0 {
		fmt.Fprintf(&b, "## Risk flags\n\n")
		for _, f := range a.Confidence.RiskFlags {
			fmt.Fprintf(&b, "- **%s** [%s]: %s\n", f.Title, f.Severity, f.Description)
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(a.Confidence.Suggestions) > 0 {
		fmt.Fprintf(&b, "## Suggested next steps\n\n")
		for _, s := range a.Confidence.Suggestions {
			fmt.Fprintf(&b, "- **%s** [%s]: %s\n", s.Title, s.Priority, s.Description)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Legal-process checks\n\n")
	for _, r := range a.Rules.Results {
		fmt.Fprintf(&b, "- [%s] **%s**: %s\n", strings.ToUpper(string(r.Status)), r.Name, r.Detail)
		if r.NextAction != nil {
			fmt.Fprintf(&b, "  - Next: %s", r.NextAction.Title)
			if r.NextAction.Description != "" {
				fmt.Fprintf(&b, ": %s", r.NextAction.Description)
			}
			fmt.Fprintf(&b, "\n")
		}
	}
	fmt.Fprintf(&b, "\n")

	if a.LLM != nil && a.LLM.Enabled && a.LLM.SummaryMD != "" {
		fmt.Fprintf(&b, "## Narrative summary (generated)\n\n")
		fmt.Fprintf(&b, "%s\n\n", a.LLM.SummaryMD)
		for _, w := range a.LLM.Warnings {
			fmt.Fprintf(&b, "> Warning: %s\n", w)
		}
		fmt.Fprintf(&b, "\n")
	}

	if includeFooter {
		fmt.Fprintf(&b, "---\n")
		fmt.Fprintf(&b, "Generated by claimready. This is a readiness diagnostic, not legal advice.\n")
	}

	return b.String()
}

// WriteMarkdown renders and writes the Markdown report.
func WriteMarkdown(path string, a model.Assessment, readinessLabel string, includeFooter bool) error {
	if err := os.WriteFile(path, []byte(Markdown(a, readinessLabel, includeFooter)), 0o644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}
