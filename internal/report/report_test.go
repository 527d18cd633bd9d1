package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/claimready/internal/model"
)

func reportAssessment() model.Assessment {
	return model.Assessment{
		ClaimID:    "claim-42",
		AssessedAt: time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
		Confidence: model.ConfidenceResult{
			Breakdown: model.ScoreBreakdown{
				RequiredFields: 35,
				Evidence:       10,
				Signature:      15,
				ValidAmount:    10,
				Demands:        8,
				Timeline:       5,
			},
			ReadinessScore: 83,
			Strength:       model.StrengthStrong,
			MissingFields: []model.MissingField{
				{Label: "Incident date", Importance: model.ImportanceRequired},
			},
			RiskFlags: []model.RiskFlag{
				{ID: "no-prior-notice", Title: "No prior notice sent", Description: "Courts expect a demand letter first.", Severity: model.SeverityMedium},
			},
			Suggestions: []model.Suggestion{
				{ID: model.SuggestAddEvidence, Title: "Attach supporting evidence", Description: "Receipts and photos strengthen the claim.", Priority: model.PriorityHigh},
			},
		},
		Eligibility: model.EligibilityResult{
			Verdict: model.VerdictEligible,
		},
		Rules: model.RulesOutput{
			Results: []model.RuleResult{
				{
					ID:     "prior-notice",
					Name:   "Prior notice",
					Status: model.RuleWarn,
					Detail: "No demand letter was sent before filing.",
					NextAction: &model.NextAction{
						ID:    "send-demand-letter",
						Title: "Send a demand letter",
					},
				},
			},
		},
		GraphScore: &model.GraphScoreResult{
			Breakdown: model.GraphScoreBreakdown{EventCoverage: 0.5, EvidenceLinkage: 1},
			Score:     75,
		},
	}
}

func TestMarkdown_Sections(t *testing.T) {
	md := Markdown(reportAssessment(), "Ready to file", true)

	for _, want := range []string{
		"# Claim Readiness Report",
		"claim-42",
		"83/100 (Ready to file)",
		"## Score breakdown",
		"| Required fields | 35 | 40 |",
		"## Evidentiary coverage",
		"Coverage score: 75/100",
		"## Missing fields",
		"Incident date (required)",
		"## Risk flags",
		"No prior notice sent",
		"## Suggested next steps",
		"Attach supporting evidence",
		"## Legal-process checks",
		"[WARN] **Prior notice**",
		"Send a demand letter",
		"not legal advice",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestMarkdown_OmitsEmptySections(t *testing.T) {
	a := reportAssessment()
	a.Confidence.MissingFields = nil
	a.Confidence.RiskFlags = nil
	a.Eligibility.Blockers = nil
	a.GraphScore = nil

	md := Markdown(a, "Ready to file", false)

	for _, absent := range []string{
		"## Missing fields",
		"## Risk flags",
		"## Eligibility blockers",
		"## Evidentiary coverage",
		"not legal advice",
	} {
		if strings.Contains(md, absent) {
			t.Errorf("report should not contain %q", absent)
		}
	}
}

func TestMarkdown_NarrativeSection(t *testing.T) {
	a := reportAssessment()
	a.LLM = &model.LLMSummary{
		Enabled:   true,
		Provider:  "openai",
		SummaryMD: "The claim is strong and nearly ready.",
		Warnings:  []string{"narrative truncated"},
	}

	md := Markdown(a, "Ready to file", false)

	if !strings.Contains(md, "## Narrative summary (generated)") {
		t.Error("missing narrative section")
	}
	if !strings.Contains(md, "The claim is strong and nearly ready.") {
		t.Error("missing narrative text")
	}
	if !strings.Contains(md, "> Warning: narrative truncated") {
		t.Error("missing narrative warning")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assessment.json")

	if err := WriteJSON(path, reportAssessment()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report failed: %v", err)
	}

	var got model.Assessment
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if got.ClaimID != "claim-42" {
		t.Errorf("unexpected claim id: %s", got.ClaimID)
	}
	if got.Confidence.ReadinessScore != 83 {
		t.Errorf("unexpected readiness score: %d", got.Confidence.ReadinessScore)
	}
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	if err := WriteMarkdown(path, reportAssessment(), "Ready to file", true); err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Claim Readiness Report") {
		t.Error("written report does not start with the title")
	}
}
