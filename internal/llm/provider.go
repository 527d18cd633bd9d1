package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/claimready/internal/model"
)

// Provider defines the interface for narrative generators.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a plain-language narrative of the assessment
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for narrative generation.
type SummarizeRequest struct {
	// Assessment is the computed readiness artifact to narrate. The
	// narrative describes these numbers; it never changes them.
	Assessment model.Assessment

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the generated narrative.
type SummarizeResponse struct {
	// Summary is the generated narrative text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// BuildPrompt constructs the default narrative prompt. The model is
// restricted to describing the computed assessment; it must not invent
// facts, scores or legal conclusions.
func BuildPrompt(a model.Assessment) string {
	prompt := fmt.Sprintf(`You are narrating a small-claims readiness assessment for a self-represented litigant.

CRITICAL RULES:
1. Describe ONLY the numbers and findings below. Do not invent facts about the case.
2. This is preparation guidance, NOT legal advice. Never predict the outcome of the case.
3. Never say the claim will win or lose - only describe how prepared it is.
4. Keep the tone encouraging and concrete.

Assessment:
- Readiness score: %d/100
- Strength: %s
- Eligibility verdict: %s
- Missing fields: %d (%d required)
- Risk flags: %d
- Suggestions: %d
`, a.Confidence.ReadinessScore, a.Confidence.Strength, a.Eligibility.Verdict,
		len(a.Confidence.MissingFields), countRequired(a.Confidence.MissingFields),
		len(a.Confidence.RiskFlags), len(a.Confidence.Suggestions))

	for i, f := range a.Confidence.RiskFlags {
		if i >= 3 {
			break
		}
		prompt += fmt.Sprintf("- Risk: %s (%s)\n", f.Title, f.Severity)
	}
	for i, s := range a.Confidence.Suggestions {
		if i >= 3 {
			break
		}
		prompt += fmt.Sprintf("- Next step: %s (%s)\n", s.Title, s.Priority)
	}

	prompt += "\nProvide a 3-4 sentence summary of how ready this claim is and what to do next."

	return prompt
}

func countRequired(missing []model.MissingField) int {
	count := 0
	for _, m := range missing {
		if m.Importance == model.ImportanceRequired {
			count++
		}
	}
	return count
}
