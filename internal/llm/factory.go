package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/claimready/internal/model"
)

// NewProvider creates a narrative provider based on configuration. An empty
// provider name returns nil (narrative disabled), not an error.
func NewProvider(config model.LLMConfig) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}
