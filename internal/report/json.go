// Package report renders an assessment to the output artifacts the CLI
// writes next to the claim: a JSON document and an optional Markdown
// summary.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ppiankov/claimready/internal/model"
)

// WriteJSON writes the assessment as pretty-printed JSON.
func WriteJSON(path string, a model.Assessment) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
