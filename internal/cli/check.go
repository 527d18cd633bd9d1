package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimready/internal/eligibility"
	"github.com/ppiankov/claimready/internal/model"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <claim.json>",
	Short: "Quick eligibility gate for a claim",
	Long: `Check runs only the jurisdictional gate: monetary cap and category.
It is the fast yes/no used before the full interview begins.

Exit code is 0 when no hard blocker fires, 1 otherwise.

Example:
  claimready check claim.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading claim document: %w", err)
	}

	var claim model.ClaimForScoring
	if err := json.Unmarshal(data, &claim); err != nil {
		return fmt.Errorf("parsing claim document: %w", err)
	}

	cfg := loadConfig()
	result := eligibility.NewEvaluator(cfg.Eligibility).Check(claim)

	fmt.Printf("Verdict: %s\n", result.Verdict)
	for _, b := range result.Blockers {
		kind := "note"
		if b.Hard {
			kind = "blocker"
		}
		fmt.Printf("  [%s] %s\n", kind, b.Reason)
	}

	if result.HasHardBlocker() {
		return fmt.Errorf("claim is not eligible for small-claims court")
	}
	return nil
}
