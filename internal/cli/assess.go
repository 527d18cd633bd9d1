package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimready/internal/assess"
	"github.com/ppiankov/claimready/internal/report"
	"github.com/ppiankov/claimready/internal/score"
)

var (
	outJSON       string
	outMD         string
	storeDir      string
	assessTimeout time.Duration
	noCache       bool
	noFooter      bool
	llmEnabled    bool
	llmModel      string
)

// assessCmd represents the assess command
var assessCmd = &cobra.Command{
	Use:   "assess <claim.json>",
	Short: "Assess a claim's filing readiness",
	Long: `Assess runs the full readiness battery over a claim snapshot:
- Eligibility gate (monetary cap, category jurisdiction)
- Confidence score with a transparent six-category breakdown
- Evidentiary coverage from the case graph, when one exists
- Legal-process rule checks with recommended next actions

Example:
  claimready assess claim.json
  claimready assess claim.json --json report.json --md report.md
  claimready assess claim.json --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)

	// Output flags
	assessCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	assessCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	assessCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Store flags
	assessCmd.Flags().StringVar(&storeDir, "store-dir", "", "directory of case-graph documents (default from config)")
	assessCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the graph memory cache")

	assessCmd.Flags().DurationVar(&assessTimeout, "timeout", 2*time.Minute, "overall assessment timeout")

	// LLM flags
	assessCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable narrative summary generation")
	assessCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAssess(cmd *cobra.Command, args []string) error {
	claimPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), assessTimeout)
	defer cancel()

	cfg := loadConfig()
	if storeDir != "" {
		cfg.Store.Dir = storeDir
	}
	cfg.Store.CacheEnabled = !noCache
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	assessor, err := assess.New(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Assessing: %s\n", claimPath)
		fmt.Fprintf(os.Stderr, "Graph store: %s\n\n", cfg.Store.Dir)
	}

	assessment, err := assessor.AssessFile(ctx, claimPath)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Readiness score: %d/100 (%s)\n",
			assessment.Confidence.ReadinessScore, assessment.Confidence.Strength)
		fmt.Fprintf(os.Stderr, "✓ Eligibility: %s\n", assessment.Eligibility.Verdict)
		fmt.Fprintf(os.Stderr, "✓ Missing fields: %d, risks: %d, suggestions: %d\n",
			len(assessment.Confidence.MissingFields),
			len(assessment.Confidence.RiskFlags),
			len(assessment.Confidence.Suggestions))
		if assessment.GraphScore != nil {
			fmt.Fprintf(os.Stderr, "✓ Evidentiary coverage: %d/100\n", assessment.GraphScore.Score)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := report.WriteJSON(outJSON, assessment); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written: %s\n", outJSON)

	if outMD != "" {
		label := assessor.Engine().ReadinessLabel(assessment.Confidence.ReadinessScore)
		if err := report.WriteMarkdown(outMD, assessment, label, cfg.Output.IncludeFooter); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report written: %s\n", outMD)
	}

	fmt.Printf("%d/100 %s (%s)\n",
		assessment.Confidence.ReadinessScore,
		score.StrengthLabel(assessment.Confidence.Strength),
		assessment.Eligibility.Verdict)

	return nil
}
