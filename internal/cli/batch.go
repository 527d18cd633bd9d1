package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimready/internal/assess"
	"github.com/ppiankov/claimready/internal/report"
	"github.com/ppiankov/claimready/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// noFooter, storeDir, llm flags are defined in assess.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Assess every claim document in a directory in parallel",
	Long: `Batch assesses multiple claim documents concurrently:
- Read every *.json claim snapshot in the input directory
- Assess claims in parallel with a configurable worker count
- Write one JSON report per claim into the output directory
- Narrative generation, when enabled, is rate limited across workers

Example:
  claimready batch ./claims
  claimready batch ./claims --concurrency 10 --output-dir ./reports
  claimready batch ./claims --llm --concurrency 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./claimready-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := claimFiles(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no claim documents (*.json) found in %s", dir)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Claimready Batch Assessment\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input dir:    %s (%d claims)\n", dir, len(paths))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := loadConfig()
	cfg.Concurrency.Workers = concurrency
	if storeDir != "" {
		cfg.Store.Dir = storeDir
	}

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		fmt.Fprintf(os.Stderr, "  LLM:          openai/%s\n\n", llmModel)
	}

	assessor, err := assess.New(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(assessor, cfg.Concurrency.Workers)
	results := processor.ProcessFiles(ctx, paths)

	succeeded, failed := 0, 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Error)
			continue
		}
		succeeded++

		out := filepath.Join(outputDir, res.Assessment.ClaimID+".json")
		if err := report.WriteJSON(out, *res.Assessment); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %d/100 (%s)\n",
			res.Assessment.ClaimID,
			res.Assessment.Confidence.ReadinessScore,
			res.Assessment.Eligibility.Verdict)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d assessed, %d failed\n", succeeded, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d assessments failed", failed, len(results))
	}
	return nil
}

// claimFiles lists the claim documents in the input directory.
func claimFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading claim directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
