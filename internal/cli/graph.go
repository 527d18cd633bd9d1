package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimready/internal/assess"
	"github.com/ppiankov/claimready/internal/graph"
	"github.com/ppiankov/claimready/internal/model"
)

var (
	demandAmount     float64
	eventDate        string
	evidenceFileType string
	evidenceURI      string
	edgeUndermines   bool
)

// graphCmd groups the case-graph editing commands. Every edit loads the
// graph, applies one mutation and saves explicitly, mirroring the app's
// edit-then-persist flow.
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect and edit a claim's case graph",
	Long: `Edit the structured fact graph of a claim: events, demands, evidence
and the typed links between them.

Example:
  claimready graph show claim.json
  claimready graph add-demand claim.json "Refund of 4,200 NIS" --amount 4200
  claimready graph add-event claim.json "Delivery arrived broken" --date 2025-11-02
  claimready graph add-evidence claim.json "Photo of the damage" --file-type image
  claimready graph link claim.json <evidence-id> <event-id>
  claimready graph unlink claim.json <edge-id>`,
}

var graphShowCmd = &cobra.Command{
	Use:   "show <claim.json>",
	Short: "Print the case graph with coverage gaps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, g, _, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Graph for claim %s: %d nodes, %d edges\n\n", g.ClaimID, len(g.Nodes), len(g.Edges))
		for _, n := range g.Nodes {
			fmt.Printf("  [%s] %s  %s\n", n.Kind, n.ID, nodeLabel(n))
		}
		if len(g.Edges) > 0 {
			fmt.Println()
			for _, e := range g.Edges {
				fmt.Printf("  %s: %s -%s-> %s\n", e.ID, e.Source, e.Kind, e.Target)
			}
		}

		if uncovered := graph.UncoveredEvents(g); len(uncovered) > 0 {
			fmt.Printf("\nEvents without supporting evidence:\n")
			for _, n := range uncovered {
				fmt.Printf("  %s  %s\n", n.ID, nodeLabel(n))
			}
		}
		if unlinked := graph.UnlinkedEvidence(g); len(unlinked) > 0 {
			fmt.Printf("\nEvidence not linked to any fact:\n")
			for _, n := range unlinked {
				fmt.Printf("  %s  %s\n", n.ID, nodeLabel(n))
			}
		}
		return nil
	},
}

var graphAddDemandCmd = &cobra.Command{
	Use:   "add-demand <claim.json> <description>",
	Short: "Add a demand node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editGraph(args[0], func(g model.CaseGraph) model.CaseGraph {
			var amount *float64
			if demandAmount > 0 {
				amount = &demandAmount
			}
			return graph.AddDemand(g, args[1], amount)
		})
	},
}

var graphAddEventCmd = &cobra.Command{
	Use:   "add-event <claim.json> <description>",
	Short: "Add an event node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editGraph(args[0], func(g model.CaseGraph) model.CaseGraph {
			return graph.AddEvent(g, eventDate, args[1])
		})
	},
}

var graphAddEvidenceCmd = &cobra.Command{
	Use:   "add-evidence <claim.json> <description>",
	Short: "Add an evidence node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editGraph(args[0], func(g model.CaseGraph) model.CaseGraph {
			return graph.AddEvidence(g, args[1], model.FileType(evidenceFileType), evidenceURI)
		})
	},
}

var graphLinkCmd = &cobra.Command{
	Use:   "link <claim.json> <evidence-id> <target-id>",
	Short: "Link evidence to an event or demand",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := model.EdgeSupports
		if edgeUndermines {
			kind = model.EdgeUndermines
		}
		return editGraph(args[0], func(g model.CaseGraph) model.CaseGraph {
			return graph.AddEdge(g, model.GraphEdge{
				ID:     graph.NewID(),
				Source: args[1],
				Target: args[2],
				Kind:   kind,
			})
		})
	},
}

var graphUnlinkCmd = &cobra.Command{
	Use:   "unlink <claim.json> <edge-id>",
	Short: "Remove a link by edge id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editGraph(args[0], func(g model.CaseGraph) model.CaseGraph {
			return graph.RemoveEdge(g, args[1])
		})
	},
}

var graphRemoveNodeCmd = &cobra.Command{
	Use:   "remove-node <claim.json> <node-id>",
	Short: "Remove a node and every edge touching it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editGraph(args[0], func(g model.CaseGraph) model.CaseGraph {
			return graph.RemoveNode(g, args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "directory of case-graph documents (default from config)")

	graphAddDemandCmd.Flags().Float64Var(&demandAmount, "amount", 0, "demanded amount in NIS")
	graphAddEventCmd.Flags().StringVar(&eventDate, "date", "", "event date (YYYY-MM-DD)")
	graphAddEvidenceCmd.Flags().StringVar(&evidenceFileType, "file-type", "", "artifact type (image, pdf, document)")
	graphAddEvidenceCmd.Flags().StringVar(&evidenceURI, "uri", "", "artifact location")
	graphLinkCmd.Flags().BoolVar(&edgeUndermines, "undermines", false, "mark the link as undermining instead of supporting")

	graphCmd.AddCommand(graphShowCmd)
	graphCmd.AddCommand(graphAddDemandCmd)
	graphCmd.AddCommand(graphAddEventCmd)
	graphCmd.AddCommand(graphAddEvidenceCmd)
	graphCmd.AddCommand(graphLinkCmd)
	graphCmd.AddCommand(graphUnlinkCmd)
	graphCmd.AddCommand(graphRemoveNodeCmd)
}

// loadGraph reads the claim document and materializes its graph.
func loadGraph(claimPath string) (model.ClaimForScoring, model.CaseGraph, *assess.Assessor, error) {
	var claim model.ClaimForScoring

	data, err := os.ReadFile(claimPath)
	if err != nil {
		return claim, model.CaseGraph{}, nil, fmt.Errorf("reading claim document: %w", err)
	}
	if err := json.Unmarshal(data, &claim); err != nil {
		return claim, model.CaseGraph{}, nil, fmt.Errorf("parsing claim document: %w", err)
	}
	if claim.ID == "" {
		return claim, model.CaseGraph{}, nil, fmt.Errorf("claim document has no id")
	}

	cfg := loadConfig()
	if storeDir != "" {
		cfg.Store.Dir = storeDir
	}

	assessor, err := assess.New(cfg)
	if err != nil {
		return claim, model.CaseGraph{}, nil, err
	}

	g, err := assessor.Adapter().GetOrCreate(context.Background(), claim)
	if err != nil {
		return claim, model.CaseGraph{}, nil, err
	}
	return claim, g, assessor, nil
}

// editGraph applies one mutation and saves the result.
func editGraph(claimPath string, mutate func(model.CaseGraph) model.CaseGraph) error {
	_, g, assessor, err := loadGraph(claimPath)
	if err != nil {
		return err
	}

	updated := mutate(g)
	if err := assessor.Adapter().Save(context.Background(), updated); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Graph saved: %d nodes, %d edges\n", len(updated.Nodes), len(updated.Edges))
	return nil
}

// nodeLabel renders a short description of the node's payload.
func nodeLabel(n model.Node) string {
	switch n.Kind {
	case model.NodeEvent:
		if n.Event == nil {
			return ""
		}
		if n.Event.Date != "" {
			return n.Event.Date + " " + n.Event.Description
		}
		return n.Event.Description
	case model.NodeDemand:
		if n.Demand == nil {
			return ""
		}
		if n.Demand.AmountNIS != nil {
			return fmt.Sprintf("%s (%.0f NIS)", n.Demand.Description, *n.Demand.AmountNIS)
		}
		return n.Demand.Description
	case model.NodeEvidence:
		if n.Evidence == nil {
			return ""
		}
		return n.Evidence.Description
	}
	return ""
}
