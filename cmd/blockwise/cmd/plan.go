package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockwise/scheduler/fitpolicy"
	"github.com/blockwise/scheduler/planner"
)

var (
	planTotal       string
	planRead        string
	planWrite       string
	planFit         string
	planConflict    bool
)

// planCmd represents the plan subcommand.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute and print the dependency graph for a region geometry",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planTotal, "total", "", "total region, as \"offset:shape\" (required)")
	planCmd.Flags().StringVar(&planRead, "read", "", "per-block read region, as \"offset:shape\" (required)")
	planCmd.Flags().StringVar(&planWrite, "write", "", "per-block write region, as \"offset:shape\" (required)")
	planCmd.Flags().StringVar(&planFit, "fit", "valid", "fit policy: valid, overhang, or shrink")
	planCmd.Flags().BoolVar(&planConflict, "conflict", false, "compute read/write conflict dependencies across levels")

	planCmd.MarkFlagRequired("total")
	planCmd.MarkFlagRequired("read")
	planCmd.MarkFlagRequired("write")
}

// blockView is the JSON projection of one planner.Entry.
type blockView struct {
	ID       string   `json:"id"`
	ReadROI  string   `json:"read_roi"`
	WriteROI string   `json:"write_roi"`
	Upstream []string `json:"upstream"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	total, err := parseRoi(planTotal)
	if err != nil {
		return err
	}
	read, err := parseRoi(planRead)
	if err != nil {
		return err
	}
	write, err := parseRoi(planWrite)
	if err != nil {
		return err
	}
	fit, err := fitpolicy.Parse(planFit)
	if err != nil {
		return fmt.Errorf("invalid --fit %q: %w", planFit, err)
	}

	graph, err := planner.Plan(total, read, write, planConflict, fit)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	views := make([]blockView, len(graph))
	for i, e := range graph {
		upstream := make([]string, len(e.Upstream))
		for j, up := range e.Upstream {
			upstream[j] = up.ID().String()
		}
		views[i] = blockView{
			ID:       e.Block.ID().String(),
			ReadROI:  e.Block.ReadROI().String(),
			WriteROI: e.Block.WriteROI().String(),
			Upstream: upstream,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}
