package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockwise/scheduler/block"
	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/diagnostic"
	"github.com/blockwise/scheduler/executor"
	"github.com/blockwise/scheduler/fitpolicy"
	"github.com/blockwise/scheduler/planner"
	"github.com/blockwise/scheduler/roi"
)

// demoCmd represents the demo subcommand.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Plan and execute a sample graph against an in-memory volume",
	Long: `demo builds a small 1-D geometry with a read halo, plans its
dependency graph, and runs the reference executor against an
in-memory []int volume: each block's process step sums the values
visible in its read region and writes that sum at its write region's
origin.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	total, err := roi.New(coord.New(0), coord.New(100))
	if err != nil {
		return err
	}
	read, err := roi.New(coord.New(0), coord.New(30))
	if err != nil {
		return err
	}
	write, err := roi.New(coord.New(10), coord.New(10))
	if err != nil {
		return err
	}

	graph, err := planner.Plan(total, read, write, true, fitpolicy.Valid, planner.WithSink(diagnostic.NewLoggingSink(logger)))
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	volume := make([]int, total.Shape().At(0))
	for i := range volume {
		volume[i] = i + 1
	}

	process := func(_ context.Context, b block.Block) error {
		begin := b.ReadROI().Begin().At(0)
		end := b.ReadROI().End().At(0)
		sum := 0
		for i := begin; i < end; i++ {
			sum += volume[i]
		}
		volume[b.WriteROI().Begin().At(0)] = sum
		return nil
	}

	result, err := executor.Run(context.Background(), graph, process)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	for _, br := range result.Blocks {
		fmt.Printf("%s write=%s outcome=%s\n", br.Block.ID(), br.Block.WriteROI(), br.Outcome)
	}
	fmt.Println("ok:", result.Ok)
	return nil
}
