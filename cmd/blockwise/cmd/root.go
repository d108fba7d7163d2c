package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blockwise/scheduler/diagnostic"
)

var (
	// Global flags
	verbose bool
	logger  diagnostic.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "blockwise",
	Short: "A block-wise dependency scheduler for chunked region processing",
	Long: `blockwise decomposes an N-dimensional region into independent,
dependency-ordered blocks for stencil-style concurrent processing.

It supports planning (printing the dependency graph for a given
geometry) and a reference executor for smoke-testing that graph
against an in-memory volume.`,
	Example: `  # Plan a 2-D tiling with a 10-wide halo and print the graph
  blockwise plan --total 0,0:200,200 --read 0,0:40,40 --write 10,10:20,20 --fit shrink --conflict

  # Run the bundled demo against an in-memory volume
  blockwise demo`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := diagnostic.LevelInfo
		if verbose {
			level = diagnostic.LevelDebug
		}
		logger = diagnostic.NewDefaultLogger(level, os.Stderr)
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level diagnostic output")
}
