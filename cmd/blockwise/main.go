// Command blockwise exposes the block-wise dependency scheduler as a
// CLI: a "plan" subcommand that prints the dependency graph for a
// given geometry, and a "demo" subcommand that runs the reference
// executor against an in-memory volume.
package main

import "github.com/blockwise/scheduler/cmd/blockwise/cmd"

func main() {
	cmd.Execute()
}
