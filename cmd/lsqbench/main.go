// Command lsqbench exercises the algolsq CGNR solver. The bench
// subcommand times solves on generated test matrices; the solve
// subcommand runs one solve on matrices read from plain-text files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "lsqbench",
	Short:         "Benchmark and run the algolsq least-squares solver",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(benchCmd, solveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lsqbench:", err)
		os.Exit(1)
	}
}
