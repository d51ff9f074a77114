package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "bigint",
	Short: "Arbitrary-precision integer calculator",
	Long:  `bigint evaluates exact integer arithmetic of any magnitude: no overflow, no precision loss`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(cmpCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
