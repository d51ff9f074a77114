package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigint/bignum"
)

var cmpCmd = &cobra.Command{
	Use:   "cmp [flags] a b",
	Short: "Compare two integers",
	Long:  `Cmp orders two decimal integers and prints -1, 0 or 1`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCmp,
}

func init() {
	cmpCmd.Flags().Bool("symbols", false, "print <, = or > instead of -1, 0, 1")
}

func runCmp(cmd *cobra.Command, args []string) error {
	a, err := bignum.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid first operand %q: %w", args[0], err)
	}
	b, err := bignum.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid second operand %q: %w", args[1], err)
	}

	symbols, err := cmd.Flags().GetBool("symbols")
	if err != nil {
		return fmt.Errorf("failed to get symbols flag: %w", err)
	}

	c := a.Cmp(b)
	if symbols {
		fmt.Println(cmpSymbol(c))
		return nil
	}
	fmt.Println(c)
	return nil
}

func cmpSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}
