package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigint/internal/calc"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "Evaluate an arithmetic expression",
	Long: `Eval computes an expression over arbitrary-precision integers.
Supported: decimal literals, + - *, unary minus, parentheses, and one
comparison (== != < <= > >=) per expression.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type evalPayload struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Kind       string `json:"kind"`
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	value, err := calc.Eval(expr)
	if err != nil {
		return fmt.Errorf("eval failed: %w", err)
	}

	switch format {
	case "pretty":
		mode, err := resolveColorMode(cmd)
		if err != nil {
			return err
		}
		if shouldColor(mode, os.Stdout) {
			resultColor := color.New(color.FgGreen, color.Bold)
			if value.Kind() == "bool" {
				resultColor = color.New(color.FgCyan, color.Bold)
			}
			resultColor.Fprintln(os.Stdout, value.String())
			return nil
		}
		fmt.Println(value.String())
		return nil
	case "json":
		payload := evalPayload{
			Expression: expr,
			Result:     value.String(),
			Kind:       value.Kind(),
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
