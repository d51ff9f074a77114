package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bigint/internal/calc"
	"bigint/internal/config"
	"bigint/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Start an interactive calculator session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().String("ui", "auto", "interactive UI (auto|on|off)")
}

func evalLine(line string) (string, error) {
	v, err := calc.Eval(line)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func runRepl(cmd *cobra.Command, _ []string) error {
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cfg, path, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	if shouldUseTUI(mode) {
		p := tea.NewProgram(ui.NewReplModel(cfg.REPL.Prompt, evalLine))
		_, err := p.Run()
		return err
	}
	return plainRepl(cmd, cfg.REPL.Prompt)
}

// plainRepl reads expressions line by line, for pipes and dumb terminals.
func plainRepl(cmd *cobra.Command, prompt string) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if !quiet {
			fmt.Print(prompt)
		}
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		out, err := evalLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
	return in.Err()
}
