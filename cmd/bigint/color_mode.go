package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bigint/internal/config"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func shouldColor(mode colorMode, f *os.File) bool {
	switch mode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	default:
		return isTerminal(f)
	}
}

// resolveColorMode combines the --color flag with the config file default:
// an explicitly set flag wins, otherwise the nearest bigint.toml decides.
func resolveColorMode(cmd *cobra.Command) (colorMode, error) {
	flags := cmd.Root().PersistentFlags()
	value, err := flags.GetString("color")
	if err != nil {
		return "", fmt.Errorf("failed to get color flag: %w", err)
	}
	return resolveColorValue(value, flags.Changed("color"), ".")
}

func resolveColorValue(flagValue string, flagSet bool, startDir string) (colorMode, error) {
	if flagSet {
		return readColorMode(flagValue)
	}
	cfg, path, err := config.Load(startDir)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", path, err)
	}
	return readColorMode(cfg.Output.Color)
}
