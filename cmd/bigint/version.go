package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bigint/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show bigint build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().Bool("full", false, "include commit hash and build date")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return fmt.Errorf("failed to get full flag: %w", err)
	}

	switch format {
	case "pretty":
		fmt.Printf("bigint %s\n", version.Version)
		if full {
			if version.GitCommit != "" {
				fmt.Printf("commit: %s\n", version.GitCommit)
			}
			if version.BuildDate != "" {
				fmt.Printf("built:  %s\n", version.BuildDate)
			}
		}
		return nil
	case "json":
		payload := versionPayload{Tool: "bigint", Version: version.Version}
		if full {
			payload.GitCommit = version.GitCommit
			payload.BuildDate = version.BuildDate
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode version: %w", err)
		}
		fmt.Println(string(out))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
