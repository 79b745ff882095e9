package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/cli"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/cli/client"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "unigen",
		Short: "AI Unity Game Generator CLI",
		Long: `Unity game generator CLI for searching knowledge, enhancing game ideas,
and generating Unity project skeletons.

Environment variables:
  UNIGEN_API_URL   API base URL (default: http://localhost:8080)`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env)")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.SearchCmd())
	rootCmd.AddCommand(client.AddCmd())
	rootCmd.AddCommand(client.AugmentCmd())
	rootCmd.AddCommand(client.StatsCmd())
	rootCmd.AddCommand(client.EnhanceCmd())
	rootCmd.AddCommand(client.GenerateCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
