package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/cli"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/cli/admin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "unigend",
		Short: "AI Unity Game Generator daemon",
		Long:  "Daemon for running the Unity game generator API server and managing the knowledge base",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.SeedCmd())
	rootCmd.AddCommand(admin.StatsCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
