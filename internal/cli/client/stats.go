package client

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// StatsResponse represents the stats API response.
type StatsResponse struct {
	TotalItems    int            `json:"total_items"`
	DocumentCount int            `json:"document_count"`
	PerCategory   map[string]int `json:"per_category"`
}

// StatsCmd creates the stats command.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show knowledge base statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runClientStats(cmd, outputJSON)
		},
	}
}

func runClientStats(cmd *cobra.Command, outputJSON bool) error {
	api, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := api.Get("/rag/stats")
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	var statsResp StatsResponse
	if err := json.Unmarshal(resp.Data, &statsResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(statsResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Total items:  %d\n", statsResp.TotalItems)
	fmt.Printf("Indexed docs: %d\n", statsResp.DocumentCount)

	categories := make([]string, 0, len(statsResp.PerCategory))
	for category := range statsResp.PerCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Printf("  %s: %d items\n", category, statsResp.PerCategory[category])
	}
	return nil
}
