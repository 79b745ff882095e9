package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// AddKnowledgeRequest represents the add-knowledge API request.
type AddKnowledgeRequest struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Items       []string `json:"items"`
}

// AddKnowledgeResponse represents the add-knowledge API response.
type AddKnowledgeResponse struct {
	Added int `json:"added"`
	Stats struct {
		TotalItems    int            `json:"total_items"`
		DocumentCount int            `json:"document_count"`
		PerCategory   map[string]int `json:"per_category"`
	} `json:"stats"`
}

// AddCmd creates the add command.
func AddCmd() *cobra.Command {
	var (
		category    string
		subcategory string
	)

	cmd := &cobra.Command{
		Use:   "add <item> [item...]",
		Short: "Add knowledge items",
		Long:  "Adds one or more knowledge snippets under a category and subcategory.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runAdd(cmd, category, subcategory, args, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name (required)")
	cmd.Flags().StringVarP(&subcategory, "subcategory", "s", "", "Subcategory name (required)")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("subcategory")

	return cmd
}

func runAdd(cmd *cobra.Command, category, subcategory string, items []string, outputJSON bool) error {
	api, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := api.Post("/rag/add-knowledge", AddKnowledgeRequest{
		Category:    category,
		Subcategory: subcategory,
		Items:       items,
	})
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	var addResp AddKnowledgeResponse
	if err := json.Unmarshal(resp.Data, &addResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(addResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Added %d items to %s/%s (knowledge base now has %d items)\n",
		addResp.Added, category, subcategory, addResp.Stats.TotalItems)
	return nil
}
