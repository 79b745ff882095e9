package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// EnhanceRequest represents the enhance-idea API request.
type EnhanceRequest struct {
	GameIdea string `json:"game_idea"`
	Genre    string `json:"genre,omitempty"`
}

// Enhancement represents a single enhancement category with suggestions.
type Enhancement struct {
	Category    string   `json:"category"`
	Suggestions []string `json:"suggestions"`
	Description string   `json:"description"`
}

// EnhanceResponse represents the enhance-idea API response.
type EnhanceResponse struct {
	GameIdea     string        `json:"game_idea"`
	Genre        string        `json:"genre"`
	Enhancements []Enhancement `json:"enhancements"`
}

// EnhanceCmd creates the enhance command.
func EnhanceCmd() *cobra.Command {
	var genre string

	cmd := &cobra.Command{
		Use:   "enhance <game idea>",
		Short: "Get AI enhancement suggestions for a game idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runEnhance(cmd, args[0], genre, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Game genre")

	return cmd
}

func runEnhance(cmd *cobra.Command, gameIdea, genre string, outputJSON bool) error {
	api, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := api.Post("/enhance-idea", EnhanceRequest{GameIdea: gameIdea, Genre: genre})
	if err != nil {
		return fmt.Errorf("enhance failed: %w", err)
	}

	var enhanceResp EnhanceResponse
	if err := json.Unmarshal(resp.Data, &enhanceResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(enhanceResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Suggestions for %q (%s):\n", enhanceResp.GameIdea, enhanceResp.Genre)
	for _, enhancement := range enhanceResp.Enhancements {
		fmt.Printf("\n%s - %s\n", enhancement.Category, enhancement.Description)
		for _, suggestion := range enhancement.Suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}
	return nil
}
