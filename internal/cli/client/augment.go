package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// AugmentRequest represents the augment API request.
type AugmentRequest struct {
	Prompt       string `json:"prompt"`
	Subject      string `json:"subject"`
	CategoryHint string `json:"category_hint"`
}

// AugmentResponse represents the augment API response.
type AugmentResponse struct {
	AugmentedPrompt string `json:"augmented_prompt"`
}

// AugmentCmd creates the augment command.
func AugmentCmd() *cobra.Command {
	var (
		subject      string
		categoryHint string
	)

	cmd := &cobra.Command{
		Use:   "augment <prompt>",
		Short: "Augment a prompt with relevant knowledge",
		Long:  "Enriches a prompt with retrieved game design and Unity knowledge.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runAugment(cmd, args[0], subject, categoryHint, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject the prompt is about (e.g. the game idea)")
	cmd.Flags().StringVarP(&categoryHint, "genre", "g", "", "Genre hint used to derive extra queries")

	return cmd
}

func runAugment(cmd *cobra.Command, prompt, subject, categoryHint string, outputJSON bool) error {
	api, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := api.Post("/rag/augment", AugmentRequest{
		Prompt:       prompt,
		Subject:      subject,
		CategoryHint: categoryHint,
	})
	if err != nil {
		return fmt.Errorf("augment failed: %w", err)
	}

	var augmentResp AugmentResponse
	if err := json.Unmarshal(resp.Data, &augmentResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(augmentResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(augmentResp.AugmentedPrompt)
	return nil
}
