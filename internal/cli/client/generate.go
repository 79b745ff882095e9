package client

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// GenerateRequest represents the generate-project API request.
type GenerateRequest struct {
	GameIdea             string              `json:"game_idea"`
	Genre                string              `json:"genre"`
	SelectedEnhancements map[string][]string `json:"selected_enhancements,omitempty"`
}

// GenerateResponse represents the generate-project API response.
type GenerateResponse struct {
	ProjectName string   `json:"project_name"`
	DownloadURL string   `json:"download_url"`
	FileCount   int      `json:"file_count"`
	MainScripts []string `json:"main_scripts"`
}

// GenerateCmd creates the generate command.
func GenerateCmd() *cobra.Command {
	var (
		genre     string
		mechanics []string
		levels    []string
		outputDir string
		noFetch   bool
	)

	cmd := &cobra.Command{
		Use:   "generate <game idea>",
		Short: "Generate a Unity project from a game idea",
		Long:  "Generates a Unity project skeleton for the given game idea and downloads the archive.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			enhancements := map[string][]string{}
			if len(mechanics) > 0 {
				enhancements["mechanics"] = mechanics
			}
			if len(levels) > 0 {
				enhancements["levels"] = levels
			}
			return runGenerate(cmd, args[0], genre, enhancements, outputDir, noFetch, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Game genre")
	cmd.Flags().StringSliceVarP(&mechanics, "mechanic", "m", nil, "Selected mechanics enhancement (repeatable)")
	cmd.Flags().StringSliceVarP(&levels, "level", "l", nil, "Selected levels enhancement (repeatable)")
	cmd.Flags().StringVarP(&outputDir, "dir", "d", ".", "Directory to save the downloaded archive")
	cmd.Flags().BoolVar(&noFetch, "no-download", false, "Print the download URL instead of fetching the archive")

	return cmd
}

func runGenerate(cmd *cobra.Command, gameIdea, genre string, enhancements map[string][]string, outputDir string, noFetch, outputJSON bool) error {
	api, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := api.Post("/generate-project", GenerateRequest{
		GameIdea:             gameIdea,
		Genre:                genre,
		SelectedEnhancements: enhancements,
	})
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(resp.Data, &genResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(genResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Generated project %q with %d files\n", genResp.ProjectName, genResp.FileCount)
	for _, script := range genResp.MainScripts {
		fmt.Printf("  - %s\n", script)
	}

	if noFetch {
		fmt.Printf("Download URL: %s\n", genResp.DownloadURL)
		return nil
	}

	outputPath := filepath.Join(outputDir, filepath.Base(genResp.DownloadURL))
	if err := api.DownloadFile(genResp.DownloadURL, outputPath); err != nil {
		return fmt.Errorf("failed to download archive: %w", err)
	}
	fmt.Printf("Saved archive to %s\n", outputPath)
	return nil
}
