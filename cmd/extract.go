package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var extractURL string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the pipeline once for a single video link",
	Long: `Run the full pipeline for one link and print the locations as JSON.

Example:
  scurry-locator extract --url "https://www.tiktok.com/@guide/video/123"`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractURL, "url", "", "video link (required)")
	extractCmd.MarkFlagRequired("url")
}

// pipelineRunner abstracts the pipeline for testing
type pipelineRunner interface {
	Run(ctx context.Context, url string) ([]string, error)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	logger := NewLogger()

	service, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}

	return RunExtractWithPipeline(cmd.Context(), service, extractURL, os.Stdout)
}

// RunExtractWithPipeline runs the extract command with an injected pipeline
// (for testing)
func RunExtractWithPipeline(ctx context.Context, service pipelineRunner, url string, output io.Writer) error {
	locations, err := service.Run(ctx, url)
	if err != nil {
		return err
	}

	payload := struct {
		Locations []string `json:"locations"`
	}{Locations: locations}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, string(encoded))
	return nil
}
