package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"scurry-locator/infrastructure/ffmpeg"
	"scurry-locator/infrastructure/ocr"
	"scurry-locator/infrastructure/ytdlp"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify external tools are installed",
	Long: `Check that the external binaries the pipeline depends on (yt-dlp,
ffmpeg, ffprobe, tesseract) are present and executable at their configured
paths.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// toolCheck pairs a tool name with its installation probe
type toolCheck struct {
	name   string
	verify func(context.Context) error
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	checks := []toolCheck{
		{"yt-dlp", ytdlp.NewFetcher(ytdlp.WithFetcherBinaryPath(cfg.Tools.YtdlpPath)).VerifyInstalled},
		{"ffmpeg", ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(cfg.Tools.FFmpegPath)).VerifyInstalled},
		{"ffprobe", ffmpeg.NewProber(ffmpeg.WithProberFFprobePath(cfg.Tools.FFprobePath)).VerifyInstalled},
		{"tesseract", ocr.NewTesseractRecognizer(ocr.WithTesseractPath(cfg.Tools.TesseractPath)).VerifyInstalled},
	}

	return RunChecks(cmd.Context(), checks, os.Stdout)
}

// RunChecks runs each verification with a short timeout and reports the
// results; it fails when any tool is missing
func RunChecks(ctx context.Context, checks []toolCheck, output io.Writer) error {
	failed := 0
	for _, check := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := check.verify(checkCtx)
		cancel()

		if err != nil {
			failed++
			fmt.Fprintf(output, "  %-10s MISSING (%v)\n", check.name, err)
			continue
		}
		fmt.Fprintf(output, "  %-10s ok\n", check.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d tool(s) missing", failed)
	}
	fmt.Fprintln(output, "All tools available.")
	return nil
}
