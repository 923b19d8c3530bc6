package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"

	"scurry-locator/domain/pipeline"
	"scurry-locator/infrastructure/execrunner"
)

// Extractor implements pipeline.AudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     execrunner.CommandRunner
	logger     *slog.Logger
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithExtractorFFmpegPath sets a custom ffmpeg executable path
func WithExtractorFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		if path != "" {
			e.ffmpegPath = path
		}
	}
}

// WithExtractorCommandRunner sets a custom command runner (for testing)
func WithExtractorCommandRunner(runner execrunner.CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// WithExtractorLogger sets the logger used for captured tool output
func WithExtractorLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &execrunner.ExecCommandRunner{},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements pipeline.AudioExtractor. The best-quality audio stream
// is written to audioPath, overwriting any existing file. On failure the
// transcoder's stderr is logged but kept out of the returned error.
func (e *Extractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	args := []string{
		"-i", videoPath,
		"-q:a", "0", // Best available audio quality
		"-map", "a", // Audio streams only
		"-y", // Overwrite output file if it exists
		audioPath,
	}

	stderr, err := e.runner.Run(ctx, e.ffmpegPath, args...)
	if err != nil {
		e.logger.Error("ffmpeg audio extraction failed",
			slog.String("video", videoPath),
			slog.String("stderr", string(stderr)),
		)
		return &pipeline.TranscodeError{VideoPath: videoPath, Err: err}
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	if _, err := e.runner.Output(ctx, e.ffmpegPath, "-version"); err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Ensure Extractor implements pipeline.AudioExtractor
var _ pipeline.AudioExtractor = (*Extractor)(nil)
