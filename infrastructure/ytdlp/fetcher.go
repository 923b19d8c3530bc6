package ytdlp

import (
	"context"
	"fmt"
	"log/slog"

	"scurry-locator/domain/pipeline"
	"scurry-locator/infrastructure/execrunner"
)

// Fetcher implements pipeline.VideoFetcher using the yt-dlp downloader
type Fetcher struct {
	ytdlpPath string
	runner    execrunner.CommandRunner
	logger    *slog.Logger
}

// FetcherOption is a functional option for configuring Fetcher
type FetcherOption func(*Fetcher)

// WithFetcherBinaryPath sets a custom yt-dlp executable path
func WithFetcherBinaryPath(path string) FetcherOption {
	return func(f *Fetcher) {
		if path != "" {
			f.ytdlpPath = path
		}
	}
}

// WithFetcherCommandRunner sets a custom command runner (for testing)
func WithFetcherCommandRunner(runner execrunner.CommandRunner) FetcherOption {
	return func(f *Fetcher) {
		f.runner = runner
	}
}

// WithFetcherLogger sets the logger for downloader output
func WithFetcherLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher creates a new yt-dlp based video fetcher
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		ytdlpPath: "yt-dlp",
		runner:    &execrunner.ExecCommandRunner{},
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch implements pipeline.VideoFetcher. The video is downloaded into
// destPath as a generic mp4 container; destPath is returned unchanged for
// chaining. Download errors of any kind (bad link, network, geo-restriction,
// removed content) surface as a FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url, destPath string) (string, error) {
	args := []string{
		"-f", "mp4",
		"-o", destPath,
		url,
	}

	stderr, err := f.runner.Run(ctx, f.ytdlpPath, args...)
	if err != nil {
		f.logger.Error("video download failed",
			slog.String("url", url),
			slog.String("stderr", string(stderr)),
		)
		return "", &pipeline.FetchError{URL: url, Err: err}
	}

	return destPath, nil
}

// VerifyInstalled checks that yt-dlp is available
func (f *Fetcher) VerifyInstalled(ctx context.Context) error {
	if _, err := f.runner.Output(ctx, f.ytdlpPath, "--version"); err != nil {
		return fmt.Errorf("yt-dlp not found or not executable: %w", err)
	}
	return nil
}

// Ensure Fetcher implements pipeline.VideoFetcher
var _ pipeline.VideoFetcher = (*Fetcher)(nil)
