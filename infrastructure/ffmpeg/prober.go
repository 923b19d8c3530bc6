package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"scurry-locator/domain/pipeline"
	"scurry-locator/infrastructure/execrunner"
)

// Prober implements pipeline.DurationProber using ffprobe. Probing is best
// effort: every failure mode degrades to an unknown duration so the pipeline
// can fall back to the default frame stride.
type Prober struct {
	ffprobePath string
	runner      execrunner.CommandRunner
	logger      *slog.Logger
}

// ProberOption is a functional option for configuring Prober
type ProberOption func(*Prober)

// WithProberFFprobePath sets a custom ffprobe executable path
func WithProberFFprobePath(path string) ProberOption {
	return func(p *Prober) {
		if path != "" {
			p.ffprobePath = path
		}
	}
}

// WithProberCommandRunner sets a custom command runner (for testing)
func WithProberCommandRunner(runner execrunner.CommandRunner) ProberOption {
	return func(p *Prober) {
		p.runner = runner
	}
}

// WithProberLogger sets the logger for probe failures
func WithProberLogger(logger *slog.Logger) ProberOption {
	return func(p *Prober) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProber creates a new ffprobe-based duration prober
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		ffprobePath: "ffprobe",
		runner:      &execrunner.ExecCommandRunner{},
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Probe implements pipeline.DurationProber
func (p *Prober) Probe(ctx context.Context, videoPath string) (float64, bool) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	}

	out, err := p.runner.Output(ctx, p.ffprobePath, args...)
	if err != nil {
		p.logger.Warn("duration probe failed",
			slog.String("video", videoPath),
			slog.String("error", err.Error()),
		)
		return 0, false
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil || seconds < 0 {
		p.logger.Warn("duration probe returned malformed output",
			slog.String("video", videoPath),
			slog.String("output", strings.TrimSpace(string(out))),
		)
		return 0, false
	}

	return seconds, true
}

// VerifyInstalled checks that ffprobe is available
func (p *Prober) VerifyInstalled(ctx context.Context) error {
	if _, err := p.runner.Output(ctx, p.ffprobePath, "-version"); err != nil {
		return fmt.Errorf("ffprobe not found or not executable: %w", err)
	}
	return nil
}

// Ensure Prober implements pipeline.DurationProber
var _ pipeline.DurationProber = (*Prober)(nil)
