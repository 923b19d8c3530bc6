package whisper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"scurry-locator/domain/pipeline"
	"scurry-locator/infrastructure/execrunner"
	"scurry-locator/infrastructure/filesystem"
)

// Transcriber implements pipeline.Transcriber using the whisper.cpp CLI in
// full-file (non-streaming) mode. The model file is resolved once at
// construction so a missing model is a startup misconfiguration rather than
// a per-request failure.
type Transcriber struct {
	binaryPath string
	modelPath  string
	language   string
	runner     execrunner.CommandRunner
	checker    pipeline.FileChecker
	logger     *slog.Logger
}

// TranscriberOption is a functional option for configuring Transcriber
type TranscriberOption func(*Transcriber)

// WithTranscriberBinaryPath sets a custom whisper executable path
func WithTranscriberBinaryPath(path string) TranscriberOption {
	return func(t *Transcriber) {
		if path != "" {
			t.binaryPath = path
		}
	}
}

// WithTranscriberLanguage sets the recognition language (default auto-detect)
func WithTranscriberLanguage(lang string) TranscriberOption {
	return func(t *Transcriber) {
		t.language = lang
	}
}

// WithTranscriberCommandRunner sets a custom command runner (for testing)
func WithTranscriberCommandRunner(runner execrunner.CommandRunner) TranscriberOption {
	return func(t *Transcriber) {
		t.runner = runner
	}
}

// WithTranscriberFileChecker sets a custom file checker (for testing)
func WithTranscriberFileChecker(checker pipeline.FileChecker) TranscriberOption {
	return func(t *Transcriber) {
		if checker != nil {
			t.checker = checker
		}
	}
}

// WithTranscriberLogger sets the logger
func WithTranscriberLogger(logger *slog.Logger) TranscriberOption {
	return func(t *Transcriber) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranscriber creates a whisper.cpp based transcriber. It fails when the
// model file does not exist.
func NewTranscriber(modelPath string, opts ...TranscriberOption) (*Transcriber, error) {
	if modelPath == "" {
		return nil, fmt.Errorf("whisper model path is required")
	}

	t := &Transcriber{
		binaryPath: "whisper-cli",
		modelPath:  modelPath,
		runner:     &execrunner.ExecCommandRunner{},
		checker:    filesystem.NewChecker(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if !t.checker.Exists(t.modelPath) {
		return nil, fmt.Errorf("whisper model not found at %s", t.modelPath)
	}

	return t, nil
}

// Transcribe implements pipeline.Transcriber. The whole audio file is
// processed in one pass and the recognized text returned; an empty result is
// valid for speech-free audio.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := []string{
		"-m", t.modelPath,
		"-f", audioPath,
		"--no-timestamps",
	}
	if t.language != "" {
		args = append(args, "-l", t.language)
	}

	out, err := t.runner.Output(ctx, t.binaryPath, args...)
	if err != nil {
		t.logger.Error("transcription failed",
			slog.String("audio", audioPath),
			slog.String("error", err.Error()),
		)
		return "", &pipeline.TranscriptionError{AudioPath: audioPath, Err: err}
	}

	return strings.TrimSpace(string(out)), nil
}

// VerifyInstalled checks that the whisper binary is available
func (t *Transcriber) VerifyInstalled(ctx context.Context) error {
	if _, err := t.runner.Output(ctx, t.binaryPath, "--help"); err != nil {
		return fmt.Errorf("whisper not found or not executable: %w", err)
	}
	return nil
}

// Ensure Transcriber implements pipeline.Transcriber
var _ pipeline.Transcriber = (*Transcriber)(nil)
