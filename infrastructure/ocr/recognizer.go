package ocr

import (
	"context"
	"fmt"

	"scurry-locator/infrastructure/execrunner"
)

// Recognizer extracts text from a single frame image on disk
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// TesseractRecognizer implements Recognizer by invoking the tesseract binary
// at a fixed host path
type TesseractRecognizer struct {
	tesseractPath string
	runner        execrunner.CommandRunner
}

// TesseractOption is a functional option for configuring TesseractRecognizer
type TesseractOption func(*TesseractRecognizer)

// WithTesseractPath sets a custom tesseract executable path
func WithTesseractPath(path string) TesseractOption {
	return func(r *TesseractRecognizer) {
		if path != "" {
			r.tesseractPath = path
		}
	}
}

// WithTesseractCommandRunner sets a custom command runner (for testing)
func WithTesseractCommandRunner(runner execrunner.CommandRunner) TesseractOption {
	return func(r *TesseractRecognizer) {
		r.runner = runner
	}
}

// NewTesseractRecognizer creates a recognizer backed by the tesseract binary
func NewTesseractRecognizer(opts ...TesseractOption) *TesseractRecognizer {
	r := &TesseractRecognizer{
		tesseractPath: "/usr/bin/tesseract",
		runner:        &execrunner.ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Recognize runs tesseract on the image and returns the raw recognized text
func (r *TesseractRecognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	out, err := r.runner.Output(ctx, r.tesseractPath, imagePath, "stdout")
	if err != nil {
		return "", fmt.Errorf("tesseract failed on %s: %w", imagePath, err)
	}
	return string(out), nil
}

// VerifyInstalled checks that tesseract is available
func (r *TesseractRecognizer) VerifyInstalled(ctx context.Context) error {
	if _, err := r.runner.Output(ctx, r.tesseractPath, "--version"); err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w", err)
	}
	return nil
}

// Ensure TesseractRecognizer implements Recognizer
var _ Recognizer = (*TesseractRecognizer)(nil)
