//go:build !ocr

package ocr

import (
	"context"
	"fmt"
	"log/slog"

	"scurry-locator/domain/pipeline"
)

// Scanner is a stub when GoCV/OpenCV is not available
type Scanner struct{}

// ScannerOption is a functional option for configuring Scanner
type ScannerOption func(*Scanner)

// WithScannerRecognizer is a no-op in stub mode
func WithScannerRecognizer(recognizer Recognizer) ScannerOption {
	return func(s *Scanner) {}
}

// WithScannerLogger is a no-op in stub mode
func WithScannerLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {}
}

// NewScanner creates a stub scanner (requires building with -tags=ocr)
func NewScanner(opts ...ScannerOption) *Scanner {
	return &Scanner{}
}

// Scan returns an error indicating frame scanning is not available
func (s *Scanner) Scan(ctx context.Context, videoPath string, stride int) (string, error) {
	return "", fmt.Errorf("frame scanning not available: build with '-tags=ocr' and install OpenCV/GoCV")
}

// Ensure Scanner implements pipeline.FrameTextScanner
var _ pipeline.FrameTextScanner = (*Scanner)(nil)
