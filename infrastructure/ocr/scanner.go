//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"scurry-locator/domain/pipeline"

	"gocv.io/x/gocv"
)

// Scanner implements pipeline.FrameTextScanner by decoding video frames
// sequentially with GoCV and running character recognition on every frame
// whose index lands on the stride. Decoding and recognition alternate
// synchronously; the stride is the only throttle on recognition cost.
type Scanner struct {
	recognizer Recognizer
	logger     *slog.Logger
}

// ScannerOption is a functional option for configuring Scanner
type ScannerOption func(*Scanner)

// WithScannerRecognizer sets the per-frame text recognizer
func WithScannerRecognizer(recognizer Recognizer) ScannerOption {
	return func(s *Scanner) {
		if recognizer != nil {
			s.recognizer = recognizer
		}
	}
}

// WithScannerLogger sets the logger
func WithScannerLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScanner creates a frame-text scanner backed by GoCV and tesseract
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		recognizer: NewTesseractRecognizer(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan implements pipeline.FrameTextScanner
func (s *Scanner) Scan(ctx context.Context, videoPath string, stride int) (string, error) {
	if stride < 1 {
		stride = 1
	}

	capture, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return "", &pipeline.ScanError{VideoPath: videoPath, Err: fmt.Errorf("open video: %w", err)}
	}
	defer capture.Close()

	tempDir, err := os.MkdirTemp("", "scurry-frames-*")
	if err != nil {
		return "", &pipeline.ScanError{VideoPath: videoPath, Err: err}
	}
	defer os.RemoveAll(tempDir)

	frame := gocv.NewMat()
	defer frame.Close()

	var texts []string
	frameIndex := 0

	for capture.Read(&frame) {
		select {
		case <-ctx.Done():
			return "", &pipeline.ScanError{VideoPath: videoPath, Err: ctx.Err()}
		default:
		}

		if frame.Empty() {
			frameIndex++
			continue
		}

		if shouldSample(frameIndex, stride) {
			text, err := s.recognizeFrame(ctx, frame, tempDir, frameIndex)
			if err != nil {
				return "", &pipeline.ScanError{VideoPath: videoPath, Err: err}
			}
			texts = append(texts, text)
		}
		frameIndex++
	}

	s.logger.Debug("frame scan complete",
		slog.String("video", videoPath),
		slog.Int("frames", frameIndex),
		slog.Int("sampled", (frameIndex+stride-1)/stride),
	)

	return joinFrameTexts(texts), nil
}

// recognizeFrame writes the frame to a temp image and runs recognition on it
func (s *Scanner) recognizeFrame(ctx context.Context, frame gocv.Mat, tempDir string, index int) (string, error) {
	framePath := filepath.Join(tempDir, fmt.Sprintf("frame_%06d.png", index))
	if ok := gocv.IMWrite(framePath, frame); !ok {
		return "", fmt.Errorf("failed to write frame %d", index)
	}
	defer os.Remove(framePath)

	return s.recognizer.Recognize(ctx, framePath)
}

// Ensure Scanner implements pipeline.FrameTextScanner
var _ pipeline.FrameTextScanner = (*Scanner)(nil)
