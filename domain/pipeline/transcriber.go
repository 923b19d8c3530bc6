package pipeline

import "context"

// Transcriber defines the interface for full-file speech-to-text conversion
type Transcriber interface {
	// Transcribe returns the recognized text for the audio file; the result
	// may be empty for silent or music-only audio
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
