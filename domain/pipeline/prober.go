package pipeline

import "context"

// DurationProber defines the interface for reading a video's container
// duration. Probing is best effort: implementations must never return an
// error, only ok=false when the duration cannot be determined.
type DurationProber interface {
	// Probe returns the duration in seconds and whether it is known
	Probe(ctx context.Context, videoPath string) (seconds float64, ok bool)
}
