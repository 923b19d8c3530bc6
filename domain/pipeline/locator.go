package pipeline

import "context"

// LocationExtractor defines the interface for identifying travel locations
// mentioned across the two text signals. Either input may be empty; that is
// never an error.
type LocationExtractor interface {
	// ExtractLocations returns the ordered list of place names identified
	// in the transcript and visual text
	ExtractLocations(ctx context.Context, transcript, visualText string) ([]string, error)
}
