package pipeline

import "context"

// VideoFetcher defines the interface for resolving a remote video link into
// a local file. This is a port implemented by infrastructure adapters.
type VideoFetcher interface {
	// Fetch downloads the video behind url into destPath and returns
	// destPath unchanged for chaining
	Fetch(ctx context.Context, url, destPath string) (string, error)
}
