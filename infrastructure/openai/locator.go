package openai

import (
	"context"
	"fmt"

	"scurry-locator/domain/pipeline"
)

// CompletionClient abstracts the completion call so the locator can be
// tested without HTTP
type CompletionClient interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Locator implements pipeline.LocationExtractor on top of a chat completion
// service. Errors are returned to the caller; the pipeline treats this stage
// as fail-soft and degrades to an empty list.
type Locator struct {
	client CompletionClient
}

// NewLocator creates a location extractor backed by the given client
func NewLocator(client CompletionClient) *Locator {
	return &Locator{client: client}
}

// locationsReply is the narrow schema expected from the model
type locationsReply struct {
	Locations *[]string `json:"locations"`
}

// ExtractLocations implements pipeline.LocationExtractor
func (l *Locator) ExtractLocations(ctx context.Context, transcript, visualText string) ([]string, error) {
	userPrompt := userPromptHeader +
		"\nFollowing are the 2 texts\nTranscript:\n" + transcript +
		"\n\nVisual Text:\n" + visualText

	content, err := l.client.CompleteJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var reply locationsReply
	if err := DecodeReplyJSON(content, &reply); err != nil {
		return nil, fmt.Errorf("parse locations reply: %w", err)
	}
	if reply.Locations == nil {
		return nil, fmt.Errorf("locations reply missing %q key", "locations")
	}

	return *reply.Locations, nil
}

// Ensure Locator implements pipeline.LocationExtractor
var _ pipeline.LocationExtractor = (*Locator)(nil)
