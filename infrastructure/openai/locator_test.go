package openai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeCompletionClient implements CompletionClient for testing
type fakeCompletionClient struct {
	lastSystem string
	lastUser   string
	reply      string
	err        error
}

func (f *fakeCompletionClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	return f.reply, f.err
}

func TestLocatorParsesLocations(t *testing.T) {
	client := &fakeCompletionClient{reply: `{"locations": ["Kyoto", "Fushimi Inari"]}`}
	locator := NewLocator(client)

	locations, err := locator.ExtractLocations(context.Background(), "visit Kyoto", "Fushimi Inari")
	if err != nil {
		t.Fatalf("ExtractLocations returned error: %v", err)
	}
	if len(locations) != 2 || locations[0] != "Kyoto" || locations[1] != "Fushimi Inari" {
		t.Errorf("unexpected locations: %v", locations)
	}
}

func TestLocatorEmptyLocationsList(t *testing.T) {
	client := &fakeCompletionClient{reply: `{"locations": []}`}
	locator := NewLocator(client)

	locations, err := locator.ExtractLocations(context.Background(), "no places here", "")
	if err != nil {
		t.Fatalf("ExtractLocations returned error: %v", err)
	}
	if len(locations) != 0 {
		t.Errorf("expected empty list, got %v", locations)
	}
}

func TestLocatorBothSignalsInPrompt(t *testing.T) {
	client := &fakeCompletionClient{reply: `{"locations": []}`}
	locator := NewLocator(client)

	locator.ExtractLocations(context.Background(), "spoken words", "on-screen words")

	if !strings.Contains(client.lastUser, "Transcript:\nspoken words") {
		t.Error("transcript missing from user prompt")
	}
	if !strings.Contains(client.lastUser, "Visual Text:\non-screen words") {
		t.Error("visual text missing from user prompt")
	}
	if !strings.Contains(client.lastSystem, "tour guide") {
		t.Errorf("unexpected system prompt: %s", client.lastSystem)
	}
}

func TestLocatorEmptySignalsAreNotAnError(t *testing.T) {
	client := &fakeCompletionClient{reply: `{"locations": []}`}
	locator := NewLocator(client)

	if _, err := locator.ExtractLocations(context.Background(), "", ""); err != nil {
		t.Fatalf("empty signals should not error, got %v", err)
	}
}

func TestLocatorErrorCases(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeCompletionClient
	}{
		{
			name:   "completion error",
			client: &fakeCompletionClient{err: errors.New("timeout")},
		},
		{
			name:   "non-json reply",
			client: &fakeCompletionClient{reply: "no locations found"},
		},
		{
			name:   "missing locations key",
			client: &fakeCompletionClient{reply: `{"places": ["Kyoto"]}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator := NewLocator(tt.client)
			if _, err := locator.ExtractLocations(context.Background(), "a", "b"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
