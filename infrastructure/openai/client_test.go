package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func completionServer(t *testing.T, content string, inspect func(chatCompletionRequest)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if inspect != nil {
			inspect(req)
		}
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"message": map[string]any{"content": content},
				},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestCompleteJSONDeterministicSampling(t *testing.T) {
	var seen chatCompletionRequest
	server := completionServer(t, `{"locations":["Kyoto"]}`, func(req chatCompletionRequest) {
		seen = req
	})
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	content, err := client.CompleteJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"locations":["Kyoto"]}` {
		t.Errorf("unexpected content: %s", content)
	}

	if seen.Temperature != 0 {
		t.Errorf("expected temperature 0, got %v", seen.Temperature)
	}
	if seen.N != 1 {
		t.Errorf("expected a single candidate, got n=%d", seen.N)
	}
	if seen.MaxTokens != defaultMaxTokens {
		t.Errorf("expected bounded output length %d, got %d", defaultMaxTokens, seen.MaxTokens)
	}
	if seen.ResponseFormat["type"] != jsonResponseType {
		t.Errorf("expected json response format, got %v", seen.ResponseFormat)
	}
	if len(seen.Messages) != 2 || seen.Messages[0].Role != "system" || seen.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", seen.Messages)
	}
}

func TestCompleteJSONHTTPErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := client.CompleteJSON(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestCompleteJSONEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := client.CompleteJSON(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestDecodeReplyJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "plain object",
			content: `{"locations": ["Kyoto", "Osaka"]}`,
			want:    []string{"Kyoto", "Osaka"},
		},
		{
			name:    "code fenced object",
			content: "```json\n{\"locations\": [\"Kyoto\"]}\n```",
			want:    []string{"Kyoto"},
		},
		{
			name:    "object embedded in prose",
			content: `Sure! Here you go: {"locations": ["Kyoto"]} hope that helps`,
			want:    []string{"Kyoto"},
		},
		{
			name:    "not json at all",
			content: "I could not find any locations.",
			wantErr: true,
		},
		{
			name:    "empty payload",
			content: "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reply locationsReply
			err := DecodeReplyJSON(tt.content, &reply)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeReplyJSON returned error: %v", err)
			}
			if reply.Locations == nil {
				t.Fatal("locations key missing")
			}
			got := *reply.Locations
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("location %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
