package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func mockEmbeddingsServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAI_Embed(t *testing.T) {
	var gotAuth, gotInput string
	srv := mockEmbeddingsServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req struct {
			Model string `json:"model"`
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotInput = req.Input
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
		})
	})

	p := NewOpenAI(&Config{Model: "text-embedding-3-small", APIKey: "test-key", BaseURL: srv.URL})

	out, err := p.Embed(context.Background(), "python sql")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("unexpected vector length: %d", len(out))
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotInput != "python sql" {
		t.Fatalf("unexpected input: %q", gotInput)
	}
	if p.Dim() != 3 {
		t.Fatalf("dim should track last embed: %d", p.Dim())
	}
}

func TestOpenAI_EmbedEmptyQueryIsPadded(t *testing.T) {
	var gotInput string
	srv := mockEmbeddingsServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input string `json:"input"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotInput = req.Input
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.5}}},
		})
	})

	p := NewOpenAI(&Config{Model: "m", APIKey: "k", BaseURL: srv.URL})
	if _, err := p.Embed(context.Background(), ""); err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if gotInput != " " {
		t.Fatalf("empty input should be padded to a single space, got %q", gotInput)
	}
}

func TestOpenAI_EmbedHTTPError(t *testing.T) {
	srv := mockEmbeddingsServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})

	p := NewOpenAI(&Config{Model: "m", APIKey: "k", BaseURL: srv.URL})
	if _, err := p.Embed(context.Background(), "python"); err == nil {
		t.Fatal("expected error for HTTP 429")
	}
}

func TestOpenAI_EmbedMissingConfig(t *testing.T) {
	p := NewOpenAI(&Config{BaseURL: "http://127.0.0.1:0"})
	if _, err := p.Embed(context.Background(), "python"); err == nil {
		t.Fatal("expected error when model is not configured")
	}

	p = NewOpenAI(&Config{Model: "m", BaseURL: "http://127.0.0.1:0"})
	if _, err := p.Embed(context.Background(), "python"); err == nil {
		t.Fatal("expected error when API key is not configured")
	}
}

func TestNewFromConfig(t *testing.T) {
	if _, err := NewFromConfig(nil); err == nil {
		t.Fatal("nil config should error")
	}
	if _, err := NewFromConfig(&Config{}); err == nil {
		t.Fatal("missing provider should error")
	}
	if _, err := NewFromConfig(&Config{Provider: "vertex"}); err == nil {
		t.Fatal("unsupported provider should error")
	}

	p, err := NewFromConfig(&Config{Provider: "openai", Model: "m"})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if p.ModelID() != "openai:m" {
		t.Fatalf("unexpected model id: %q", p.ModelID())
	}
}
