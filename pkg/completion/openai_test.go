package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestClient(endpoint string) *OpenAIClient {
	client := NewOpenAIClient("test-key", "gpt-3.5-turbo", nopLogger{})
	client.endpoint = endpoint
	return client
}

func TestCompleteMissingAPIKey(t *testing.T) {
	client := NewOpenAIClient("", "", nopLogger{})

	_, err := client.Complete(context.Background(), "system", "hello")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Complete error = %v, want ErrMissingAPIKey", err)
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotReq chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "chatcmpl-1",
			"model": "gpt-3.5-turbo",
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "  Looking good! 👍  "}},
			},
			"usage": map[string]int{"prompt_tokens": 80, "completion_tokens": 12, "total_tokens": 92},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reply, err := client.Complete(context.Background(), "system prompt", "How's my profit?")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// The client returns raw provider text; trimming is the handler's job
	if reply != "  Looking good! 👍  " {
		t.Errorf("reply = %q", reply)
	}

	if gotReq.Model != "gpt-3.5-turbo" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.9 {
		t.Errorf("temperature = %v, want 0.9", gotReq.Temperature)
	}
	if gotReq.MaxTokens != 200 {
		t.Errorf("max_tokens = %d, want 200", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if gotReq.Messages[0].Content != "system prompt" || gotReq.Messages[1].Content != "How's my profit?" {
		t.Errorf("message contents = %+v", gotReq.Messages)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit secret-detail","type":"rate_limit"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), "system", "hello")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("Complete error = %v, want ErrUpstream", err)
	}
	// The provider payload must never leave the server log
	if strings.Contains(err.Error(), "secret-detail") {
		t.Errorf("error %q leaks the provider payload", err.Error())
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"chatcmpl-2","model":"gpt-3.5-turbo","choices":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), "system", "hello")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("Complete error = %v, want ErrEmptyCompletion", err)
	}
}

func TestCompleteMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), "system", "hello")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("Complete error = %v, want ErrMalformedResponse", err)
	}
}
