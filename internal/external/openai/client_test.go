package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error"})
}

func newTestClient(serverURL string) *Client {
	return NewClient(config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "gpt-4o",
	}, testLogger())
}

func TestCompletePlainAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req completionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-4o" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Tools) != 0 || req.ToolChoice != "" {
			t.Errorf("plain completion must not carry tools: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "안녕하세요"}}]}`))
	}))
	defer server.Close()

	msg, err := newTestClient(server.URL).Complete(context.Background(),
		[]Message{TextMessage("user", "hi")}, nil)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if msg.Content == nil || *msg.Content != "안녕하세요" {
		t.Errorf("unexpected content: %+v", msg.Content)
	}
}

func TestCompleteToolCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req completionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ToolChoice != "auto" {
			t.Errorf("tool_choice = %q, want auto", req.ToolChoice)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {
			"role": "assistant",
			"content": null,
			"tool_calls": [{
				"id": "call_1",
				"type": "function",
				"function": {"name": "google_search", "arguments": "{\"query\":\"삼성전자 주가\"}"}
			}]
		}}]}`))
	}))
	defer server.Close()

	tools := []Tool{{
		Type: "function",
		Function: FunctionDefinition{
			Name:       "google_search",
			Parameters: json.RawMessage(`{"type":"object"}`),
		},
	}}

	msg, err := newTestClient(server.URL).Complete(context.Background(),
		[]Message{TextMessage("user", "삼성전자 주가 알려줘")}, tools)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if msg.Content != nil {
		t.Errorf("tool-call turn should have null content, got %q", *msg.Content)
	}
	if len(msg.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(msg.ToolCalls))
	}
	if msg.ToolCalls[0].Function.Name != "google_search" {
		t.Errorf("tool name = %q", msg.ToolCalls[0].Function.Name)
	}
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(),
		[]Message{TextMessage("user", "hi")}, nil)
	if err == nil {
		t.Fatal("expected error on 401, got nil")
	}
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(),
		[]Message{TextMessage("user", "hi")}, nil)
	if err == nil {
		t.Fatal("expected error on empty choices, got nil")
	}
}
