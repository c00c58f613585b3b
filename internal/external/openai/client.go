// Package openai provides a minimal OpenAI chat-completions client
// covering exactly what the chat service needs: messages, tool
// definitions, and tool calls.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"

	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// Message is a single chat-completions message. Content is a pointer
// because an assistant turn carrying tool calls has a null content.
type Message struct {
	Role       string     `json:"role"`
	Content    *string    `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is the model's request to run one tool.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the tool name and its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool declares a function the model may call.
type Tool struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes a callable function to the model.
type FunctionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type completionRequest struct {
	Model      string    `json:"model"`
	Messages   []Message `json:"messages"`
	Tools      []Tool    `json:"tools,omitempty"`
	ToolChoice string    `json:"tool_choice,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// TextMessage builds a plain text message for the given role.
func TextMessage(role, content string) Message {
	return Message{Role: role, Content: &content}
}

// ToolMessage builds a tool-result message answering a tool call.
func ToolMessage(toolCallID, content string) Message {
	return Message{Role: "tool", ToolCallID: toolCallID, Content: &content}
}

// Client calls the chat-completions endpoint.
type Client struct {
	httpClient *resty.Client
	logger     *logger.Logger
	model      string
}

// NewClient creates an OpenAI chat-completions client
func NewClient(cfg config.OpenAIConfig, log *logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &Client{
		httpClient: httpClient,
		logger:     log,
		model:      cfg.Model,
	}
}

// Complete sends one chat-completions request and returns the first
// choice's message. Tools may be nil for a plain completion.
func (c *Client) Complete(ctx context.Context, messages []Message, tools []Tool) (Message, error) {
	req := completionRequest{
		Model:    c.model,
		Messages: messages,
		Tools:    tools,
	}
	if len(tools) > 0 {
		req.ToolChoice = "auto"
	}

	c.logger.WithFields(map[string]interface{}{
		"model":    c.model,
		"messages": len(messages),
		"tools":    len(tools),
	}).Debug("chat completion 요청")

	var result completionResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		SetError(&result).
		Post("/chat/completions")
	if err != nil {
		return Message{}, fmt.Errorf("chat completion request failed: %w", err)
	}

	if !resp.IsSuccess() {
		if result.Error != nil {
			return Message{}, fmt.Errorf("openai API error (%s): %s", result.Error.Type, result.Error.Message)
		}
		return Message{}, fmt.Errorf("openai API returned status %d", resp.StatusCode())
	}

	if len(result.Choices) == 0 {
		return Message{}, fmt.Errorf("openai API returned no choices")
	}

	return result.Choices[0].Message, nil
}
