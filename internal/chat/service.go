// Package chat answers free-form questions with an LLM that may reach
// for web search. The flow is two-phase: the first completion decides
// whether to call the search tool, tool results are appended to the
// conversation, and a second completion writes the final answer.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finchat-kr/finchat/internal/external/googlesearch"
	"github.com/finchat-kr/finchat/internal/external/openai"
	"github.com/finchat-kr/finchat/internal/search"
	"github.com/finchat-kr/finchat/pkg/logger"
)

const (
	systemPrompt = "당신은 웹 검색이 가능한 도우미입니다. 사용자의 질문에 답변하기 위해 필요하다면 웹 검색을 사용하세요."

	searchToolName = "google_search"

	msgRateLimited = "검색 호출 한도를 초과해 답변을 완성하지 못했습니다. 잠시 후 다시 시도해 주세요."
)

// Completer is the LLM dependency.
type Completer interface {
	Complete(ctx context.Context, messages []openai.Message, tools []openai.Tool) (openai.Message, error)
}

// Searcher is the search-tool dependency.
type Searcher interface {
	Search(ctx context.Context, query string) ([]googlesearch.Result, error)
}

// Service runs tool-assisted chat turns.
type Service struct {
	completer Completer
	searcher  Searcher
	logger    *logger.Logger
}

// NewService creates a chat service
func NewService(completer Completer, searcher Searcher, log *logger.Logger) *Service {
	return &Service{
		completer: completer,
		searcher:  searcher,
		logger:    log,
	}
}

func searchTool() []openai.Tool {
	return []openai.Tool{{
		Type: "function",
		Function: openai.FunctionDefinition{
			Name:        searchToolName,
			Description: "웹에서 최신 정보를 검색합니다. 주가, 뉴스 등 시점이 중요한 질문에 사용하세요.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"query": {"type": "string", "description": "검색어"}
				},
				"required": ["query"]
			}`),
		},
	}}
}

// Ask answers one user question, running the search tool when the
// model asks for it.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	messages := []openai.Message{
		openai.TextMessage("system", systemPrompt),
		openai.TextMessage("user", question),
	}

	first, err := s.completer.Complete(ctx, messages, searchTool())
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	// No tool calls: the first answer is the final one
	if len(first.ToolCalls) == 0 {
		if first.Content == nil {
			return "", fmt.Errorf("model returned empty answer")
		}
		return *first.Content, nil
	}

	messages = append(messages, first)

	for _, call := range first.ToolCalls {
		content, err := s.runTool(ctx, call)
		if err != nil {
			if errors.Is(err, search.ErrRateLimited) {
				return msgRateLimited, nil
			}
			return "", err
		}
		messages = append(messages, openai.ToolMessage(call.ID, content))
	}

	final, err := s.completer.Complete(ctx, messages, nil)
	if err != nil {
		return "", fmt.Errorf("final completion failed: %w", err)
	}
	if final.Content == nil {
		return "", fmt.Errorf("model returned empty final answer")
	}
	return *final.Content, nil
}

func (s *Service) runTool(ctx context.Context, call openai.ToolCall) (string, error) {
	if call.Function.Name != searchToolName {
		return "", fmt.Errorf("model requested unknown tool %q", call.Function.Name)
	}

	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		return "", fmt.Errorf("invalid tool arguments: %w", err)
	}

	s.logger.WithField("query", args.Query).Info("검색 도구 실행")

	results, err := s.searcher.Search(ctx, args.Query)
	if err != nil {
		return "", err
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("encode search results: %w", err)
	}
	return string(encoded), nil
}
