// Package search wraps the Google Custom Search client behind a rate
// limit so the chat tool cannot burn through the daily quota.
package search

import (
	"context"
	"errors"

	"github.com/finchat-kr/finchat/internal/external/googlesearch"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// ErrRateLimited is returned when either the per-second or the per-day
// ceiling blocks a call.
var ErrRateLimited = errors.New("search: rate limit exceeded")

// Client is the outbound search dependency.
type Client interface {
	Search(ctx context.Context, query string) ([]googlesearch.Result, error)
}

// Service gates search calls through the limiter.
type Service struct {
	client  Client
	limiter *Limiter
	logger  *logger.Logger
}

// NewService creates a rate-limited search service
func NewService(client Client, limiter *Limiter, log *logger.Logger) *Service {
	return &Service{
		client:  client,
		limiter: limiter,
		logger:  log,
	}
}

// Search runs a query if the limiter admits it.
func (s *Service) Search(ctx context.Context, query string) ([]googlesearch.Result, error) {
	if !s.limiter.Allow() {
		s.logger.WithField("query", query).Warn("검색 호출 한도 초과")
		return nil, ErrRateLimited
	}
	return s.client.Search(ctx, query)
}
