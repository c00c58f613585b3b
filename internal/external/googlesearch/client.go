// Package googlesearch provides a Google Custom Search JSON API client.
package googlesearch

import (
	"context"
	"fmt"
	"strconv"

	"resty.dev/v3"

	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// maxResults caps how many items a single search returns. The tool feeds
// results into a chat prompt, so a handful of snippets is plenty.
const maxResults = 5

// Result is one search hit, trimmed to what the chat prompt needs.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	Items []Result `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the Custom Search JSON API.
type Client struct {
	httpClient *resty.Client
	logger     *logger.Logger
	apiKey     string
	cseID      string
}

// NewClient creates a Google Custom Search client
func NewClient(cfg config.GoogleConfig, log *logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     log,
		apiKey:     cfg.APIKey,
		cseID:      cfg.CSEID,
	}
}

// Search runs a query and returns up to maxResults hits.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	c.logger.WithField("query", query).Debug("Google 검색 요청")

	var result searchResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": c.apiKey,
			"cx":  c.cseID,
			"q":   query,
			"num": strconv.Itoa(maxResults),
		}).
		SetResult(&result).
		SetError(&result).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("google search request failed: %w", err)
	}

	if !resp.IsSuccess() {
		if result.Error != nil {
			return nil, fmt.Errorf("google search API error %d: %s", result.Error.Code, result.Error.Message)
		}
		return nil, fmt.Errorf("google search API returned status %d", resp.StatusCode())
	}

	items := result.Items
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	c.logger.WithFields(map[string]interface{}{
		"query": query,
		"count": len(items),
	}).Debug("Google 검색 완료")

	return items, nil
}
