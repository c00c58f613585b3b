package alphavantage

import (
	"strings"

	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/httputil"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// Client handles communication with the Alpha Vantage daily time series API
// ⭐ SSOT: Alpha Vantage 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	apiKey     string
	baseURL    string
}

// NewClient creates a new Alpha Vantage client. An empty API key is
// passed through and rejected upstream.
func NewClient(cfg config.AlphaVantageConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
	}
}

// Name identifies this provider in logs and results.
func (c *Client) Name() string {
	return "alphavantage"
}

// tickerAliases maps common names to tickers. The adapter accepts
// free-form input directly and keeps its own table, separate from the
// market resolver's.
var tickerAliases = []struct {
	Token  string
	Ticker string
}{
	{"apple", "AAPL"},
	{"microsoft", "MSFT"},
	{"google", "GOOGL"},
	{"amazon", "AMZN"},
	{"tesla", "TSLA"},
	{"elon musk", "TSLA"},
	{"meta", "META"},
	{"nvidia", "NVDA"},
	{"netflix", "NFLX"},
}

// resolveTicker maps free-form input to a ticker, falling back to the
// upper-cased input itself. This path never fails.
func resolveTicker(symbol string) string {
	lower := strings.ToLower(strings.TrimSpace(symbol))
	for _, alias := range tickerAliases {
		if strings.Contains(lower, alias.Token) {
			return alias.Ticker
		}
	}
	return strings.ToUpper(strings.TrimSpace(symbol))
}
