package datago

import (
	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/httputil"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// Client handles communication with the 공공데이터포털 stock price API
// (data.go.kr, 금융위원회 주식시세정보)
// ⭐ SSOT: 공공데이터포털 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	serviceKey string
	baseURL    string
}

// NewClient creates a new data.go.kr client. The service key is passed
// through as-is; an empty key fails at the network call with fault code
// 30 (SERVICE_KEY_IS_NOT_REGISTERED_ERROR).
func NewClient(cfg config.DataGoConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		serviceKey: cfg.ServiceKey,
		baseURL:    cfg.BaseURL,
	}
}

// Name identifies this provider in logs and results.
func (c *Client) Name() string {
	return "datago"
}
