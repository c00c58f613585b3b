package commands

import (
	"github.com/finchat-kr/finchat/internal/external/alphavantage"
	"github.com/finchat-kr/finchat/internal/external/datago"
	"github.com/finchat-kr/finchat/internal/external/dummy"
	"github.com/finchat-kr/finchat/internal/quotes"
	"github.com/finchat-kr/finchat/internal/stock"
	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/httputil"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// buildStockService wires providers into the stock service. A market
// whose API credential is missing falls back to the dummy generator so
// the server stays usable without keys.
func buildStockService(cfg *config.Config, log *logger.Logger) *stock.Service {
	// Provider adapters classify errors themselves; httputil retries
	// would blur quota and fault responses into repeated calls
	httpClient := httputil.New(cfg, log).DisableRetry()

	var kr quotes.Provider
	if cfg.DataGo.ServiceKey != "" {
		kr = datago.NewClient(cfg.DataGo, httpClient, log)
	} else {
		log.Warn("DATA_GO_SERVICE_KEY 미설정, 더미 한국 주가 데이터 사용")
		kr = dummy.NewGenerator(quotes.CurrencyKRW, log)
	}

	var us quotes.Provider
	if cfg.AlphaVantage.APIKey != "" {
		us = alphavantage.NewClient(cfg.AlphaVantage, httpClient, log)
	} else {
		log.Warn("ALPHA_VANTAGE_API_KEY 미설정, 더미 미국 주가 데이터 사용")
		us = dummy.NewGenerator(quotes.CurrencyUSD, log)
	}

	return stock.NewService(kr, us, log)
}
