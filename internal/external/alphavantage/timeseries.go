package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/finchat-kr/finchat/internal/quotes"
)

const dateLayout = "2006-01-02"

// timeSeriesResponse is the TIME_SERIES_DAILY envelope. Quota and error
// signals share the same document as the happy path.
type timeSeriesResponse struct {
	Note         string              `json:"Note"`
	Information  string              `json:"Information"`
	ErrorMessage string              `json:"Error Message"`
	Series       map[string]dailyBar `json:"Time Series (Daily)"`
}

// dailyBar is one trading day; every value arrives as a string.
type dailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// Fetch retrieves the compact (~100 day) daily series for a free-form
// symbol, resolves it through the adapter's own alias table, filters to
// the inclusive date range and returns rows ascending by date. One
// outbound call, no retry.
func (c *Client) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]quotes.StockDataPoint, error) {
	ticker := resolveTicker(symbol)

	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", ticker)
	params.Set("outputsize", "compact")
	params.Set("apikey", c.apiKey)

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return nil, quotes.WrapQuoteError(quotes.CategoryHTTPError, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, quotes.NewQuoteError(quotes.CategoryHTTPError,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, quotes.WrapQuoteError(quotes.CategoryHTTPError, "read response body failed", err)
	}

	points, err := c.parseTimeSeries(body, start, end)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"count":  len(points),
	}).Debug("Fetched US prices")
	return points, nil
}

// parseTimeSeries decodes the envelope, translates upstream signal
// fields into typed errors and maps the nested daily map into the
// common record format.
func (c *Client) parseTimeSeries(body []byte, start, end time.Time) ([]quotes.StockDataPoint, error) {
	var envelope timeSeriesResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, quotes.WrapQuoteError(quotes.CategoryUpstreamError,
			"unparsable JSON response", err)
	}

	// "Note" (and its newer "Information" sibling) signal quota
	// exhaustion on an otherwise well-formed 200 response
	if envelope.Note != "" || envelope.Information != "" {
		return nil, quotes.NewQuoteError(quotes.CategoryQuotaExceeded, "API call frequency limit reached")
	}
	if envelope.ErrorMessage != "" {
		return nil, quotes.NewQuoteError(quotes.CategoryUpstreamError, envelope.ErrorMessage)
	}

	points := make([]quotes.StockDataPoint, 0, len(envelope.Series))
	for dateStr, bar := range envelope.Series {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}

		// Inclusive range filter
		if date.Before(start) || date.After(end) {
			continue
		}

		points = append(points, quotes.StockDataPoint{
			Date:     date,
			Open:     parseFloat(bar.Open),
			High:     parseFloat(bar.High),
			Low:      parseFloat(bar.Low),
			Close:    parseFloat(bar.Close),
			Volume:   parseInt(bar.Volume),
			Currency: quotes.CurrencyUSD,
		})
	}

	if len(points) == 0 {
		return nil, quotes.NewQuoteError(quotes.CategoryNoDataInRange,
			"no trading data in the requested range")
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
