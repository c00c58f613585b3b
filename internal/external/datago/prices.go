package datago

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

const (
	pricePath  = "/getStockPriceInfo"
	maxRows    = 100
	dateLayout = "20060102"
)

// priceResponse is the JSON happy-path envelope of getStockPriceInfo.
type priceResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			TotalCount int `json:"totalCount"`
			// items is "" instead of an object when the range is empty
			Items json.RawMessage `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type priceItems struct {
	Item []priceRow `json:"item"`
}

// priceRow is one trading day as returned upstream. All numeric fields
// arrive as strings.
type priceRow struct {
	BaseDate string `json:"basDt"`  // 기준일자 (YYYYMMDD)
	ShortCd  string `json:"srtnCd"` // 단축코드
	Name     string `json:"itmsNm"` // 종목명
	Open     string `json:"mkp"`    // 시가
	High     string `json:"hipr"`   // 고가
	Low      string `json:"lopr"`   // 저가
	Close    string `json:"clpr"`   // 종가
	Volume   string `json:"trqu"`   // 거래량
}

// Fetch retrieves daily prices for a 6-digit KRX code, both range ends
// inclusive. One outbound call, no retry, all-or-nothing.
func (c *Client) Fetch(ctx context.Context, code string, start, end time.Time) ([]quotes.StockDataPoint, error) {
	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("resultType", "json")
	params.Set("numOfRows", strconv.Itoa(maxRows))
	params.Set("pageNo", "1")
	params.Set("likeSrtnCd", code)
	params.Set("beginBasDt", start.Format(dateLayout))
	params.Set("endBasDt", end.Format(dateLayout))

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, pricePath, params.Encode())

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return nil, quotes.WrapQuoteError(quotes.CategoryHTTPError, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, quotes.WrapQuoteError(quotes.CategoryHTTPError, "read response body failed", err)
	}

	// Fault envelopes arrive with any status code, including 200, and
	// must be recognized before JSON parsing is attempted.
	if isFaultBody(body) {
		return nil, decodeFault(body)
	}

	if resp.StatusCode == http.StatusInternalServerError {
		return nil, quotes.NewQuoteError(quotes.CategoryServerError,
			"upstream returned 500 with no recognizable fault body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, quotes.NewQuoteError(quotes.CategoryHTTPError,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	points, err := c.parsePriceResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"code":  code,
		"count": len(points),
	}).Debug("Fetched KR prices")
	return points, nil
}

// parsePriceResponse decodes the JSON envelope and maps rows to the
// common record format.
func (c *Client) parsePriceResponse(body []byte) ([]quotes.StockDataPoint, error) {
	var envelope priceResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, quotes.WrapQuoteError(quotes.CategoryUnknownFault,
			"unparsable JSON response", err)
	}

	header := envelope.Response.Header
	if header.ResultCode != "00" {
		return nil, quotes.NewQuoteError(quotes.CategoryUnknownFault,
			fmt.Sprintf("result code %s: %s", header.ResultCode, header.ResultMsg))
	}

	rows := decodeItems(envelope.Response.Body.Items)
	if len(rows) == 0 {
		return nil, quotes.NewQuoteError(quotes.CategoryNoDataInRange,
			"no trading data in the requested range")
	}

	points := make([]quotes.StockDataPoint, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(dateLayout, row.BaseDate)
		if err != nil {
			continue
		}

		closePrice := parsePrice(row.Close, 0)
		points = append(points, quotes.StockDataPoint{
			Date: date,
			// Upstream sometimes omits open/high/low; fall back to close
			Open:     parsePrice(row.Open, closePrice),
			High:     parsePrice(row.High, closePrice),
			Low:      parsePrice(row.Low, closePrice),
			Close:    closePrice,
			Volume:   parseVolume(row.Volume),
			Currency: quotes.CurrencyKRW,
		})
	}

	if len(points) == 0 {
		return nil, quotes.NewQuoteError(quotes.CategoryNoDataInRange,
			"no trading data in the requested range")
	}

	// Upstream row order is not guaranteed
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}

// decodeItems handles the upstream quirk of items being "" (a JSON
// string) instead of an object when the result set is empty.
func decodeItems(raw json.RawMessage) []priceRow {
	if len(raw) == 0 {
		return nil
	}

	var items priceItems
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items.Item
}

func parsePrice(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseVolume(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
