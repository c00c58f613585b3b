package handlers

import (
	"net/http"
	"time"

	"github.com/finchat-kr/finchat/internal/stock"
	"github.com/finchat-kr/finchat/pkg/logger"
)

const dateLayout = "2006-01-02"

// StockHandler handles stock data API endpoints
type StockHandler struct {
	service *stock.Service
	logger  *logger.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service *stock.Service, log *logger.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  log,
	}
}

// GetStockData returns daily price data for one symbol
// GET /api/stock?symbol=삼성전자&start=2024-01-01&end=2024-01-31
func (h *StockHandler) GetStockData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	symbol := q.Get("symbol")
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	start, err := time.Parse(dateLayout, q.Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "start must be a YYYY-MM-DD date")
		return
	}
	end, err := time.Parse(dateLayout, q.Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "end must be a YYYY-MM-DD date")
		return
	}
	if !start.Before(end) {
		respondError(w, http.StatusBadRequest, "start must be before end")
		return
	}

	result := h.service.FetchStockData(r.Context(), symbol, start, end)

	// Failures are expected outcomes (quota, unsupported symbol...),
	// already translated to a user message. The HTTP status stays 200.
	respondJSON(w, http.StatusOK, result)
}
