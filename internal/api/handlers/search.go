package handlers

import (
	"errors"
	"net/http"

	"github.com/finchat-kr/finchat/internal/search"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// SearchHandler handles web search API endpoints
type SearchHandler struct {
	service *search.Service
	logger  *logger.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *search.Service, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  log,
	}
}

// Search runs a web search
// GET /api/search?q=삼성전자+실적
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "q is required")
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, search.ErrRateLimited) {
			respondError(w, http.StatusTooManyRequests, "search rate limit exceeded")
			return
		}
		h.logger.WithError(err).Error("Search failed")
		respondError(w, http.StatusBadGateway, "search failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": results,
	})
}
