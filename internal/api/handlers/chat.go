package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/finchat-kr/finchat/internal/chat"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// ChatHandler handles chat API endpoints
type ChatHandler struct {
	service *chat.Service
	logger  *logger.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service *chat.Service, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  log,
	}
}

// ChatRequest is the POST /api/chat body
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse is the POST /api/chat reply
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Ask answers a free-form question, searching the web when needed
// POST /api/chat
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := h.service.Ask(r.Context(), req.Question)
	if err != nil {
		h.logger.WithError(err).Error("Chat failed")
		respondError(w, http.StatusBadGateway, "chat failed")
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{Answer: answer})
}
