package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/documents"
	"docchat-backend/internal/shared/server/middleware"
	"docchat-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/chats", h.chat)
	rg.GET("/documents/:id/chats", h.history)
}

func (h *Handler) chat(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "missing_data", "invalid request body", nil)
		return
	}
	req.Message = strings.TrimSpace(req.Message)

	reply, err := h.Svc.Chat(c.Request.Context(), userID, documentID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingData):
			respond.Error(c, http.StatusBadRequest, "missing_data", "message is required", nil)
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "document_not_found", "document not found", nil)
		case errors.Is(err, documents.ErrEmptyDocument):
			respond.Error(c, http.StatusBadRequest, "empty_document", "document has no text", nil)
		case errors.Is(err, ErrGenerationFailed):
			respond.Error(c, http.StatusBadGateway, "generation_failed", "Failed to get response from AI", nil)
		case errors.Is(err, ErrPersistFailed):
			respond.Error(c, http.StatusInternalServerError, "persist_failed", "failed to record chat turns", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "store_unavailable", "failed to load chat context", nil)
		}
		return
	}

	respond.OK(c, ChatResponse{Reply: reply})
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	turns, err := h.Svc.History(c.Request.Context(), userID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingData):
			respond.Error(c, http.StatusBadRequest, "missing_data", "document id is required", nil)
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "document_not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "store_unavailable", "failed to load chat history", nil)
		}
		return
	}

	respond.OK(c, toHistoryResponse(turns))
}
