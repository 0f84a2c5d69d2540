package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nashra/internal/assistant"
	"nashra/internal/catalog"
	"nashra/pkg/llm"
)

type AssistantHandler struct {
	repository ArticleStore
	service    *assistant.Service
}

func NewAssistantHandler(repository ArticleStore, service *assistant.Service) *AssistantHandler {
	return &AssistantHandler{repository: repository, service: service}
}

// PostSummary returns the cached summary of an article or asks for one.
func (h *AssistantHandler) PostSummary(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	entry, err := h.service.SummarizeArticle(c.Request.Context(), *article)
	if err != nil {
		slog.Error("error summarizing article", "error", err, "article_id", article.ID)
		c.JSON(errorStatus(err), toStateResponse(entry, summaryResult))
		return
	}

	c.JSON(http.StatusOK, toStateResponse(entry, summaryResult))
}

func (h *AssistantHandler) GetSummary(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toStateResponse(h.service.SummaryState(article.ID), summaryResult))
}

func (h *AssistantHandler) PostBriefing(c *gin.Context) {
	var req BriefingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid briefing request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": assistant.MsgEmptySubject})
		return
	}

	entry, err := h.service.Brief(c.Request.Context(), req.Topic)
	if err != nil {
		slog.Error("error generating briefing", "error", err, "topic", req.Topic)
		c.JSON(errorStatus(err), toStateResponse(entry, briefingResult))
		return
	}

	c.JSON(http.StatusOK, toStateResponse(entry, briefingResult))
}

func (h *AssistantHandler) GetBriefing(c *gin.Context) {
	topic := c.Query("topic")
	if strings.TrimSpace(topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": assistant.MsgEmptySubject})
		return
	}

	c.JSON(http.StatusOK, toStateResponse(h.service.BriefingState(topic), briefingResult))
}

func (h *AssistantHandler) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, SuggestionsResponse{Topics: catalog.SuggestedTopics})
}

func errorStatus(err error) int {
	var cfgErr *llm.ConfigurationError
	var upErr *llm.UpstreamError
	switch {
	case errors.Is(err, assistant.ErrEmptySubject):
		return http.StatusBadRequest
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &upErr):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
