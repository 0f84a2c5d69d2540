package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nashra/internal/prefs"
)

const clientIDHeader = "X-Client-ID"

type PrefsHandler struct {
	repository ArticleStore
	service    *prefs.Service
}

func NewPrefsHandler(repository ArticleStore, service *prefs.Service) *PrefsHandler {
	return &PrefsHandler{repository: repository, service: service}
}

func clientID(c *gin.Context) string {
	return prefs.ClientID(c.GetHeader(clientIDHeader))
}

func (h *PrefsHandler) GetLike(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	liked, err := h.service.IsLiked(c.Request.Context(), clientID(c), article.ID)
	if err != nil {
		slog.Error("error reading like", "error", err, "article_id", article.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgPreferencesError})
		return
	}

	c.JSON(http.StatusOK, LikeResponse{Liked: liked})
}

func (h *PrefsHandler) ToggleLike(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	liked, err := h.service.ToggleLike(c.Request.Context(), clientID(c), article.ID)
	if err != nil {
		slog.Error("error toggling like", "error", err, "article_id", article.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgPreferencesError})
		return
	}

	c.JSON(http.StatusOK, LikeResponse{Liked: liked})
}

func (h *PrefsHandler) GetComments(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	comments, err := h.service.Comments(c.Request.Context(), clientID(c), article.ID)
	if err != nil {
		slog.Error("error fetching comments", "error", err, "article_id", article.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgPreferencesError})
		return
	}

	res := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		res = append(res, toCommentResponse(cm))
	}
	c.JSON(http.StatusOK, res)
}

func (h *PrefsHandler) PostComment(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid comment request", "error", err, "article_id", article.ID)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), clientID(c), article.ID, req.UserName, req.Text)
	if errors.Is(err, prefs.ErrEmptyComment) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyComment})
		return
	}
	if err != nil {
		slog.Error("error saving comment", "error", err, "article_id", article.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgPreferencesError})
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(*comment))
}

func (h *PrefsHandler) DeleteComment(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	commentID := c.Param("commentID")
	deleted, err := h.service.DeleteComment(c.Request.Context(), clientID(c), article.ID, commentID)
	if err != nil {
		slog.Error("error deleting comment", "error", err, "article_id", article.ID, "comment_id", commentID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgPreferencesError})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": msgCommentNotFound})
		return
	}

	c.Status(http.StatusNoContent)
}
