package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nashra/internal/catalog"
	"nashra/internal/model"
)

const (
	msgStoreError       = "تعذر تحميل المقالات"
	msgArticleNotFound  = "المقال غير موجود"
	msgUnknownCategory  = "القسم غير معروف"
	msgInvalidRequest   = "طلب غير صالح"
	msgEmptyComment     = "لا يمكن إرسال تعليق فارغ"
	msgCommentNotFound  = "التعليق غير موجود"
	msgPreferencesError = "تعذر حفظ التفضيلات"
)

// ArticleStore is the read side of the article collection.
type ArticleStore interface {
	List(ctx context.Context, f catalog.Filter) ([]model.Article, error)
	GetByID(ctx context.Context, id string) (*model.Article, error)
	All(ctx context.Context) ([]model.Article, error)
	Ping(ctx context.Context) error
}

type ArticleHandler struct {
	repository ArticleStore
}

func NewArticleHandler(repository ArticleStore) *ArticleHandler {
	return &ArticleHandler{repository: repository}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	filter, ok := getFilter(c)
	if !ok {
		return
	}
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	articles, err := h.repository.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("error fetching articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStoreError})
		return
	}

	total := len(articles)
	start := min(offset, total)
	end := min(start+limit, total)

	c.JSON(http.StatusOK, FeedResponse{
		Articles: toArticleResponses(articles[start:end]),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, ok := lookupArticle(c, h.repository)
	if !ok {
		return
	}

	all, err := h.repository.All(c.Request.Context())
	if err != nil {
		slog.Error("error fetching related articles", "error", err, "article_id", article.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStoreError})
		return
	}

	c.JSON(http.StatusOK, SingleArticleResponse{
		ArticleResponse: toArticleResponse(*article),
		Content:         article.Content,
		Related:         toArticleResponses(catalog.Related(all, *article, catalog.RelatedLimit)),
	})
}

// GetHome lays out the home view. The category and q filters narrow the
// cover, hero and feed; featured and trending strips ignore them.
func (h *ArticleHandler) GetHome(c *gin.Context) {
	filter, ok := getFilter(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	all, err := h.repository.All(ctx)
	if err != nil {
		slog.Error("error fetching articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStoreError})
		return
	}
	visible := catalog.Apply(all, filter)

	layout := catalog.Home(visible, all)
	res := HomeResponse{
		Hero:     toArticleResponses(layout.Hero),
		Feed:     toArticleResponses(layout.Feed),
		Featured: toArticleResponses(layout.Featured),
		Trending: toArticleResponses(layout.Trending),
	}
	if layout.Cover != nil {
		cover := toArticleResponse(*layout.Cover)
		res.Cover = &cover
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetCategories(c *gin.Context) {
	res := make([]CategoryResponse, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		res = append(res, toCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	if err := h.repository.Ping(c.Request.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// lookupArticle resolves the :id parameter, writing the error response
// itself when it returns false.
func lookupArticle(c *gin.Context, store ArticleStore) (*model.Article, bool) {
	id := c.Param("id")

	article, err := store.GetByID(c.Request.Context(), id)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStoreError})
		return nil, false
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgArticleNotFound})
		return nil, false
	}

	return article, true
}

func getFilter(c *gin.Context) (catalog.Filter, bool) {
	category, err := model.ParseCategory(c.Query("category"))
	if err != nil {
		slog.Warn("unknown category", "category", c.Query("category"))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUnknownCategory})
		return catalog.Filter{}, false
	}
	return catalog.Filter{Category: category, Query: c.Query("q")}, true
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramLimit := c.Query(name)

	if paramLimit == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramLimit)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramLimit, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
