package handler

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nashra/internal/assistant"
	"nashra/internal/prefs"
)

type RouterConfig struct {
	Articles       ArticleStore
	Assistant      *assistant.Service
	Prefs          *prefs.Service
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", clientIDHeader},
		}))
	}

	articles := NewArticleHandler(cfg.Articles)
	ai := NewAssistantHandler(cfg.Articles, cfg.Assistant)
	reader := NewPrefsHandler(cfg.Articles, cfg.Prefs)

	r.GET("/health", articles.GetHealth)
	r.GET("/categories", articles.GetCategories)
	r.GET("/home", articles.GetHome)
	r.GET("/articles", articles.GetArticles)
	r.GET("/articles/:id", articles.GetArticle)

	r.POST("/articles/:id/summary", ai.PostSummary)
	r.GET("/articles/:id/summary", ai.GetSummary)
	r.POST("/briefings", ai.PostBriefing)
	r.GET("/briefings", ai.GetBriefing)
	r.GET("/briefings/suggestions", ai.GetSuggestions)

	r.GET("/articles/:id/like", reader.GetLike)
	r.POST("/articles/:id/like", reader.ToggleLike)
	r.GET("/articles/:id/comments", reader.GetComments)
	r.POST("/articles/:id/comments", reader.PostComment)
	r.DELETE("/articles/:id/comments/:commentID", reader.DeleteComment)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
