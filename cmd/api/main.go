package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"nashra/db"
	"nashra/internal/assistant"
	"nashra/internal/catalog"
	"nashra/internal/config"
	"nashra/internal/handler"
	"nashra/internal/prefs"
	"nashra/internal/repository"
	"nashra/internal/tracker"
	"nashra/pkg/llm"

	"github.com/gin-gonic/gin"
)

func main() {
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	cfg := config.Load()
	level.Set(cfg.LogLevel)
	ctx := context.Background()

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("error loading catalog: %v", err)
	}

	var articles handler.ArticleStore = cat
	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		repo := repository.NewArticleRepository(db.DB)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("error creating schema: %v", err)
		}
		inserted, err := repo.Seed(ctx, cat.Articles())
		if err != nil {
			log.Fatalf("error seeding articles: %v", err)
		}
		slog.Info("article store ready", "store", "postgres", "inserted", inserted)
		articles = repo
	} else {
		slog.Info("article store ready", "store", "memory", "articles", len(cat.Articles()))
	}

	var store prefs.Store = prefs.NewMemoryStore()
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		store = prefs.NewRedisStore(db.Redis)
	}

	limiter := llm.NewLimiter(cfg.LLMRPM, cfg.LLMBurst)
	client := assistant.NewClient(cfg.Credentials(), assistant.ProviderFactory(cfg.LLM, limiter), cfg.PublicationName)
	if cfg.Credentials().APIKey() == "" {
		slog.Warn("no API key configured, AI features will report a configuration error", "env", []string{"API_KEY", llm.ProviderKeyEnv(cfg.LLM.Provider)})
	}

	svc, err := assistant.NewService(client, tracker.Options{
		Size:    cfg.CacheSize,
		Timeout: cfg.LLMTimeout,
	})
	if err != nil {
		log.Fatalf("error creating assistant service: %v", err)
	}

	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins())

	r := handler.NewRouter(handler.RouterConfig{
		Articles:       articles,
		Assistant:      svc,
		Prefs:          prefs.NewService(store, cfg.PrefsTTL),
		AllowedOrigins: cfg.AllowedOrigins(),
	})

	slog.Info("starting server", "addr", cfg.Addr, "provider", cfg.LLM.Provider)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
