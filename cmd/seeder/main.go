package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"nashra/db"
	"nashra/internal/catalog"
	"nashra/internal/config"
	"nashra/internal/repository"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("error loading catalog: %v", err)
	}

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := repository.NewArticleRepository(db.DB)

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("error creating schema: %v", err)
	}

	articles := cat.Articles()
	inserted, err := repo.Seed(ctx, articles)
	if err != nil {
		log.Fatalf("error seeding articles: %v", err)
	}

	slog.Info("seeding complete", "articles", len(articles), "inserted", inserted, "skipped", len(articles)-inserted)
}
