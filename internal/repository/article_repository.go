package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"nashra/internal/catalog"
	"nashra/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS article (
	id           TEXT PRIMARY KEY,
	position     INTEGER NOT NULL,
	title        TEXT NOT NULL,
	excerpt      TEXT NOT NULL DEFAULT '',
	content      TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL,
	author       TEXT NOT NULL DEFAULT '',
	date         TEXT NOT NULL DEFAULT '',
	image_url    TEXT NOT NULL DEFAULT '',
	featured     BOOLEAN NOT NULL DEFAULT FALSE,
	tags         TEXT[] NOT NULL DEFAULT '{}',
	reading_time TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS article_category_idx ON article (category);
`

const articleColumns = `id, title, excerpt, content, category, author, date, image_url, featured, tags, reading_time`

// ArticleRepository serves the static article collection from PostgreSQL.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *ArticleRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Seed inserts articles in order, leaving existing IDs untouched. It
// returns the number of rows inserted.
func (r *ArticleRepository) Seed(ctx context.Context, articles []model.Article) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for i, a := range articles {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO article(id, position, title, excerpt, content, category, author, date, image_url, featured, tags, reading_time)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO NOTHING
		`, a.ID, i, a.Title, a.Excerpt, a.Content, string(a.Category), a.Author, a.Date, a.ImageURL, a.Featured, pq.Array(a.Tags), a.ReadingTime)
		if err != nil {
			return 0, fmt.Errorf("insert article %s: %w", a.ID, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *ArticleRepository) List(ctx context.Context, f catalog.Filter) ([]model.Article, error) {
	category := ""
	if f.Category != model.CategoryAll {
		category = string(f.Category)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM article
		WHERE ($1 = '' OR category = $1)
			AND ($2 = '' OR strpos(lower(title), lower($2)) > 0 OR strpos(lower(excerpt), lower($2)) > 0)
		ORDER BY position ASC
	`, category, f.Query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepository) All(ctx context.Context) ([]model.Article, error) {
	return r.List(ctx, catalog.Filter{})
}

// GetByID returns nil, nil when no article has that id.
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*model.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+articleColumns+`
		FROM article
		WHERE id = $1
	`, id)

	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*model.Article, error) {
	var a model.Article
	var category string
	err := s.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &category, &a.Author, &a.Date,
		&a.ImageURL, &a.Featured, pq.Array(&a.Tags), &a.ReadingTime)
	if err != nil {
		return nil, err
	}
	a.Category = model.Category(category)
	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]model.Article, error) {
	articles := []model.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
