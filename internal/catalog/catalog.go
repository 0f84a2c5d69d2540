// Package catalog holds the static article collection and the pure
// selection rules the views are built from.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"nashra/internal/model"
)

//go:embed seed/articles.yaml
var seedArticles []byte

type View string

const (
	ViewHome     View = "home"
	ViewCategory View = "category"
	ViewArticle  View = "article"
	ViewAnalyst  View = "analyst"
)

const (
	RelatedLimit  = 3
	TrendingLimit = 5
	FeaturedLimit = 3
)

// SuggestedTopics are offered to readers on the analyst view.
var SuggestedTopics = []string{
	"مستقبل الذكاء الاصطناعي",
	"التجارة الإلكترونية 2024",
	"التقنية المالية في السعودية",
	"الطاقة المتجددة",
	"الأمن السيبراني",
}

var ErrDuplicateID = errors.New("duplicate article id")

// Catalog is an immutable in-memory article collection.
type Catalog struct {
	articles []model.Article
	byID     map[string]int
}

// Default loads the embedded seed collection.
func Default() (*Catalog, error) {
	return Load(seedArticles)
}

// Load parses a YAML list of articles. Articles must have an ID and a
// concrete category; IDs must be unique.
func Load(data []byte) (*Catalog, error) {
	var articles []model.Article
	if err := yaml.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parse articles: %w", err)
	}
	return New(articles)
}

func New(articles []model.Article) (*Catalog, error) {
	c := &Catalog{
		articles: make([]model.Article, 0, len(articles)),
		byID:     make(map[string]int, len(articles)),
	}

	for _, a := range articles {
		a.ID = strings.TrimSpace(a.ID)
		if a.ID == "" {
			return nil, fmt.Errorf("article %q: missing id", a.Title)
		}
		if _, ok := c.byID[a.ID]; ok {
			return nil, fmt.Errorf("article %s: %w", a.ID, ErrDuplicateID)
		}
		cat, err := model.ParseCategory(string(a.Category))
		if err != nil || cat == model.CategoryAll {
			return nil, fmt.Errorf("article %s: category %q: %w", a.ID, a.Category, model.ErrUnknownCategory)
		}
		a.Category = cat
		a.Content = strings.TrimSpace(a.Content)

		c.byID[a.ID] = len(c.articles)
		c.articles = append(c.articles, a)
	}
	return c, nil
}

// Articles returns a copy of the collection in seed order.
func (c *Catalog) Articles() []model.Article {
	out := make([]model.Article, len(c.articles))
	copy(out, c.articles)
	return out
}

func (c *Catalog) Get(id string) (model.Article, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Article{}, false
	}
	return c.articles[i], true
}

func (c *Catalog) List(_ context.Context, f Filter) ([]model.Article, error) {
	return Apply(c.articles, f), nil
}

// GetByID returns nil, nil when id is unknown.
func (c *Catalog) GetByID(_ context.Context, id string) (*model.Article, error) {
	a, ok := c.Get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (c *Catalog) All(_ context.Context) ([]model.Article, error) {
	return c.Articles(), nil
}

func (c *Catalog) Ping(_ context.Context) error {
	return nil
}
