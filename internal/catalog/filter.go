package catalog

import (
	"strings"

	"nashra/internal/model"
)

// Filter selects the visible list. A zero Filter matches everything.
type Filter struct {
	Category model.Category
	Query    string
}

func (f Filter) Match(a model.Article) bool {
	if f.Category != "" && f.Category != model.CategoryAll && a.Category != f.Category {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q)
}

func Apply(articles []model.Article, f Filter) []model.Article {
	out := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// Layout is the home page arrangement.
type Layout struct {
	Cover    *model.Article
	Hero     []model.Article
	Feed     []model.Article
	Featured []model.Article
	Trending []model.Article
}

// Home puts the first featured visible article (or the first visible one)
// on the cover, the next two in the hero strip and the rest in the feed.
// Featured and trending strips always come from the whole collection.
func Home(articles, all []model.Article) Layout {
	l := Layout{
		Hero:     []model.Article{},
		Feed:     []model.Article{},
		Featured: Featured(all, FeaturedLimit),
		Trending: Trending(all, TrendingLimit),
	}
	if len(articles) == 0 {
		return l
	}

	coverIdx := 0
	for i, a := range articles {
		if a.Featured {
			coverIdx = i
			break
		}
	}
	cover := articles[coverIdx]
	l.Cover = &cover

	rest := make([]model.Article, 0, len(articles)-1)
	rest = append(rest, articles[:coverIdx]...)
	rest = append(rest, articles[coverIdx+1:]...)

	n := min(2, len(rest))
	l.Hero = append(l.Hero, rest[:n]...)
	l.Feed = append(l.Feed, rest[n:]...)
	return l
}

func Featured(articles []model.Article, n int) []model.Article {
	out := []model.Article{}
	for _, a := range articles {
		if len(out) == n {
			break
		}
		if a.Featured {
			out = append(out, a)
		}
	}
	return out
}

// Related returns up to n other articles of the same category.
func Related(articles []model.Article, article model.Article, n int) []model.Article {
	out := []model.Article{}
	for _, a := range articles {
		if len(out) == n {
			break
		}
		if a.Category == article.Category && a.ID != article.ID {
			out = append(out, a)
		}
	}
	return out
}

func Trending(articles []model.Article, n int) []model.Article {
	if n > len(articles) {
		n = len(articles)
	}
	if n < 0 {
		n = 0
	}
	out := make([]model.Article, n)
	copy(out, articles[:n])
	return out
}
