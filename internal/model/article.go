package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const wordsPerMinute = 200

type Category string

const (
	CategoryAll      Category = "all"
	CategoryTech     Category = "tech"
	CategoryStartups Category = "startups"
	CategoryBusiness Category = "business"
	CategoryAI       Category = "ai"
	CategoryCrypto   Category = "crypto"
	CategorySpace    Category = "space"
	CategoryGreen    Category = "green"
)

var ErrUnknownCategory = errors.New("unknown category")

var categoryLabels = map[Category]string{
	CategoryAll:      "الكل",
	CategoryTech:     "تقنية",
	CategoryStartups: "شركات ناشئة",
	CategoryBusiness: "ريادة أعمال",
	CategoryAI:       "ذكاء اصطناعي",
	CategoryCrypto:   "عملات رقمية",
	CategorySpace:    "فضاء",
	CategoryGreen:    "تقنية خضراء",
}

// Categories lists every category in display order, starting with the
// "all" pseudo-category.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryTech,
		CategoryStartups,
		CategoryBusiness,
		CategoryAI,
		CategoryCrypto,
		CategorySpace,
		CategoryGreen,
	}
}

func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory accepts either a slug ("ai") or its display label.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, nil
	}

	slug := Category(strings.ToLower(s))
	if _, ok := categoryLabels[slug]; ok {
		return slug, nil
	}

	for c, label := range categoryLabels {
		if label == s {
			return c, nil
		}
	}

	return "", ErrUnknownCategory
}

type Article struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Excerpt     string   `yaml:"excerpt"`
	Content     string   `yaml:"content"`
	Category    Category `yaml:"category"`
	Author      string   `yaml:"author"`
	Date        string   `yaml:"date"`
	ImageURL    string   `yaml:"image_url"`
	Featured    bool     `yaml:"featured"`
	Tags        []string `yaml:"tags"`
	ReadingTime string   `yaml:"reading_time"`
}

// ReadingLabel is the precomputed reading time if present, otherwise the
// estimate from ReadingMinutes.
func (a Article) ReadingLabel() string {
	if strings.TrimSpace(a.ReadingTime) != "" {
		return a.ReadingTime
	}
	return fmt.Sprintf("%d دقيقة للقراءة", a.ReadingMinutes())
}

func (a Article) ReadingMinutes() int {
	words := len(strings.Fields(a.Content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

type Comment struct {
	ID       string    `json:"id"`
	UserName string    `json:"user_name"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
}
