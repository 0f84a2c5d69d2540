package handler

import (
	"time"

	"nashra/internal/assistant"
	"nashra/internal/model"
	"nashra/internal/tracker"
)

type CategoryResponse struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type ArticleResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Excerpt     string           `json:"excerpt"`
	Category    CategoryResponse `json:"category"`
	Author      string           `json:"author"`
	Date        string           `json:"date"`
	ImageURL    string           `json:"image_url"`
	Featured    bool             `json:"featured"`
	Tags        []string         `json:"tags"`
	ReadingTime string           `json:"reading_time"`
}

type FeedResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type SingleArticleResponse struct {
	ArticleResponse
	Content string            `json:"content"`
	Related []ArticleResponse `json:"related"`
}

type HomeResponse struct {
	Cover    *ArticleResponse  `json:"cover"`
	Hero     []ArticleResponse `json:"hero"`
	Feed     []ArticleResponse `json:"feed"`
	Featured []ArticleResponse `json:"featured"`
	Trending []ArticleResponse `json:"trending"`
}

type BriefingRequest struct {
	Topic string `json:"topic"`
}

type BriefingResponse struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Outlook   string   `json:"outlook"`
}

// StateResponse is the request state of one subject. Result is set only
// on success and Error only on failure.
type StateResponse struct {
	Subject   string `json:"subject"`
	Status    string `json:"status"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
	Retryable bool   `json:"retryable"`
}

type SuggestionsResponse struct {
	Topics []string `json:"topics"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
}

type CommentRequest struct {
	UserName string `json:"user_name"`
	Text     string `json:"text"`
}

type CommentResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}

func toCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{Slug: string(c), Label: c.Label()}
}

func toArticleResponse(a model.Article) ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Category:    toCategoryResponse(a.Category),
		Author:      a.Author,
		Date:        a.Date,
		ImageURL:    a.ImageURL,
		Featured:    a.Featured,
		Tags:        tags,
		ReadingTime: a.ReadingLabel(),
	}
}

func toArticleResponses(articles []model.Article) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, toArticleResponse(a))
	}
	return res
}

func toBriefingResponse(b model.Briefing) BriefingResponse {
	return BriefingResponse{
		Title:     b.Title,
		Summary:   b.Summary,
		KeyPoints: b.KeyPoints,
		Outlook:   b.Outlook,
	}
}

func toStateResponse[T any](e tracker.Entry[T], result func(T) any) StateResponse {
	res := StateResponse{
		Subject:   e.Subject,
		Status:    string(e.Status),
		Retryable: e.Retryable(),
	}
	switch e.Status {
	case tracker.StatusSuccess:
		res.Result = result(e.Result)
	case tracker.StatusError:
		res.Error = assistant.Message(e.Err)
	}
	return res
}

func summaryResult(s string) any {
	return s
}

func briefingResult(b model.Briefing) any {
	return toBriefingResponse(b)
}

func toCommentResponse(c model.Comment) CommentResponse {
	return CommentResponse{
		ID:       c.ID,
		UserName: c.UserName,
		Text:     c.Text,
		Date:     c.Date.Format(time.RFC3339),
	}
}
