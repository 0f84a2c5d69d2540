package assistant

import (
	"context"
	"log/slog"
	"strings"

	"nashra/internal/metrics"
	"nashra/internal/model"
	"nashra/internal/tracker"
)

// Assistant is the model-facing half of the service.
type Assistant interface {
	Summarize(ctx context.Context, title, content string) (string, error)
	Brief(ctx context.Context, topic string) (*model.Briefing, error)
}

// Service keeps the request state of summaries and briefings per subject on
// top of an Assistant.
type Service struct {
	assistant Assistant
	summaries *tracker.Tracker[string]
	briefings *tracker.Tracker[model.Briefing]
}

func NewService(a Assistant, opts tracker.Options) (*Service, error) {
	summaries, err := tracker.New[string](observed(OpSummary, opts))
	if err != nil {
		return nil, err
	}
	briefings, err := tracker.New[model.Briefing](observed(OpBriefing, opts))
	if err != nil {
		return nil, err
	}

	return &Service{
		assistant: a,
		summaries: summaries,
		briefings: briefings,
	}, nil
}

// SummarizeArticle returns the cached summary of a or requests one.
func (s *Service) SummarizeArticle(ctx context.Context, a model.Article) (tracker.Entry[string], error) {
	return s.summaries.Do(ctx, ArticleSubject(a.ID), func(ctx context.Context) (string, error) {
		return s.assistant.Summarize(ctx, a.Title, a.Content)
	})
}

func (s *Service) SummaryState(articleID string) tracker.Entry[string] {
	return s.summaries.Get(ArticleSubject(articleID))
}

// Brief returns the cached briefing for topic or requests one. Topics that
// differ only in case or spacing share a subject.
func (s *Service) Brief(ctx context.Context, topic string) (tracker.Entry[model.Briefing], error) {
	subject := TopicSubject(topic)
	if subject == "" {
		return tracker.Entry[model.Briefing]{Status: tracker.StatusIdle}, ErrEmptySubject
	}

	return s.briefings.Do(ctx, subject, func(ctx context.Context) (model.Briefing, error) {
		b, err := s.assistant.Brief(ctx, topic)
		if err != nil {
			return model.Briefing{}, err
		}
		return *b, nil
	})
}

func (s *Service) BriefingState(topic string) tracker.Entry[model.Briefing] {
	return s.briefings.Get(TopicSubject(topic))
}

func (s *Service) ForgetSummary(articleID string) {
	s.summaries.Forget(ArticleSubject(articleID))
}

func (s *Service) ForgetBriefing(topic string) {
	s.briefings.Forget(TopicSubject(topic))
}

func ArticleSubject(id string) string {
	return "article:" + id
}

// TopicSubject trims, collapses inner whitespace and case-folds topic.
func TopicSubject(topic string) string {
	return strings.ToLower(strings.Join(strings.Fields(topic), " "))
}

func observed(op string, opts tracker.Options) tracker.Options {
	onTransition := opts.OnTransition
	onCacheHit := opts.OnCacheHit

	opts.OnTransition = func(subject string, from, to tracker.Status) {
		metrics.RecordTransition(op, string(to))
		slog.Debug("Request state changed", "operation", op, "subject", subject, "from", from, "to", to)
		if onTransition != nil {
			onTransition(subject, from, to)
		}
	}
	opts.OnCacheHit = func(subject string) {
		metrics.RecordCacheHit(op)
		if onCacheHit != nil {
			onCacheHit(subject)
		}
	}
	return opts
}
