// Package assistant turns reader intents into single calls to a hosted
// language model: a short summary of an article or an analytical briefing
// on a topic.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"nashra/internal/metrics"
	"nashra/internal/model"
	"nashra/pkg/llm"
)

const (
	OpSummary  = "summary"
	OpBriefing = "briefing"
)

// Reader-facing messages.
const (
	MsgMissingKey      = "مفتاح API غير متوفر"
	MsgNoResponse      = "لم يتم استلام رد من النموذج"
	MsgSummaryFailed   = "عذراً، فشل توليد الملخص الذكي."
	MsgBriefingFailed  = "حدث خطأ أثناء توليد التحليل. يرجى المحاولة لاحقاً."
	MsgEmptySubject    = "يرجى إدخال موضوع للتحليل."
	MsgUnexpectedError = "حدث خطأ غير متوقع. يرجى المحاولة لاحقاً."
)

var ErrEmptySubject = errors.New("empty subject")

// Factory builds a generator for the given API key.
type Factory func(ctx context.Context, apiKey string) (llm.Generator, error)

// ProviderFactory binds cfg to llm.NewGenerator and applies limiter to
// every generator it builds.
func ProviderFactory(cfg llm.Config, limiter *rate.Limiter) Factory {
	return func(ctx context.Context, apiKey string) (llm.Generator, error) {
		gen, err := llm.NewGenerator(ctx, cfg, apiKey)
		if err != nil {
			return nil, err
		}
		return llm.WithRateLimit(gen, limiter), nil
	}
}

type Client struct {
	creds       llm.Credentials
	factory     Factory
	publication string

	mu  sync.Mutex
	key string
	gen llm.Generator
}

func NewClient(creds llm.Credentials, factory Factory, publication string) *Client {
	if strings.TrimSpace(publication) == "" {
		publication = DefaultPublication
	}
	return &Client{
		creds:       creds,
		factory:     factory,
		publication: publication,
	}
}

// Summarize asks for a short free-form summary of an article. Only the
// first MaxExcerptRunes runes of content are sent.
func (c *Client) Summarize(ctx context.Context, title, content string) (string, error) {
	gen, err := c.generator(ctx)
	if err != nil {
		metrics.RecordRequest(OpSummary, "config_error")
		return "", err
	}

	text, err := c.call(ctx, gen, OpSummary, llm.Request{
		Prompt: summaryPrompt(c.publication, title, content),
	})
	if err != nil {
		metrics.RecordRequest(OpSummary, "upstream_error")
		return "", &llm.UpstreamError{Op: OpSummary, Message: MsgSummaryFailed, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		metrics.RecordRequest(OpSummary, "upstream_error")
		return "", &llm.UpstreamError{Op: OpSummary, Message: MsgNoResponse, Err: errors.New("empty response")}
	}

	metrics.RecordRequest(OpSummary, "success")
	return text, nil
}

// Brief asks for a structured briefing on topic. The result is returned
// only when every field is populated.
func (c *Client) Brief(ctx context.Context, topic string) (*model.Briefing, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptySubject
	}

	gen, err := c.generator(ctx)
	if err != nil {
		metrics.RecordRequest(OpBriefing, "config_error")
		return nil, err
	}

	text, err := c.call(ctx, gen, OpBriefing, llm.Request{
		Prompt: briefingPrompt(c.publication, topic),
		Schema: briefingSchema,
	})
	if err != nil {
		metrics.RecordRequest(OpBriefing, "upstream_error")
		return nil, &llm.UpstreamError{Op: OpBriefing, Message: MsgBriefingFailed, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordRequest(OpBriefing, "upstream_error")
		return nil, &llm.UpstreamError{Op: OpBriefing, Message: MsgNoResponse, Err: errors.New("empty response")}
	}

	b, err := parseBriefing(text)
	if err != nil {
		metrics.RecordRequest(OpBriefing, "upstream_error")
		slog.Warn("Discarding malformed briefing", "topic", topic, "model", gen.Name(), "error", err)
		return nil, &llm.UpstreamError{Op: OpBriefing, Message: MsgBriefingFailed, Err: err}
	}

	metrics.RecordRequest(OpBriefing, "success")
	return b, nil
}

// generator returns the generator for the current key. The key is read on
// every call; a new key replaces the cached generator.
func (c *Client) generator(ctx context.Context) (llm.Generator, error) {
	key := ""
	if c.creds != nil {
		key = c.creds.APIKey()
	}
	if key == "" {
		return nil, &llm.ConfigurationError{Reason: "API key is not set"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != nil && c.key == key {
		return c.gen, nil
	}

	gen, err := c.factory(ctx, key)
	if err != nil {
		var cfgErr *llm.ConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, cfgErr
		}
		return nil, &llm.ConfigurationError{Reason: err.Error()}
	}

	c.key = key
	c.gen = gen
	return gen, nil
}

func (c *Client) call(ctx context.Context, gen llm.Generator, op string, req llm.Request) (string, error) {
	start := time.Now()
	text, err := gen.Generate(ctx, req)
	metrics.RecordLLMCall(gen.Name(), op, time.Since(start).Seconds())
	if err != nil {
		slog.Error("LLM call failed", "operation", op, "model", gen.Name(), "error", err)
		return "", err
	}
	return text, nil
}

func parseBriefing(text string) (*model.Briefing, error) {
	var b model.Briefing
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &b); err != nil {
		return nil, fmt.Errorf("parse briefing: %w", err)
	}

	b.Title = strings.TrimSpace(b.Title)
	b.Summary = strings.TrimSpace(b.Summary)
	b.Outlook = strings.TrimSpace(b.Outlook)
	points := make([]string, 0, len(b.KeyPoints))
	for _, p := range b.KeyPoints {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	b.KeyPoints = points

	if !b.Complete() {
		return nil, errors.New("briefing is missing required fields")
	}
	return &b, nil
}

// Message maps err to the text shown to readers.
func Message(err error) string {
	var cfgErr *llm.ConfigurationError
	var upErr *llm.UpstreamError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptySubject):
		return MsgEmptySubject
	case errors.As(err, &cfgErr):
		return MsgMissingKey
	case errors.As(err, &upErr) && upErr.Message != "":
		return upErr.Message
	default:
		return MsgUnexpectedError
	}
}
