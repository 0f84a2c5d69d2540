package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nashra/internal/model"
)

const (
	AnonymousClient   = "anonymous"
	AnonymousUserName = "قارئ مجهول"
	DefaultTTL        = 30 * 24 * time.Hour
)

var ErrEmptyComment = errors.New("comment text is empty")

// Service stores likes and comments per client and article. Updates for
// the same process are serialized; concurrent writers in other processes
// may overwrite each other, which is acceptable for convenience state.
type Service struct {
	store Store
	ttl   time.Duration
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewService(store Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ClientID normalizes a client identifier, falling back to anonymous.
func ClientID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AnonymousClient
	}
	return raw
}

func likeKey(client, articleID string) string {
	return fmt.Sprintf("nashra:%s:likes:%s", ClientID(client), articleID)
}

func commentsKey(client, articleID string) string {
	return fmt.Sprintf("nashra:%s:comments:%s", ClientID(client), articleID)
}

func (s *Service) IsLiked(ctx context.Context, client, articleID string) (bool, error) {
	_, err := s.store.Get(ctx, likeKey(client, articleID))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get like: %w", err)
	}
	return true, nil
}

// ToggleLike flips the like state and returns the new one.
func (s *Service) ToggleLike(ctx context.Context, client, articleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked, err := s.IsLiked(ctx, client, articleID)
	if err != nil {
		return false, err
	}

	key := likeKey(client, articleID)
	if liked {
		if err := s.store.Delete(ctx, key); err != nil {
			return false, fmt.Errorf("delete like: %w", err)
		}
		return false, nil
	}

	if err := s.store.Set(ctx, key, "1", s.ttl); err != nil {
		return false, fmt.Errorf("set like: %w", err)
	}
	return true, nil
}

// Comments returns the comments on an article, newest first.
func (s *Service) Comments(ctx context.Context, client, articleID string) ([]model.Comment, error) {
	raw, err := s.store.Get(ctx, commentsKey(client, articleID))
	if errors.Is(err, ErrNotFound) {
		return []model.Comment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	var comments []model.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

func (s *Service) AddComment(ctx context.Context, client, articleID, userName, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = AnonymousUserName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.Comments(ctx, client, articleID)
	if err != nil {
		return nil, err
	}

	c := model.Comment{
		ID:       s.newID(),
		UserName: userName,
		Text:     text,
		Date:     s.now(),
	}
	comments = append([]model.Comment{c}, comments...)

	if err := s.saveComments(ctx, client, articleID, comments); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteComment removes a comment. It reports false when no comment had
// that ID.
func (s *Service) DeleteComment(ctx context.Context, client, articleID, commentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.Comments(ctx, client, articleID)
	if err != nil {
		return false, err
	}

	kept := comments[:0]
	for _, c := range comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(comments) {
		return false, nil
	}

	if len(kept) == 0 {
		if err := s.store.Delete(ctx, commentsKey(client, articleID)); err != nil {
			return false, fmt.Errorf("delete comments: %w", err)
		}
		return true, nil
	}
	return true, s.saveComments(ctx, client, articleID, kept)
}

func (s *Service) saveComments(ctx context.Context, client, articleID string, comments []model.Comment) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}
	if err := s.store.Set(ctx, commentsKey(client, articleID), string(data), s.ttl); err != nil {
		return fmt.Errorf("set comments: %w", err)
	}
	return nil
}
