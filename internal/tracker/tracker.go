// Package tracker keeps the request state of AI calls per subject.
//
// A subject (an article or a topic) moves idle -> loading -> success|error.
// A successful result is served from cache until the subject is forgotten
// or evicted; an error stays visible until the caller explicitly asks
// again, which re-enters loading. At most one fetch per subject is in
// flight; concurrent callers share it.
package tracker

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultSize    = 256
	DefaultTimeout = 30 * time.Second
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

type Entry[T any] struct {
	Subject   string
	Status    Status
	Result    T
	Err       error
	UpdatedAt time.Time
}

// Retryable is true when the last attempt failed and a new one may be
// requested.
func (e Entry[T]) Retryable() bool {
	return e.Status == StatusError
}

type Options struct {
	// Size bounds the number of finished entries kept.
	Size int
	// Timeout bounds a single fetch. The fetch is detached from the
	// caller's cancellation so an abandoned request still fills the cache.
	Timeout      time.Duration
	OnTransition func(subject string, from, to Status)
	OnCacheHit   func(subject string)
}

type Tracker[T any] struct {
	mu      sync.Mutex
	done    *lru.Cache[string, Entry[T]]
	loading map[string]Entry[T]
	group   singleflight.Group
	opts    Options
	now     func() time.Time
}

func New[T any](opts Options) (*Tracker[T], error) {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	done, err := lru.New[string, Entry[T]](opts.Size)
	if err != nil {
		return nil, err
	}

	return &Tracker[T]{
		done:    done,
		loading: make(map[string]Entry[T]),
		opts:    opts,
		now:     time.Now,
	}, nil
}

// Get returns the current state of subject without triggering anything.
func (t *Tracker[T]) Get(subject string) Entry[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.loading[subject]; ok {
		return e
	}
	if e, ok := t.done.Get(subject); ok {
		return e
	}
	return Entry[T]{Subject: subject, Status: StatusIdle}
}

// Do returns the cached success for subject or runs fetch. Callers that
// arrive while a fetch is running wait for it instead of starting another.
// If ctx ends first, Do returns the loading entry and ctx.Err().
func (t *Tracker[T]) Do(ctx context.Context, subject string, fetch func(context.Context) (T, error)) (Entry[T], error) {
	if e, ok := t.cachedSuccess(subject); ok {
		return e, nil
	}

	ch := t.group.DoChan(subject, func() (any, error) {
		return t.run(ctx, subject, fetch), nil
	})

	select {
	case res := <-ch:
		e := res.Val.(Entry[T])
		if e.Status == StatusError {
			return e, e.Err
		}
		return e, nil
	case <-ctx.Done():
		return t.Get(subject), ctx.Err()
	}
}

// Forget drops the finished state of subject. A fetch already in flight
// still completes and records its result.
func (t *Tracker[T]) Forget(subject string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done.Remove(subject)
}

func (t *Tracker[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done.Len() + len(t.loading)
}

func (t *Tracker[T]) cachedSuccess(subject string) (Entry[T], bool) {
	t.mu.Lock()
	e, ok := t.done.Get(subject)
	t.mu.Unlock()

	if !ok || e.Status != StatusSuccess {
		return Entry[T]{}, false
	}
	if t.opts.OnCacheHit != nil {
		t.opts.OnCacheHit(subject)
	}
	return e, true
}

func (t *Tracker[T]) run(ctx context.Context, subject string, fetch func(context.Context) (T, error)) Entry[T] {
	t.mu.Lock()
	// A flight that finished just before this one started may have filled
	// the cache already.
	if e, ok := t.done.Get(subject); ok && e.Status == StatusSuccess {
		t.mu.Unlock()
		return e
	}
	from := StatusIdle
	if e, ok := t.done.Peek(subject); ok {
		from = e.Status
	}
	t.loading[subject] = Entry[T]{Subject: subject, Status: StatusLoading, UpdatedAt: t.now()}
	t.mu.Unlock()
	t.notify(subject, from, StatusLoading)

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.opts.Timeout)
	defer cancel()
	result, err := fetch(fctx)

	e := Entry[T]{Subject: subject, UpdatedAt: t.now()}
	if err != nil {
		e.Status = StatusError
		e.Err = err
	} else {
		e.Status = StatusSuccess
		e.Result = result
	}

	t.mu.Lock()
	delete(t.loading, subject)
	t.done.Add(subject, e)
	t.mu.Unlock()
	t.notify(subject, StatusLoading, e.Status)

	return e
}

func (t *Tracker[T]) notify(subject string, from, to Status) {
	if t.opts.OnTransition != nil {
		t.opts.OnTransition(subject, from, to)
	}
}
