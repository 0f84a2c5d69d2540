package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"nashra/internal/assistant"
	"nashra/internal/catalog"
	"nashra/internal/model"
	"nashra/internal/prefs"
	"nashra/internal/tracker"
)

var testArticles = []model.Article{
	{ID: "1", Title: "الذكاء الاصطناعي في الخليج", Excerpt: "نماذج لغوية", Content: "محتوى أول", Category: model.CategoryAI, Featured: true},
	{ID: "2", Title: "التقنية المالية", Excerpt: "مدفوعات", Content: "محتوى ثان", Category: model.CategoryBusiness},
	{ID: "3", Title: "وكلاء أذكياء", Excerpt: "مستقبل العمل", Content: "محتوى ثالث", Category: model.CategoryAI},
	{ID: "4", Title: "الفضاء التجاري", Excerpt: "أقمار", Content: "محتوى رابع", Category: model.CategorySpace, Featured: true},
}

type fakeAssistant struct {
	mu        sync.Mutex
	summaries int
	briefs    int
	err       error
}

func (f *fakeAssistant) Summarize(_ context.Context, title, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries++
	if f.err != nil {
		return "", f.err
	}
	return "ملخص: " + title, nil
}

func (f *fakeAssistant) Brief(_ context.Context, topic string) (*model.Briefing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.briefs++
	if f.err != nil {
		return nil, f.err
	}
	return &model.Briefing{
		Title:     "تحليل: " + topic,
		Summary:   "ملخص تنفيذي",
		KeyPoints: []string{"نقطة"},
		Outlook:   "نظرة",
	}, nil
}

func (f *fakeAssistant) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

type failingStore struct {
	err error
}

func (f *failingStore) List(context.Context, catalog.Filter) ([]model.Article, error) {
	return nil, f.err
}

func (f *failingStore) GetByID(context.Context, string) (*model.Article, error) {
	return nil, f.err
}

func (f *failingStore) All(context.Context) ([]model.Article, error) {
	return nil, f.err
}

func (f *failingStore) Ping(context.Context) error {
	return f.err
}

func newTestRouter(t *testing.T, store ArticleStore, ai assistant.Assistant) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := assistant.NewService(ai, tracker.Options{Size: 16})
	if err != nil {
		t.Fatal(err)
	}

	return NewRouter(RouterConfig{
		Articles:  store,
		Assistant: svc,
		Prefs:     prefs.NewService(prefs.NewMemoryStore(), 0),
	})
}

func newCatalogRouter(t *testing.T, ai assistant.Assistant) *gin.Engine {
	t.Helper()
	store, err := catalog.New(testArticles)
	if err != nil {
		t.Fatal(err)
	}
	return newTestRouter(t, store, ai)
}

func doRequest(r *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
