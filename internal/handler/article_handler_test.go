package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGetArticles_ReturnArticles(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles?limit=2&offset=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.Limit)
	assert.Equal(t, 1, res.Offset)
	assert.Equal(t, 2, len(res.Articles))
	assert.Equal(t, "2", res.Articles[0].ID)
	assert.Equal(t, "ريادة أعمال", res.Articles[0].Category.Label)
	assert.Equal(t, "1 دقيقة للقراءة", res.Articles[0].ReadingTime)
}

func TestGetArticles_FilterByCategoryAndQuery(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles?category=ai", nil)
	var res FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)

	w = doRequest(r, "GET", "/articles?q=%D8%A3%D9%82%D9%85%D8%A7%D8%B1", nil)
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "4", res.Articles[0].ID)
}

func TestGetArticles_UnknownCategory(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles?category=sports", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticles_DefaultLimit(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles?limit=abc&offset=-4", nil)

	var res FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Offset)
	assert.Equal(t, 4, len(res.Articles))
}

func TestGetArticles_OffsetPastEnd(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles?offset=50", nil)

	var res FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, len(res.Articles))
}

func TestGetArticles_StoreError(t *testing.T) {
	r := newTestRouter(t, &failingStore{err: errors.New("DB down")}, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetArticle_Found(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SingleArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "1", res.ID)
	assert.Equal(t, "محتوى أول", res.Content)
	assert.Equal(t, 1, len(res.Related))
	assert.Equal(t, "3", res.Related[0].ID)
}

func TestGetArticle_NotFound(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/articles/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHome(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/home", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var res HomeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "1", res.Cover.ID)
	assert.Equal(t, 2, len(res.Hero))
	assert.Equal(t, 1, len(res.Feed))
	assert.Equal(t, 2, len(res.Featured))
	assert.Equal(t, 4, len(res.Trending))
}

func TestGetHome_FilteredKeepsFeaturedStrip(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/home?category=business", nil)

	var res HomeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "2", res.Cover.ID)
	assert.Equal(t, 0, len(res.Hero))
	assert.Equal(t, 2, len(res.Featured))
}

func TestGetCategories(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/categories", nil)

	var res []CategoryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 8, len(res))
	assert.Equal(t, "all", res[0].Slug)
	assert.Equal(t, "الكل", res[0].Label)
}

func TestGetHealth(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})
	w := doRequest(r, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	r = newTestRouter(t, &failingStore{err: errors.New("DB down")}, &fakeAssistant{})
	w = doRequest(r, "GET", "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetMetrics(t *testing.T) {
	r := newCatalogRouter(t, &fakeAssistant{})

	w := doRequest(r, "GET", "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
