package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nashra/internal/catalog"
	"nashra/internal/model"
)

var columns = []string{"id", "title", "excerpt", "content", "category", "author", "date", "image_url", "featured", "tags", "reading_time"}

func newMockRepo(t *testing.T) (*ArticleRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewArticleRepository(db), mock
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS article")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestSeedSkipsExisting(t *testing.T) {
	repo, mock := newMockRepo(t)
	articles := []model.Article{
		{ID: "1", Title: "أ", Category: model.CategoryAI, Tags: []string{"ذكاء"}},
		{ID: "2", Title: "ب", Category: model.CategoryTech},
	}

	insert := regexp.QuoteMeta("INSERT INTO article(") + ".*" + regexp.QuoteMeta("ON CONFLICT (id) DO NOTHING")
	mock.ExpectBegin()
	mock.ExpectExec(insert).
		WithArgs("1", 0, "أ", "", "", "ai", "", "", "", false, sqlmock.AnyArg(), "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).
		WithArgs("2", 1, "ب", "", "", "tech", "", "", "", false, sqlmock.AnyArg(), "").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := repo.Seed(context.Background(), articles)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedRollsBackOnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO article").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Seed(context.Background(), []model.Article{{ID: "1", Category: model.CategoryAI}})

	assert.ErrorContains(t, err, "insert article 1")
}

func TestListFiltersInQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(columns).
		AddRow("1", "الذكاء الاصطناعي", "مقتطف", "محتوى", "ai", "سارة", "12 مارس 2024", "https://img", true, "{ذكاء,الخليج}", "").
		AddRow("8", "وكلاء", "مقتطف", "محتوى", "ai", "سارة", "25 فبراير 2024", "https://img", false, "{}", "3 دقائق")
	mock.ExpectQuery(regexp.QuoteMeta("FROM article")).
		WithArgs("ai", "ذكاء").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), catalog.Filter{Category: model.CategoryAI, Query: "ذكاء"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, model.CategoryAI, got[0].Category)
	assert.Equal(t, []string{"ذكاء", "الخليج"}, got[0].Tags)
	assert.True(t, got[0].Featured)
	assert.Equal(t, "3 دقائق", got[1].ReadingTime)
}

func TestAllUsesNoFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM article")).
		WithArgs("", "").
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.All(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListTreatsAllAsNoCategory(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM article")).
		WithArgs("", "").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.List(context.Background(), catalog.Filter{Category: model.CategoryAll})
	assert.NoError(t, err)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("3").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("3", "عملات", "مقتطف", "محتوى", "crypto", "عمر", "8 مارس 2024", "", false, "{}", ""))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("404").
		WillReturnRows(sqlmock.NewRows(columns))

	a, err := repo.GetByID(context.Background(), "3")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, model.CategoryCrypto, a.Category)

	missing, err := repo.GetByID(context.Background(), "404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeedDefaultCatalog(t *testing.T) {
	repo, mock := newMockRepo(t)
	c, err := catalog.Default()
	require.NoError(t, err)
	articles := c.Articles()

	mock.ExpectBegin()
	for range articles {
		mock.ExpectExec("INSERT INTO article").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	n, err := repo.Seed(context.Background(), articles)
	require.NoError(t, err)
	assert.Equal(t, len(articles), n)
}
