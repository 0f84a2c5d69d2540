package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"", CategoryAll},
		{"ai", CategoryAI},
		{"  AI ", CategoryAI},
		{"ذكاء اصطناعي", CategoryAI},
		{"الكل", CategoryAll},
		{"green", CategoryGreen},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCategory("sports")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoriesHaveLabels(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, c.Label(), string(c))
	}
}

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 1, Article{}.ReadingMinutes())
	assert.Equal(t, 1, Article{Content: "كلمة واحدة"}.ReadingMinutes())

	words := strings.Repeat("word ", 401)
	assert.Equal(t, 3, Article{Content: words}.ReadingMinutes())
}

func TestBriefingComplete(t *testing.T) {
	full := Briefing{Title: "t", Summary: "s", KeyPoints: []string{"k"}, Outlook: "o"}
	assert.True(t, full.Complete())

	missingOutlook := full
	missingOutlook.Outlook = "  "
	assert.False(t, missingOutlook.Complete())

	blankPoints := full
	blankPoints.KeyPoints = []string{"", " "}
	assert.False(t, blankPoints.Complete())

	noPoints := full
	noPoints.KeyPoints = nil
	assert.False(t, noPoints.Complete())
}

func TestReadingLabel(t *testing.T) {
	assert.Equal(t, "٥ دقائق", Article{ReadingTime: "٥ دقائق"}.ReadingLabel())
	assert.Equal(t, "1 دقيقة للقراءة", Article{Content: "نص قصير"}.ReadingLabel())
}
