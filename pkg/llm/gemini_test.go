package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGeminiGenerate(t *testing.T) {
	var body string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		path = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": `{"title":"t"}`}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer srv.Close()

	client, err := NewGeminiClient(context.Background(), "test-key", "", srv.URL)
	assert.Equal(t, nil, err)

	schema := &Schema{
		Type:       TypeObject,
		Properties: map[string]*Schema{"title": {Type: TypeString}},
		Order:      []string{"title"},
		Required:   []string{"title"},
	}
	got, err := client.Generate(context.Background(), Request{Prompt: "brief me on AI", Schema: schema})

	assert.Equal(t, nil, err)
	assert.Equal(t, `{"title":"t"}`, got)
	assert.Equal(t, true, strings.Contains(path, DefaultGeminiModel))
	assert.Equal(t, true, strings.Contains(body, "brief me on AI"))
	assert.Equal(t, true, strings.Contains(body, "application/json"))
}

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(&Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"keyPoints": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
		Order:    []string{"keyPoints"},
		Required: []string{"keyPoints"},
	})

	assert.Equal(t, "OBJECT", string(s.Type))
	assert.Equal(t, "ARRAY", string(s.Properties["keyPoints"].Type))
	assert.Equal(t, "STRING", string(s.Properties["keyPoints"].Items.Type))
	assert.Equal(t, []string{"keyPoints"}, s.PropertyOrdering)
}
