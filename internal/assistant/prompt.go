package assistant

import (
	"fmt"

	"nashra/pkg/llm"
)

const DefaultPublication = "Entrepreneur NASHRA"

// MaxExcerptRunes bounds how much article content is embedded in a summary
// prompt. Counted in runes so Arabic text is never cut mid-character.
const MaxExcerptRunes = 2000

const summaryPromptTemplate = `You are the smart assistant of "%s", a magazine for entrepreneurs and technologists.
Summarize the following article in at most 3 short, catchy bullet points, written in Arabic.
Keep only what is useful to entrepreneurs and technology professionals.

Article title: "%s"
Content: "%s"`

const briefingPromptTemplate = `You are an expert business and technology analyst writing for "%s".
Write a concise analytical briefing on the topic: "%s".
Write in professional Modern Standard Arabic.

The response must be a JSON object with:
- title: a catchy headline for the briefing
- summary: an executive summary of about 50 words
- keyPoints: 3 to 5 key points or expected statistics
- outlook: a short forward look of about 20 words`

// briefingSchema is the structure every briefing reply must follow.
var briefingSchema = &llm.Schema{
	Type: llm.TypeObject,
	Properties: map[string]*llm.Schema{
		"title":     {Type: llm.TypeString, Description: "Catchy headline"},
		"summary":   {Type: llm.TypeString, Description: "Executive summary"},
		"keyPoints": {Type: llm.TypeArray, Items: &llm.Schema{Type: llm.TypeString}, Description: "Key points or statistics"},
		"outlook":   {Type: llm.TypeString, Description: "Future outlook"},
	},
	Order:    []string{"title", "summary", "keyPoints", "outlook"},
	Required: []string{"title", "summary", "keyPoints", "outlook"},
}

// Excerpt returns at most MaxExcerptRunes runes of content.
func Excerpt(content string) string {
	n := 0
	for i := range content {
		if n == MaxExcerptRunes {
			return content[:i]
		}
		n++
	}
	return content
}

func summaryPrompt(publication, title, content string) string {
	return fmt.Sprintf(summaryPromptTemplate, publication, title, Excerpt(content))
}

func briefingPrompt(publication, topic string) string {
	return fmt.Sprintf(briefingPromptTemplate, publication, topic)
}
