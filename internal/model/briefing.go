package model

import "strings"

type Briefing struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Outlook   string   `json:"outlook"`
}

// Complete reports whether every field is populated. Blank key points are
// ignored, but at least one must remain.
func (b Briefing) Complete() bool {
	if strings.TrimSpace(b.Title) == "" ||
		strings.TrimSpace(b.Summary) == "" ||
		strings.TrimSpace(b.Outlook) == "" {
		return false
	}

	for _, p := range b.KeyPoints {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
