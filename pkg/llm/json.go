package llm

import "strings"

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// CleanJSON strips code fences and surrounding prose from a model reply
// that was asked to contain a single JSON object.
func CleanJSON(content string) string {
	return cleanJSONResponse(content)
}

// schemaInstruction is appended to the system prompt of providers that
// cannot enforce a schema natively.
func schemaInstruction(s *Schema) string {
	return "Output JSON only, no other text, matching this JSON Schema:\n" + s.describe()
}
