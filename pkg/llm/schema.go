package llm

import "encoding/json"

type Type string

const (
	TypeObject Type = "object"
	TypeString Type = "string"
	TypeArray  Type = "array"
)

// Schema is the subset of JSON Schema the providers can all express.
// Order keeps property order stable for providers that honour it.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	Order       []string
	Items       *Schema
	Required    []string
}

// JSONSchema renders s as a plain JSON Schema document. Objects are closed
// (additionalProperties false) so strict structured output accepts them.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}

	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if s.Type == TypeObject {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
		out["additionalProperties"] = false
		if len(s.Required) > 0 {
			out["required"] = s.Required
		}
	}
	return out
}

// describe is used by providers without native schema support: the schema
// is spelled out in the system prompt instead.
func (s *Schema) describe() string {
	b, err := json.Marshal(s.JSONSchema())
	if err != nil {
		return ""
	}
	return string(b)
}
