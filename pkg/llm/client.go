package llm

import "context"

// Request is one outbound generation call. A nil Schema asks for free-form
// text; otherwise the reply must be a JSON document matching it.
type Request struct {
	Prompt string
	Schema *Schema
}

type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}
