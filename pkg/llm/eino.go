package llm

import (
	"context"
	"fmt"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// EinoClient talks to any OpenAI-compatible endpoint (DeepSeek, Qwen,
// a local gateway) through the eino chat model.
type EinoClient struct {
	chatModel model.BaseChatModel
	modelName string
}

func NewEinoClient(ctx context.Context, apiKey, modelName, baseURL string) (*EinoClient, error) {
	if baseURL == "" {
		return nil, &ConfigurationError{Reason: "eino provider requires LLM_BASE_URL"}
	}

	chatModel, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("eino chat model: %w", err)
	}

	return &EinoClient{chatModel: chatModel, modelName: modelName}, nil
}

func (c *EinoClient) Name() string {
	return "eino/" + c.modelName
}

func (c *EinoClient) Generate(ctx context.Context, req Request) (string, error) {
	system := "You are a careful assistant for a business and technology magazine."
	if req.Schema != nil {
		system += "\n\n" + schemaInstruction(req.Schema)
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: system},
		{Role: schema.User, Content: req.Prompt},
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("eino generate: %w", err)
	}

	content := resp.Content
	if req.Schema != nil {
		content = cleanJSONResponse(content)
	}
	return content, nil
}
