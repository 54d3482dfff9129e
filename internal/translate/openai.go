package translate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient translates through a chat completion.
type OpenAIClient struct {
	client *openai.Client
	source string
	target string
}

func NewOpenAIClient(apiKey, source, target string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		source: source,
		target: target,
	}
}

func (c *OpenAIClient) Translate(ctx context.Context, text string) (string, error) {
	system := fmt.Sprintf(
		"You are a translator. Translate the user's message from language %q to language %q. Reply with only the translation, no commentary.",
		c.source, c.target,
	)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai translation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai translation: empty completion")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("openai translation: empty completion")
	}
	return translated, nil
}
