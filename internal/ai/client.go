// Package ai wraps the chat-completion API used as an optional fallback when
// keyword categorization finds nothing.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

const systemPrompt = `You sort short journal notes into categories.
Reply with exactly one category name from the list the user provides, nothing else.
If none fits, reply with the last category in the list.`

// Categorize asks the model to pick one of the given category names for the
// note text. The returned name is always one of categories; anything else the
// model says is treated as the last (fallback) category.
func (c *Client) Categorize(ctx context.Context, text string, categories []string) (string, error) {
	if len(categories) == 0 {
		return "", fmt.Errorf("no categories to choose from")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Categories: %s\n\nNote: %s", strings.Join(categories, ", "), text),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	for _, name := range categories {
		if strings.EqualFold(answer, name) {
			return name, nil
		}
	}
	return categories[len(categories)-1], nil
}
