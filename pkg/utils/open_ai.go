package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const classifySystemPrompt = "Return JSON array of category names from provided list. If none match, suggest a new category."

// OpenAIClassifier maps a step phrase onto the category vocabulary with a
// chat completion call.
type OpenAIClassifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIClassifier(apiKey, model string, timeout time.Duration) ClassifierClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClassifier{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (c *OpenAIClassifier) ClassifyCategories(ctx context.Context, phrase string, categories []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("%s\nCategories:\n%s", phrase, strings.Join(categories, ", "))},
		},
		Temperature: 0,
		MaxTokens:   200,
	})
	if err != nil {
		return nil, fmt.Errorf("openai classify: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai classify: empty response")
	}

	return ParseCategoryArray(resp.Choices[0].Message.Content), nil
}
