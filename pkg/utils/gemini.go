package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClassifier is the Gemini-backed alternative to OpenAIClassifier,
// selected with CLASSIFIER_PROVIDER=gemini.
type GeminiClassifier struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiClassifier(apiKey, model string, timeout time.Duration) (ClassifierClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClassifier{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *GeminiClassifier) ClassifyCategories(ctx context.Context, phrase string, categories []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching is needed downstream.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(200)

	prompt := fmt.Sprintf(`%s

Pick matching category names for the request above from this list:
%s

Return a JSON array of strings only. No comments, no markdown.`, phrase, strings.Join(categories, ", "))

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini classify: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini classify: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return ParseCategoryArray(content), nil
}
