package utils

import (
	"context"
	"encoding/json"
	"strings"
)

// ClassifierClientInterface is the language-model fallback used when the
// deterministic vocabulary pass finds nothing. Implementations return the
// model's proposed category names verbatim; filtering against the controlled
// vocabulary is the caller's job.
type ClassifierClientInterface interface {
	ClassifyCategories(ctx context.Context, phrase string, categories []string) ([]string, error)
}

// ParseCategoryArray defensively extracts a JSON array of strings from a
// model response. Models wrap output in markdown fences or prose often
// enough that a strict parse is useless; anything unparseable yields nil
// rather than an error.
func ParseCategoryArray(raw string) []string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return nil
	}

	var out []string
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &out); err != nil {
		return nil
	}
	return out
}

// DisabledClassifier is wired when CLASSIFIER_PROVIDER=off. It always yields
// nothing, so extraction falls through to the Unidentified sentinel.
type DisabledClassifier struct{}

func NewDisabledClassifier() ClassifierClientInterface {
	return DisabledClassifier{}
}

func (DisabledClassifier) ClassifyCategories(context.Context, string, []string) ([]string, error) {
	return nil, nil
}
