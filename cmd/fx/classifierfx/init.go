package classifierfx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"
	"urbanary/pkg/utils"
)

var Module = fx.Provide(ProvideClassifierClient)

// ClassifierConfig holds configuration for the category classifier clients.
type ClassifierConfig struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// ProvideClassifierClient creates a classifier client based on environment
// variables. CLASSIFIER_PROVIDER=off disables the fallback entirely;
// unmatched steps then resolve to the unidentified sentinel without a network
// call.
func ProvideClassifierClient() (utils.ClassifierClientInterface, error) {
	config := getClassifierConfig()

	log.Printf("Initializing %s classifier client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClassifier(config.APIKey, config.Model, config.Timeout), nil
	case "gemini":
		client, err := utils.NewGeminiClassifier(config.APIKey, config.Model, config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	case "off", "":
		return utils.NewDisabledClassifier(), nil
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s. Use 'openai', 'gemini' or 'off'", config.Provider)
	}
}

func getClassifierConfig() ClassifierConfig {
	provider := getEnvWithDefault("CLASSIFIER_PROVIDER", "off")

	config := ClassifierConfig{
		Provider: provider,
		Timeout:  upstreamTimeout(),
	}
	switch strings.ToLower(provider) {
	case "openai":
		config.APIKey = os.Getenv("OPENAI_API_KEY")
		config.Model = os.Getenv("OPENAI_MODEL")
	case "gemini":
		config.APIKey = os.Getenv("GEMINI_API_KEY")
		config.Model = os.Getenv("GEMINI_MODEL")
	}
	return config
}

func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func upstreamTimeout() time.Duration {
	raw := os.Getenv("UPSTREAM_TIMEOUT")
	if raw == "" {
		return 5 * time.Second
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid UPSTREAM_TIMEOUT %q, using default: %v", raw, err)
		return 5 * time.Second
	}
	return parsed
}
