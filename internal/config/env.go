package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envPaths are tried in order; the first one found wins.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from a .env file if one exists.
// Variables already present in the process environment are not overridden.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI      string
	HuggingFace string
}

// GetAPIKeys retrieves and validates API keys from environment variables
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		HuggingFace: strings.TrimSpace(os.Getenv("HUGGINGFACE_TOKEN")),
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if apiKeys.HuggingFace != "" && !strings.HasPrefix(apiKeys.HuggingFace, "hf_") {
		return nil, fmt.Errorf("invalid HUGGINGFACE_TOKEN format: must start with 'hf_'")
	}

	return apiKeys, nil
}
