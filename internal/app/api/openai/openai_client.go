package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI client. baseURL is optional and lets the
// transcriber target any OpenAI-compatible endpoint.
func NewClient(token, baseURL string) *openai.Client {
	config := openai.DefaultConfig(token)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
