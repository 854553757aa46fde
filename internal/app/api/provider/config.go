package provider

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"lucidscript/internal/config"
)

// ProviderConfiguration represents the complete provider configuration
type ProviderConfiguration struct {
	// Default provider to use when none is specified
	DefaultProvider string `yaml:"default_provider"`

	// Provider-specific configurations
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig represents configuration for a single provider
type ProviderConfig struct {
	// Provider type (whisper_cpp, openai)
	Type string `yaml:"type"`

	// Whether this provider is enabled
	Enabled bool `yaml:"enabled"`

	// Provider-specific settings
	Settings map[string]string `yaml:"settings"`

	// Authentication settings
	Auth AuthConfig `yaml:"auth,omitempty"`
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	// API key (can be environment variable reference like ${OPENAI_API_KEY})
	APIKey string `yaml:"api_key,omitempty"`

	// Base URL for OpenAI-compatible endpoints
	BaseURL string `yaml:"base_url,omitempty"`
}

// LoadConfig reads a provider configuration file and expands ${VAR} and
// ${VAR:-default} references against the environment.
func LoadConfig(path string) (*ProviderConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML provider configuration.
func ParseConfig(data []byte) (*ProviderConfiguration, error) {
	var cfg ProviderConfiguration
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the default provider exists and is enabled.
func (c *ProviderConfiguration) Validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("no providers configured")
	}
	for name, p := range c.Providers {
		if p.Type == "" {
			return fmt.Errorf("provider %q has no type", name)
		}
	}
	if c.DefaultProvider == "" {
		return nil
	}
	p, ok := c.Providers[c.DefaultProvider]
	if !ok {
		return fmt.Errorf("default provider %q is not configured", c.DefaultProvider)
	}
	if !p.Enabled {
		return fmt.Errorf("default provider %q is disabled", c.DefaultProvider)
	}
	return nil
}

// FromPipeline builds a configuration equivalent to the environment
// settings, used when no providers file is given.
func FromPipeline(p config.PipelineConfig) *ProviderConfiguration {
	cfg := &ProviderConfiguration{
		DefaultProvider: p.Transcriber,
		Providers: map[string]ProviderConfig{
			TypeWhisperCpp: {
				Type:    TypeWhisperCpp,
				Enabled: true,
				Settings: map[string]string{
					"binary_path": p.WhisperCppBinary,
					"model_path":  p.WhisperCppModel,
				},
			},
		},
	}
	if p.OpenAIAPIKey != "" {
		cfg.Providers[TypeOpenAI] = ProviderConfig{
			Type:    TypeOpenAI,
			Enabled: true,
			Auth:    AuthConfig{APIKey: p.OpenAIAPIKey, BaseURL: p.OpenAIBaseURL},
		}
	}
	return cfg
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		m := envRef.FindStringSubmatch(ref)
		if v, ok := os.LookupEnv(m[1]); ok && v != "" {
			return v
		}
		return m[3]
	})
}
