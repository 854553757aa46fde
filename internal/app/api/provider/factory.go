package provider

import (
	"fmt"

	"go.uber.org/zap"

	"lucidscript/internal/app/api"
	openaiclient "lucidscript/internal/app/api/openai"
	"lucidscript/internal/app/api/openai/whisper"
	"lucidscript/internal/app/api/whisper_cpp"
	"lucidscript/internal/app/audio"
)

// Provider types understood by the factory.
const (
	TypeWhisperCpp = "whisper_cpp"
	TypeOpenAI     = "openai"
)

// Build creates a registry holding every enabled provider of cfg.
func Build(cfg *ProviderConfiguration, converter *audio.Converter, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := NewRegistry()

	for name, pc := range cfg.Providers {
		if !pc.Enabled {
			continue
		}
		t, err := create(pc, converter, logger.Named(name))
		if err != nil {
			return nil, fmt.Errorf("provider %q: %w", name, err)
		}
		if err := registry.Register(name, t); err != nil {
			return nil, err
		}
	}

	if len(registry.List()) == 0 {
		return nil, fmt.Errorf("no enabled providers")
	}
	if cfg.DefaultProvider != "" {
		if err := registry.SetDefault(cfg.DefaultProvider); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func create(pc ProviderConfig, converter *audio.Converter, logger *zap.Logger) (api.Transcriber, error) {
	switch pc.Type {
	case TypeWhisperCpp:
		binary := pc.Settings["binary_path"]
		model := pc.Settings["model_path"]
		if binary == "" || model == "" {
			return nil, fmt.Errorf("binary_path and model_path are required")
		}
		return whisper_cpp.NewLocalTranscriber(binary, model, converter, logger), nil
	case TypeOpenAI:
		if pc.Auth.APIKey == "" {
			return nil, fmt.Errorf("api_key is required")
		}
		return whisper.NewRemoteTranscriber(openaiclient.NewClient(pc.Auth.APIKey, pc.Auth.BaseURL), logger), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", pc.Type)
	}
}
