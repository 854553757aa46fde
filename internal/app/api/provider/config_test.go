package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidscript/internal/app/audio"
	"lucidscript/internal/config"
)

const sampleYAML = `
default_provider: openai
providers:
  whisper_cpp:
    type: whisper_cpp
    enabled: true
    settings:
      binary_path: ${LS_TEST_WHISPER:-whisper-cli}
      model_path: /models/ggml-tiny.bin
  openai:
    type: openai
    enabled: true
    auth:
      api_key: ${LS_TEST_OPENAI_KEY}
`

func TestParseConfig(t *testing.T) {
	t.Setenv("LS_TEST_OPENAI_KEY", "sk-abcdefghijklmnopqrstuvwxyz")

	cfg, err := ParseConfig([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.DefaultProvider)
	assert.Equal(t, "whisper-cli", cfg.Providers["whisper_cpp"].Settings["binary_path"])
	assert.Equal(t, "sk-abcdefghijklmnopqrstuvwxyz", cfg.Providers["openai"].Auth.APIKey)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no providers", yaml: "default_provider: x\n"},
		{name: "unknown default", yaml: "default_provider: x\nproviders:\n  a:\n    type: openai\n    enabled: true\n"},
		{name: "disabled default", yaml: "default_provider: a\nproviders:\n  a:\n    type: openai\n    enabled: false\n"},
		{name: "missing type", yaml: "providers:\n  a:\n    enabled: true\n"},
		{name: "bad yaml", yaml: "providers: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuild(t *testing.T) {
	t.Setenv("LS_TEST_OPENAI_KEY", "sk-abcdefghijklmnopqrstuvwxyz")
	cfg, err := ParseConfig([]byte(sampleYAML))
	require.NoError(t, err)

	registry, err := Build(cfg, audio.NewConverter("", "", nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"openai", "whisper_cpp"}, registry.List())
	assert.Equal(t, "openai", registry.DefaultName())
}

func TestBuild_FromPipeline(t *testing.T) {
	p := config.Default().Pipeline
	registry, err := Build(FromPipeline(p), audio.NewConverter("", "", nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"whisper_cpp"}, registry.List())

	p.Transcriber = "openai"
	_, err = Build(FromPipeline(p), audio.NewConverter("", "", nil), nil)
	assert.Error(t, err, "openai is the default but has no key")
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(&ProviderConfiguration{Providers: map[string]ProviderConfig{
		"x": {Type: "nope", Enabled: true},
	}}, nil, nil)
	assert.Error(t, err)

	_, err = Build(&ProviderConfiguration{Providers: map[string]ProviderConfig{
		"x": {Type: TypeWhisperCpp, Enabled: false},
	}}, nil, nil)
	assert.Error(t, err)
}
