package config

import (
	"fmt"
	"time"

	"github.com/gosidekick/goconfig"
	"gopkg.in/validator.v2"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `cfg:"host" cfgDefault:"0.0.0.0" validate:"nonzero"`
	Port         string        `cfg:"port" cfgDefault:"8000" validate:"nonzero"`
	Environment  string        `cfg:"lucidscript_env" cfgDefault:"development"`
	LogLevel     string        `cfg:"log_level" cfgDefault:"info"`
	ReadTimeout  time.Duration `cfg:"read_timeout"`
	WriteTimeout time.Duration `cfg:"write_timeout"`
	IdleTimeout  time.Duration `cfg:"idle_timeout"`
	MaxUploadMB  int           `cfg:"max_upload_mb" cfgDefault:"200" validate:"min=1"`
}

// PipelineConfig holds transcription pipeline configuration
type PipelineConfig struct {
	OutputDir         string `cfg:"output_dir" cfgDefault:"output" validate:"nonzero"`
	Transcriber       string `cfg:"transcriber" cfgDefault:"whisper_cpp"`
	ProvidersFile     string `cfg:"providers_file"`
	WhisperCppBinary  string `cfg:"whisper_cpp_binary" cfgDefault:"whisper-cli"`
	WhisperCppModel   string `cfg:"whisper_cpp_model" cfgDefault:"models/ggml-tiny.bin"`
	OpenAIAPIKey      string `cfg:"openai_api_key"`
	OpenAIBaseURL     string `cfg:"openai_base_url"`
	FFmpegBinary      string `cfg:"ffmpeg_binary" cfgDefault:"ffmpeg"`
	FFprobeBinary     string `cfg:"ffprobe_binary" cfgDefault:"ffprobe"`
	YtDlpBinary       string `cfg:"ytdlp_binary" cfgDefault:"yt-dlp"`
	HuggingFaceToken  string `cfg:"huggingface_token"`
	DiarizationURL    string `cfg:"diarization_url" cfgDefault:"https://api-inference.huggingface.co/models/pyannote/speaker-diarization-3.1"`
	MaxConcurrentJobs int    `cfg:"max_concurrent_jobs" cfgDefault:"2" validate:"min=1"`
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	DatabasePath   string        `cfg:"database_path" cfgDefault:"data/lucidscript.db"`
	DatabaseURL    string        `cfg:"database_url"`
	RedisAddr      string        `cfg:"redis_addr"`
	RedisPassword  string        `cfg:"redis_password"`
	RedisDB        int           `cfg:"redis_db" cfgDefault:"0"`
	CacheTTL       time.Duration `cfg:"cache_ttl"`
	MinioEndpoint  string        `cfg:"minio_endpoint"`
	MinioAccessKey string        `cfg:"minio_access_key"`
	MinioSecretKey string        `cfg:"minio_secret_key"`
	MinioBucket    string        `cfg:"minio_bucket" cfgDefault:"lucidscript-output"`
	MinioUseSSL    bool          `cfg:"minio_use_ssl"`
}

// Settings is the full application configuration.
type Settings struct {
	Server   ServerConfig
	Pipeline PipelineConfig
	Storage  StorageConfig
}

// Load parses settings from the environment and validates them.
func Load() (*Settings, error) {
	var (
		serverCfg   ServerConfig
		pipelineCfg PipelineConfig
		storageCfg  StorageConfig
	)
	if err := goconfig.Parse(&serverCfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if err := goconfig.Parse(&pipelineCfg); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config: %w", err)
	}
	if err := goconfig.Parse(&storageCfg); err != nil {
		return nil, fmt.Errorf("failed to parse storage config: %w", err)
	}

	settings := &Settings{
		Server:   serverCfg,
		Pipeline: pipelineCfg,
		Storage:  storageCfg,
	}
	settings.defaultDurations()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks struct tags and cross-field rules.
func (s *Settings) Validate() error {
	if err := validator.Validate(s.Server); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	if err := validator.Validate(s.Pipeline); err != nil {
		return fmt.Errorf("invalid pipeline config: %w", err)
	}
	if err := ValidateTimeout(s.Server.WriteTimeout, "write"); err != nil {
		return err
	}
	if err := ValidateConcurrency(s.Pipeline.MaxConcurrentJobs, "transcription"); err != nil {
		return err
	}
	if s.Pipeline.Transcriber == "openai" && s.Pipeline.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when TRANSCRIBER=openai")
	}
	if s.Storage.MinioEndpoint != "" && (s.Storage.MinioAccessKey == "" || s.Storage.MinioSecretKey == "") {
		return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}
	return nil
}

// defaultDurations fills duration fields left unset in the environment.
func (s *Settings) defaultDurations() {
	d := Default()
	if s.Server.ReadTimeout == 0 {
		s.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if s.Server.WriteTimeout == 0 {
		s.Server.WriteTimeout = d.Server.WriteTimeout
	}
	if s.Server.IdleTimeout == 0 {
		s.Server.IdleTimeout = d.Server.IdleTimeout
	}
	if s.Storage.CacheTTL == 0 {
		s.Storage.CacheTTL = d.Storage.CacheTTL
	}
}

// IsProduction reports whether the server runs in production mode.
func (s *Settings) IsProduction() bool {
	return s.Server.Environment == "production"
}

// Default returns settings with the same defaults Load would apply on an
// empty environment.
func Default() *Settings {
	return &Settings{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "8000",
			Environment:  "development",
			LogLevel:     "info",
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 15 * time.Minute,
			IdleTimeout:  120 * time.Second,
			MaxUploadMB:  200,
		},
		Pipeline: PipelineConfig{
			OutputDir:         "output",
			Transcriber:       "whisper_cpp",
			WhisperCppBinary:  "whisper-cli",
			WhisperCppModel:   "models/ggml-tiny.bin",
			FFmpegBinary:      "ffmpeg",
			FFprobeBinary:     "ffprobe",
			YtDlpBinary:       "yt-dlp",
			DiarizationURL:    "https://api-inference.huggingface.co/models/pyannote/speaker-diarization-3.1",
			MaxConcurrentJobs: 2,
		},
		Storage: StorageConfig{
			DatabasePath: "data/lucidscript.db",
			CacheTTL:     24 * time.Hour,
			MinioBucket:  "lucidscript-output",
		},
	}
}
