package app

import (
	"context"

	"go.uber.org/zap"

	"lucidscript/internal/app/api"
	"lucidscript/internal/app/api/provider"
	"lucidscript/internal/app/audio"
	"lucidscript/internal/app/cache"
	"lucidscript/internal/app/common"
	"lucidscript/internal/app/converter"
	"lucidscript/internal/app/diarization"
	"lucidscript/internal/app/metrics"
	"lucidscript/internal/app/repository"
	"lucidscript/internal/app/repository/pg"
	"lucidscript/internal/app/repository/sqlite"
	"lucidscript/internal/app/storage"
	"lucidscript/internal/config"
	"lucidscript/internal/downloader"
)

// App is the fully wired application.
type App struct {
	Settings  *config.Settings
	Logger    *zap.Logger
	Converter *converter.Converter
	Registry  *provider.Registry
	Store     storage.ArtifactStore
	DB        repository.ExportDAO
	Metrics   *metrics.Metrics
}

func newApp(
	settings *config.Settings,
	logger *zap.Logger,
	conv *converter.Converter,
	registry *provider.Registry,
	store storage.ArtifactStore,
	db repository.ExportDAO,
	m *metrics.Metrics,
) *App {
	return &App{
		Settings:  settings,
		Logger:    logger,
		Converter: conv,
		Registry:  registry,
		Store:     store,
		DB:        db,
		Metrics:   m,
	}
}

func provideLogger(s *config.Settings) (*zap.Logger, func(), error) {
	logger, err := common.NewLogger(!s.IsProduction(), s.Server.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideAudioConverter(s *config.Settings, logger *zap.Logger) *audio.Converter {
	return audio.NewConverter(s.Pipeline.FFmpegBinary, s.Pipeline.FFprobeBinary, logger.Named("audio"))
}

// provideRegistry reads the providers file when one is configured and
// otherwise derives providers from the environment.
func provideRegistry(s *config.Settings, conv *audio.Converter, logger *zap.Logger) (*provider.Registry, error) {
	cfg := provider.FromPipeline(s.Pipeline)
	if s.Pipeline.ProvidersFile != "" {
		loaded, err := provider.LoadConfig(s.Pipeline.ProvidersFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return provider.Build(cfg, conv, logger.Named("provider"))
}

func provideMetrics() *metrics.Metrics {
	return metrics.New()
}

// provideCache uses Redis when REDIS_ADDR is set.
func provideCache(ctx context.Context, s *config.Settings, logger *zap.Logger) (cache.Cache, func(), error) {
	if s.Storage.RedisAddr == "" {
		return cache.NewMemoryCache(s.Storage.CacheTTL), func() {}, nil
	}
	rc, err := cache.NewRedisCache(ctx, s.Storage.RedisAddr, s.Storage.RedisPassword, s.Storage.RedisDB, s.Storage.CacheTTL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using redis transcript cache", zap.String("addr", s.Storage.RedisAddr))
	return rc, func() { _ = rc.Close() }, nil
}

// provideTranscriber wraps the default provider with metrics and then the
// cache, so cache hits are not counted as transcriptions.
func provideTranscriber(registry *provider.Registry, c cache.Cache, m *metrics.Metrics, logger *zap.Logger) (api.Transcriber, error) {
	t, err := registry.Default()
	if err != nil {
		return nil, err
	}
	instrumented := metrics.InstrumentTranscriber(t, registry.DefaultName(), m)
	return cache.NewTranscriber(instrumented, c, logger.Named("cache")), nil
}

func provideDiarizer(s *config.Settings, logger *zap.Logger) diarization.Diarizer {
	return diarization.New(s.Pipeline.DiarizationURL, s.Pipeline.HuggingFaceToken, logger.Named("diarization"))
}

func provideDownloader(s *config.Settings, logger *zap.Logger) converter.Downloader {
	return downloader.NewYouTube(s.Pipeline.YtDlpBinary, logger.Named("youtube"))
}

// provideStore mirrors documents to MinIO when MINIO_ENDPOINT is set.
func provideStore(ctx context.Context, s *config.Settings, logger *zap.Logger) (storage.ArtifactStore, error) {
	local, err := storage.NewLocalStore(s.Pipeline.OutputDir)
	if err != nil {
		return nil, err
	}
	if s.Storage.MinioEndpoint == "" {
		return local, nil
	}

	remote, err := storage.NewMinioStore(ctx, storage.MinioConfig{
		Endpoint:  s.Storage.MinioEndpoint,
		AccessKey: s.Storage.MinioAccessKey,
		SecretKey: s.Storage.MinioSecretKey,
		Bucket:    s.Storage.MinioBucket,
		UseSSL:    s.Storage.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Mirroring documents to object storage",
		zap.String("endpoint", s.Storage.MinioEndpoint),
		zap.String("bucket", s.Storage.MinioBucket),
	)
	return storage.NewMirrored(local, remote, logger.Named("storage")), nil
}

// ProvideExportDAO opens Postgres when DATABASE_URL is set and SQLite
// otherwise.
func ProvideExportDAO(ctx context.Context, s *config.Settings) (repository.ExportDAO, func(), error) {
	if s.Storage.DatabaseURL != "" {
		db, err := pg.NewPostgresDB(s.Storage.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	}

	db, err := sqlite.NewSQLiteDB(s.Storage.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}

func provideConverter(
	s *config.Settings,
	t api.Transcriber,
	d diarization.Diarizer,
	dl converter.Downloader,
	conv *audio.Converter,
	store storage.ArtifactStore,
	db repository.ExportDAO,
	m *metrics.Metrics,
	logger *zap.Logger,
) *converter.Converter {
	return converter.NewConverter(converter.Deps{
		Transcriber:       t,
		Diarizer:          d,
		Downloader:        dl,
		Audio:             conv,
		Store:             store,
		DB:                db,
		Metrics:           m,
		Logger:            logger.Named("converter"),
		OutputDir:         s.Pipeline.OutputDir,
		MaxConcurrentJobs: int64(s.Pipeline.MaxConcurrentJobs),
	})
}
