package cache

import (
	"context"

	"go.uber.org/zap"

	"lucidscript/internal/app/api"
	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
)

// Transcriber serves repeated transcriptions of the same audio from a Cache.
type Transcriber struct {
	next   api.Transcriber
	cache  Cache
	logger *zap.Logger
}

// NewTranscriber wraps next with cache lookups.
func NewTranscriber(next api.Transcriber, c Cache, logger *zap.Logger) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transcriber{next: next, cache: c, logger: logger}
}

// Transcribe returns the cached transcript when one exists. Cache failures
// fall through to the wrapped transcriber.
func (t *Transcriber) Transcribe(ctx context.Context, inputFilePath string, opts api.Options) (*model.Transcript, error) {
	hash, err := FileHash(inputFilePath)
	if err != nil {
		return t.next.Transcribe(ctx, inputFilePath, opts)
	}
	key := Key(hash, opts)

	cached, err := t.cache.Get(ctx, key)
	switch {
	case err == nil:
		t.logger.Debug("transcript cache hit", zap.String("key", key))
		return cached, nil
	case !apperrors.Is(err, apperrors.ErrCacheMiss):
		t.logger.Warn("transcript cache lookup failed", zap.Error(err))
	}

	result, err := t.next.Transcribe(ctx, inputFilePath, opts)
	if err != nil {
		return nil, err
	}
	if err := t.cache.Set(ctx, key, result); err != nil {
		t.logger.Warn("transcript cache store failed", zap.Error(err))
	}
	return result, nil
}

// Info reports the wrapped transcriber's description.
func (t *Transcriber) Info() api.Info {
	if d, ok := t.next.(api.Describer); ok {
		return d.Info()
	}
	return api.Info{Name: "cached"}
}
