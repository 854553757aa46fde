//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"lucidscript/internal/config"
)

var providerSet = wire.NewSet(
	provideLogger,
	provideAudioConverter,
	provideRegistry,
	provideMetrics,
	provideCache,
	provideTranscriber,
	provideDiarizer,
	provideDownloader,
	provideStore,
	ProvideExportDAO,
	provideConverter,
	newApp,
)

// InitializeApp wires the application from settings. The cleanup func
// closes the history store, the cache and flushes the logger.
func InitializeApp(ctx context.Context, settings *config.Settings) (*App, func(), error) {
	wire.Build(providerSet)
	return nil, nil, nil
}
