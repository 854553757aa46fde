// Package cmdutil holds setup shared by the lucidscript commands.
package cmdutil

import (
	"context"
	"fmt"
	"os"

	"lucidscript/internal/app"
	"lucidscript/internal/config"
)

// LoadSettings reads .env and then the environment.
func LoadSettings() (*config.Settings, error) {
	if _, err := config.LoadEnv(); err != nil {
		return nil, err
	}
	if _, err := config.GetAPIKeys(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}
	return config.Load()
}

// InitApp loads settings, lets adjust override them and wires the app.
func InitApp(ctx context.Context, adjust func(*config.Settings)) (*app.App, func(), error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	if adjust != nil {
		adjust(settings)
		if err := settings.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return app.InitializeApp(ctx, settings)
}
