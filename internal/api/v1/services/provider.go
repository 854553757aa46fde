package services

import (
	"context"

	"lucidscript/internal/api/errors"
	"lucidscript/internal/api/v1/dto"
	"lucidscript/internal/app/api"
	"lucidscript/internal/app/api/provider"
)

// ProviderServiceImpl reports on the transcriber registry.
type ProviderServiceImpl struct {
	registry *provider.Registry
}

// NewProviderService creates a new provider service
func NewProviderService(registry *provider.Registry) ProviderService {
	return &ProviderServiceImpl{registry: registry}
}

// ListProviders returns every provider with its health status.
func (s *ProviderServiceImpl) ListProviders(ctx context.Context) (*dto.ListProvidersResponse, error) {
	health := s.registry.HealthCheckAll(ctx)
	defaultName := s.registry.DefaultName()

	resp := &dto.ListProvidersResponse{Default: defaultName}
	for _, name := range s.registry.List() {
		t, err := s.registry.Get(name)
		if err != nil {
			return nil, errors.NewInternalError("Failed to read provider registry")
		}

		item := dto.ProviderResponse{
			Name:    name,
			Default: name == defaultName,
			Healthy: health[name] == nil,
		}
		if d, ok := t.(api.Describer); ok {
			info := d.Info()
			item.DisplayName = info.DisplayName
			item.RequiresInternet = info.RequiresInternet
		}
		if err := health[name]; err != nil {
			item.Error = err.Error()
		}
		resp.Providers = append(resp.Providers, item)
	}
	return resp, nil
}
