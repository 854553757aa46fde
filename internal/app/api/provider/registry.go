package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"lucidscript/internal/app/api"
	apperrors "lucidscript/internal/app/errors"
)

// Registry holds named transcribers and the default choice.
type Registry struct {
	mu          sync.RWMutex
	providers   map[string]api.Transcriber
	defaultName string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]api.Transcriber),
	}
}

// Register adds a transcriber. The first one registered becomes the default.
func (r *Registry) Register(name string, t api.Transcriber) error {
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if t == nil {
		return fmt.Errorf("provider cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider '%s' already registered", name)
	}
	r.providers[name] = t
	if r.defaultName == "" {
		r.defaultName = name
	}
	return nil
}

// Get retrieves a transcriber by name.
func (r *Registry) Get(name string) (api.Transcriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.providers[name]
	if !exists {
		return nil, apperrors.Wrapf(apperrors.ErrProviderNotFound, "provider '%s'", name)
	}
	return t, nil
}

// Default returns the default transcriber.
func (r *Registry) Default() (api.Transcriber, error) {
	r.mu.RLock()
	name := r.defaultName
	r.mu.RUnlock()

	if name == "" {
		return nil, apperrors.Wrap(apperrors.ErrProviderNotFound, "no default provider set")
	}
	return r.Get(name)
}

// DefaultName returns the name of the default transcriber.
func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}

// SetDefault changes the default transcriber.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; !exists {
		return apperrors.Wrapf(apperrors.ErrProviderNotFound, "provider '%s'", name)
	}
	r.defaultName = name
	return nil
}

// List returns registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HealthCheckAll checks every transcriber that supports it. Providers
// without a health check report nil.
func (r *Registry) HealthCheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	providers := make(map[string]api.Transcriber, len(r.providers))
	for name, t := range r.providers {
		providers[name] = t
	}
	r.mu.RUnlock()

	results := make(map[string]error, len(providers))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, t := range providers {
		wg.Add(1)
		go func(name string, t api.Transcriber) {
			defer wg.Done()

			var err error
			if hc, ok := t.(api.HealthChecker); ok {
				err = hc.HealthCheck(ctx)
			}

			mu.Lock()
			results[name] = err
			mu.Unlock()
		}(name, t)
	}

	wg.Wait()
	return results
}
