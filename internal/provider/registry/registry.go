// Package registry selects the completion backend named in configuration.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/davidbz/purposebot/internal/domain"
)

// Registry maps provider names to completion backends.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]domain.Provider
}

// NewRegistry creates a registry holding providers.
func NewRegistry(providers ...domain.Provider) (*Registry, error) {
	r := &Registry{providers: make(map[string]domain.Provider, len(providers))}
	if err := r.Register(providers...); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds providers. Nothing is added if any of them is invalid or
// its name is taken.
func (r *Registry) Register(providers ...domain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]domain.Provider, len(providers))
	for _, provider := range providers {
		if provider == nil {
			return errors.New("provider cannot be nil")
		}

		name := provider.Name()
		if name == "" {
			return errors.New("provider name cannot be empty")
		}

		_, taken := r.providers[name]
		if _, dup := pending[name]; taken || dup {
			return fmt.Errorf("provider %s already registered", name)
		}
		pending[name] = provider
	}

	for name, provider := range pending {
		r.providers[name] = provider
	}
	return nil
}

// Select returns the provider called name. The error lists the valid names.
func (r *Registry) Select(name string) (domain.Provider, error) {
	r.mu.RLock()
	provider, ok := r.providers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown completion provider %q (available: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return provider, nil
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
