package provider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

type Provider interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

type Request struct {
	Model string

	Messages []Message

	// ProviderData may carry provider-specific wiring (e.g. a client handle).
	// Providers must treat unknown types as an error.
	ProviderData any
}

type Response struct {
	Message      Message
	Usage        Usage
	FinishReason FinishReason
}

type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

// Register adds p under name. Names are trimmed; blank and duplicate names
// are rejected.
func (r *Registry) Register(name string, p Provider) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("provider name is required")
	}
	if p == nil {
		return fmt.Errorf("provider %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %q already registered", name)
	}

	r.providers[name] = p
	return nil
}

// Lookup returns the provider registered under name. The error for an
// unknown name lists what is registered.
func (r *Registry) Lookup(name string) (Provider, error) {
	name = strings.TrimSpace(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.providers[name]; ok {
		return p, nil
	}
	names := make([]string, 0, len(r.providers))
	for n := range r.providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown provider %q (registered: %s)", name, strings.Join(names, ", "))
}

var defaultRegistry = NewRegistry()

func Register(name string, p Provider) error {
	return defaultRegistry.Register(name, p)
}

func Lookup(name string) (Provider, error) {
	return defaultRegistry.Lookup(name)
}
