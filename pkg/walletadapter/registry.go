package walletadapter

import (
	"fmt"
	"slices"
	"sync"
)

// Registry keeps the wallet adapters an application offers, keyed by wallet name
type Registry struct {
	adapters map[WalletName]Adapter
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[WalletName]Adapter)}
}

// Register adds an adapter under adapter.Name().
// An adapter already registered under that name is replaced.
func (r *Registry) Register(adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.adapters[adapter.Name()] = adapter
}

// Get retrieves an adapter by wallet name
func (r *Registry) Get(name WalletName) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, exists := r.adapters[name]
	if !exists {
		return nil, fmt.Errorf("no adapter registered for wallet: %s", name)
	}
	return adapter, nil
}

// Names returns the registered wallet names in sorted order
func (r *Registry) Names() []WalletName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]WalletName, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
