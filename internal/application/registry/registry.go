package registry

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/crestlabs/crest/pkg/domain"
	"github.com/crestlabs/crest/pkg/ports"
)

// Entry binds a named model to the scaler it was trained with and the
// metrics snapshot evaluated from it. The model and snapshot are produced
// together at startup, so an entry is always internally consistent.
type Entry struct {
	Name        string
	Model       ports.Model
	Scaler      ports.Scaler
	Snapshot    domain.MetricsSnapshot
	Description string
}

// Registry dispatches model selectors to registered entries. Entries are
// registered during startup and only read afterwards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	logger  *zap.Logger
}

// NewRegistry creates an empty model registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		logger:  logger,
	}
}

// Register adds a model entry to the registry
func (r *Registry) Register(entry Entry) error {
	if entry.Name == "" {
		return fmt.Errorf("entry name is required")
	}
	if entry.Model == nil {
		return fmt.Errorf("entry %s has no model", entry.Name)
	}
	if entry.Scaler == nil {
		return fmt.Errorf("entry %s has no scaler", entry.Name)
	}
	if entry.Description == "" {
		return fmt.Errorf("entry %s has no description", entry.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.Name]; exists {
		return fmt.Errorf("model %s is already registered", entry.Name)
	}
	r.entries[entry.Name] = &entry

	r.logger.Info("registered model", zap.String("model", entry.Name))

	return nil
}

// Lookup returns the entry for a model selector
func (r *Registry) Lookup(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	return entry, ok
}

// Names returns the registered model names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered models
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
