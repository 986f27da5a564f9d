package images

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raihanzaky/portfolio-backend/models"
)

// RegistryStore is the durable medium behind the image registry.
type RegistryStore interface {
	LoadImages() (map[string]models.ImageEntry, error)
	SaveImages(map[string]models.ImageEntry) error
}

// Registry is the process-wide identifier-to-payload mapping for uploaded
// images. Entries outlive their owning records: deleting a certificate or
// project does not remove its images here, cleanup is a separate concern.
type Registry struct {
	mu      sync.Mutex
	store   RegistryStore
	entries map[string]models.ImageEntry
	logger  zerolog.Logger
}

// NewRegistry loads the persisted registry from the durable store.
func NewRegistry(store RegistryStore) (*Registry, error) {
	entries, err := store.LoadImages()
	if err != nil {
		return nil, err
	}
	return &Registry{
		store:   store,
		entries: entries,
		logger:  log.With().Str("component", "images").Logger(),
	}, nil
}

// Put records an entry and persists the whole registry.
func (r *Registry) Put(entry models.ImageEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = entry
	return r.store.SaveImages(r.entries)
}

// Get looks up an entry by its generated identifier.
func (r *Registry) Get(id string) (models.ImageEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	return entry, ok
}

// All returns a copy of the registry contents.
func (r *Registry) All() map[string]models.ImageEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]models.ImageEntry, len(r.entries))
	for id, entry := range r.entries {
		out[id] = entry
	}
	return out
}

// Len returns the number of stored entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Remove deletes an entry by identifier and persists the registry. Removing
// an unknown identifier is a no-op.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return nil
	}
	delete(r.entries, id)
	return r.store.SaveImages(r.entries)
}
