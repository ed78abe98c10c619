package modloader

import (
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
)

// Manifest identifies a loaded mod
type Manifest struct {
	UniqueID string `json:"unique_id"`
	Name     string `json:"name"`
	Version  string `json:"version"`
}

type entry struct {
	manifest Manifest
	api      any
}

// Registry tracks loaded mods and the APIs they expose to other mods
type Registry struct {
	mu   sync.RWMutex
	mods map[string]entry
}

// NewRegistry creates an empty mod registry
func NewRegistry() *Registry {
	return &Registry{mods: make(map[string]entry)}
}

// Register records a mod and its optional API
func (r *Registry) Register(manifest Manifest, api any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.mods[manifest.UniqueID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrModAlreadyLoaded, manifest.UniqueID)
	}
	r.mods[manifest.UniqueID] = entry{manifest: manifest, api: api}
	return nil
}

// IsLoaded reports whether a mod with the given unique ID is loaded
func (r *Registry) IsLoaded(uniqueID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.mods[uniqueID]
	return ok
}

// GetAPI returns the API a mod exposed, or nil if it is not loaded or exposes none
func (r *Registry) GetAPI(uniqueID string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mods[uniqueID].api
}

// Loaded returns the unique IDs of all loaded mods in sorted order
func (r *Registry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.mods))
	for id := range r.mods {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GetAPI fetches a mod's API as T.
// It returns ErrModNotLoaded or ErrAPIUnavailable when the lookup fails.
func GetAPI[T any](r *Registry, uniqueID string) (T, error) {
	var zero T
	if !r.IsLoaded(uniqueID) {
		return zero, fmt.Errorf("%w: %s", domain.ErrModNotLoaded, uniqueID)
	}
	api, ok := r.GetAPI(uniqueID).(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s", domain.ErrAPIUnavailable, uniqueID)
	}
	return api, nil
}
