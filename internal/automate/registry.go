package automate

import (
	"log/slog"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/metrics"
)

// cachedMachine remembers which placed object a machine was built for
type cachedMachine struct {
	obj     domain.Placeable
	machine Machine
}

// Registry holds the machine factories contributed by mods
type Registry struct {
	mu        sync.RWMutex
	factories []Factory
	machines  *expirable.LRU[string, cachedMachine]
	log       *slog.Logger
}

// NewRegistry creates an empty factory registry
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		machines: expirable.NewLRU[string, cachedMachine](MachineCacheSize, nil, MachineCacheTTL),
		log:      log,
	}
}

// AddFactory implements API
func (r *Registry) AddFactory(factory Factory) {
	if factory == nil {
		return
	}
	r.mu.Lock()
	r.factories = append(r.factories, factory)
	count := len(r.factories)
	r.mu.Unlock()
	r.machines.Purge()

	metrics.FactoriesRegistered.Inc()
	r.log.Debug(LogMsgFactoryAdded, "factories", count)
}

// Factories returns a snapshot of the registered factories
func (r *Registry) Factories() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Factory(nil), r.factories...)
}

// MachineFor asks each factory in registration order for a machine wrapping obj.
// Machines are reused while the same object stays on the same tile.
func (r *Registry) MachineFor(obj domain.Placeable, location *domain.Location, tile domain.Vector2) (Machine, bool) {
	key := machineKey(location, tile)
	if cached, ok := r.machines.Get(key); ok {
		if cached.obj == obj {
			return cached.machine, true
		}
		r.machines.Remove(key)
	}

	for _, f := range r.Factories() {
		if m, ok := f.GetFor(obj, location, tile); ok {
			r.machines.Add(key, cachedMachine{obj: obj, machine: m})
			return m, true
		}
	}
	return nil, false
}

func machineKey(location *domain.Location, tile domain.Vector2) string {
	if location == nil {
		return tile.String()
	}
	return location.Name + ":" + tile.String()
}
