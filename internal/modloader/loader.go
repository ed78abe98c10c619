package modloader

import (
	"context"
	"log/slog"
	"sync"

	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
)

// Helper is handed to each mod on entry
type Helper struct {
	Manifest    Manifest
	Events      event.Bus
	ModRegistry *Registry
	Monitor     *slog.Logger
}

// Mod is implemented by every loadable mod
type Mod interface {
	Entry(helper *Helper)
}

// Loader registers mods, calls their entry points and raises lifecycle events
type Loader struct {
	bus      event.Bus
	base     *slog.Logger
	registry *Registry
	launch   sync.Once
}

// NewLoader creates a loader publishing lifecycle events on bus
func NewLoader(bus event.Bus, base *slog.Logger) *Loader {
	if base == nil {
		base = slog.Default()
	}
	return &Loader{
		bus:      bus,
		base:     base,
		registry: NewRegistry(),
	}
}

// Registry returns the mod registry shared by all loaded mods
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Load registers the mod with its API and runs its entry point.
// mod may be nil for framework mods that only expose an API.
func (l *Loader) Load(manifest Manifest, mod Mod, api any) error {
	if err := l.registry.Register(manifest, api); err != nil {
		return err
	}

	monitor := logger.ForMod(l.base, manifest.UniqueID)
	if mod != nil {
		mod.Entry(&Helper{
			Manifest:    manifest,
			Events:      l.bus,
			ModRegistry: l.registry,
			Monitor:     monitor,
		})
	}
	monitor.Debug(LogMsgModLoaded, "name", manifest.Name, "version", manifest.Version)
	return nil
}

// Launch publishes the GameLaunched event. Only the first call has any effect.
func (l *Loader) Launch(ctx context.Context) error {
	var err error
	l.launch.Do(func() {
		mods := l.registry.Loaded()
		l.base.Info(LogMsgGameLaunched, "mods", len(mods))
		if err = l.bus.Publish(ctx, event.NewGameLaunchedEvent(mods)); err != nil {
			l.base.Warn(LogMsgLaunchPublishErr, "error", err)
		}
	})
	return err
}
