package bootstrap

import (
	"log/slog"

	"github.com/osse101/AutomateGardenPot_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus shared by the host and mods
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "schema_version", event.EventSchemaVersion)
	return bus
}
