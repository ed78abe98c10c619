package bootstrap

import (
	"log/slog"

	"github.com/osse101/AutomateGardenPot_Go/internal/crops"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/metrics"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
	"github.com/osse101/AutomateGardenPot_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Location *domain.Location
	Catalog  *crops.Catalog
	RNG      utils.Rand
}

// RegisterEventHandlers sets up all host-side event subscribers.
// This includes:
// - Metrics collector (for event-based metrics)
// - Replanter (clears and replants single-harvest crops)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	worker.NewReplanter(deps.Location, deps.Catalog, deps.RNG).Register(deps.EventBus)
	slog.Info(LogMsgReplanterRegistered, "location", deps.Location.Name)
}
