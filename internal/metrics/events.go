package metrics

import (
	"context"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.GameLaunched,
		event.DayStarted,
		event.MachineHarvested,
		event.MachineInputAccepted,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.DayStarted:
		DaysStarted.Inc()

	case event.MachineHarvested:
		payload, err := event.DecodePayload[domain.MachineHarvestedPayload](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		HarvestsStored.WithLabelValues(payload.MachineTypeID).Inc()
		HarvestItems.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))

	case event.MachineInputAccepted:
		payload, err := event.DecodePayload[domain.MachineInputAcceptedPayload](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		Waterings.WithLabelValues(payload.MachineTypeID).Inc()
	}

	return nil
}
