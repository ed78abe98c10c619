package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game loop and machine event types
const (
	GameLaunched         Type = domain.EventTypeGameLaunched
	DayStarted           Type = domain.EventTypeDayStarted
	MachineHarvested     Type = domain.EventTypeMachineHarvested
	MachineInputAccepted Type = domain.EventTypeMachineInputAccepted
)

// GameLaunchedPayloadV1 is the typed payload for game launched events
type GameLaunchedPayloadV1 struct {
	LoadedMods []string `json:"loaded_mods"`
	Timestamp  int64    `json:"timestamp"`
}

// DayStartedPayloadV1 is the typed payload for day started events
type DayStartedPayloadV1 struct {
	Day       int   `json:"day"`
	Timestamp int64 `json:"timestamp"`
}

// NewGameLaunchedEvent creates a new game launched event
func NewGameLaunchedEvent(loadedMods []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameLaunched,
		Payload: GameLaunchedPayloadV1{
			LoadedMods: loadedMods,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewDayStartedEvent creates a new day started event
func NewDayStartedEvent(day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayStarted,
		Payload: DayStartedPayloadV1{
			Day:       day,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewMachineHarvestedEvent creates a new machine harvested event
func NewMachineHarvestedEvent(machineTypeID, location string, tile domain.Vector2, itemName string, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MachineHarvested,
		Payload: domain.MachineHarvestedPayload{
			MachineTypeID: machineTypeID,
			Location:      location,
			Tile:          tile,
			ItemName:      itemName,
			Quantity:      quantity,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewMachineInputAcceptedEvent creates a new machine input accepted event
func NewMachineInputAcceptedEvent(machineTypeID, location string, tile domain.Vector2) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MachineInputAccepted,
		Payload: domain.MachineInputAcceptedPayload{
			MachineTypeID: machineTypeID,
			Location:      location,
			Tile:          tile,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"machine_type_id": machineTypeID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to all subscribers synchronously, in subscription order
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
