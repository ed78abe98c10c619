package automate

import (
	"context"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
	"github.com/osse101/AutomateGardenPot_Go/internal/metrics"
)

// TickResult summarises one automation pass over a group
type TickResult struct {
	Polled    int
	Harvested int
	Fed       int
	Discarded int
	Skipped   int
}

// Group is a set of machines in one location sharing connected storage.
// A group is driven from a single goroutine; machines are never polled
// concurrently.
type Group struct {
	location *domain.Location
	registry *Registry
	storage  Storage
	bus      event.Bus
	machines []Machine
}

// NewGroup creates a machine group; bus may be nil
func NewGroup(location *domain.Location, registry *Registry, storage Storage, bus event.Bus) *Group {
	return &Group{
		location: location,
		registry: registry,
		storage:  storage,
		bus:      bus,
	}
}

// Discover rebuilds the machine list from the location's objects and returns its size
func (g *Group) Discover(ctx context.Context) int {
	var machines []Machine
	for _, placed := range g.location.Objects() {
		if m, ok := g.registry.MachineFor(placed.Object, g.location, placed.Tile); ok {
			machines = append(machines, m)
		}
	}
	g.machines = machines
	logger.FromContext(ctx).Debug(LogMsgMachinesDiscovered, "location", g.location.Name, "machines", len(g.machines))
	return len(g.machines)
}

// Machines returns the discovered machines
func (g *Group) Machines() []Machine {
	return g.machines
}

// Tick polls every machine once: Done output is pushed into storage and
// Empty machines are offered the storage contents as input.
func (g *Group) Tick(ctx context.Context) TickResult {
	ctx = logger.WithTickID(ctx, logger.GenerateTickID())
	log := logger.FromContext(ctx)

	var res TickResult
	noInput := make(map[string]bool)

	for _, m := range g.machines {
		typeID := m.MachineTypeID()
		state := m.GetState()
		res.Polled++
		metrics.MachinePolls.WithLabelValues(typeID, state.String()).Inc()

		switch state {
		case Done:
			g.storeOutput(ctx, m, &res)

		case Empty:
			if noInput[typeID] {
				res.Skipped++
				continue
			}
			if !m.SetInput(g.storage) {
				noInput[typeID] = true
				log.Debug(LogMsgInputMissing, "machine_type", typeID)
				continue
			}
			res.Fed++
			tile := tileOf(m)
			log.Debug(LogMsgInputAccepted, "machine_type", typeID, "tile", tile.String())
			g.publish(ctx, event.NewMachineInputAcceptedEvent(typeID, g.location.Name, tile))
		}
	}

	log.Debug(LogMsgTickComplete,
		"location", g.location.Name,
		"polled", res.Polled,
		"harvested", res.Harvested,
		"fed", res.Fed,
		"discarded", res.Discarded,
		"skipped", res.Skipped,
	)
	return res
}

func (g *Group) storeOutput(ctx context.Context, m Machine, res *TickResult) {
	log := logger.FromContext(ctx)
	out := m.GetOutput()
	if out == nil || out.Sample() == nil {
		return
	}

	name, qty := out.Sample().Name(), out.Count()
	tile := tileOf(m)
	if !g.storage.Push(out) {
		out.Discard()
		res.Discarded++
		log.Warn(LogMsgOutputNoRoom, "machine_type", m.MachineTypeID(), "item", name, "quantity", qty)
		return
	}

	res.Harvested++
	log.Debug(LogMsgOutputStored, "machine_type", m.MachineTypeID(), "item", name, "quantity", qty, "tile", tile.String())
	g.publish(ctx, event.NewMachineHarvestedEvent(m.MachineTypeID(), g.location.Name, tile, name, qty))
}

func (g *Group) publish(ctx context.Context, evt event.Event) {
	if g.bus == nil {
		return
	}
	if err := g.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func tileOf(m Machine) domain.Vector2 {
	area := m.TileArea()
	return domain.Vector2{X: area.X, Y: area.Y}
}
