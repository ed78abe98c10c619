package worker

import (
	"context"
	"sync"

	"github.com/osse101/AutomateGardenPot_Go/internal/automate"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
)

// GameLoop advances the simulated world one automation tick per Process call.
// After ticksPerDay ticks the location runs its overnight update and a new day starts.
type GameLoop struct {
	mu          sync.Mutex
	location    *domain.Location
	group       *automate.Group
	bus         event.Bus
	ticksPerDay int

	tick   int
	day    int
	totals automate.TickResult
}

// NewGameLoop creates a loop starting on day 1
func NewGameLoop(location *domain.Location, group *automate.Group, bus event.Bus, ticksPerDay int) *GameLoop {
	if ticksPerDay < 1 {
		ticksPerDay = 1
	}
	return &GameLoop{
		location:    location,
		group:       group,
		bus:         bus,
		ticksPerDay: ticksPerDay,
		day:         1,
	}
}

// Process implements Job
func (g *GameLoop) Process(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	res := g.group.Tick(ctx)
	g.totals.Polled += res.Polled
	g.totals.Harvested += res.Harvested
	g.totals.Fed += res.Fed
	g.totals.Discarded += res.Discarded
	g.totals.Skipped += res.Skipped
	g.tick++

	logger.FromContext(ctx).Debug(LogMsgLoopTick, "day", g.day, "tick", g.tick)
	if g.tick%g.ticksPerDay != 0 {
		return nil
	}

	g.location.DayUpdate()
	g.day++
	logger.FromContext(ctx).Info(LogMsgDayStarted, "day", g.day, "location", g.location.Name)

	if g.bus == nil {
		return nil
	}
	if err := g.bus.Publish(ctx, event.NewDayStartedEvent(g.day)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgDayEventFailed, "error", err)
	}
	return nil
}

// Day returns the current day number
func (g *GameLoop) Day() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.day
}

// Totals returns the accumulated tick results
func (g *GameLoop) Totals() automate.TickResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.totals
}
