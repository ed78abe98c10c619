package plugin

import (
	"context"
	"log/slog"
	"sync"

	"github.com/osse101/AutomateGardenPot_Go/internal/automate"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/gardenpot"
	"github.com/osse101/AutomateGardenPot_Go/internal/modloader"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
)

// ModEntry plugs indoor garden pots into the automation framework
type ModEntry struct {
	skills gardenpot.SkillSource
	rng    utils.Rand

	helper   *modloader.Helper
	launched sync.Once
}

// New creates the mod entry. skills supplies the farming level used for harvest sizes.
func New(skills gardenpot.SkillSource, rng utils.Rand) *ModEntry {
	return &ModEntry{skills: skills, rng: rng}
}

// Entry implements modloader.Mod
func (m *ModEntry) Entry(helper *modloader.Helper) {
	m.helper = helper
	helper.Events.Subscribe(event.GameLaunched, m.OnGameLaunched)
}

// OnGameLaunched registers the indoor pot factory with the framework.
// Repeated launches are ignored.
func (m *ModEntry) OnGameLaunched(ctx context.Context, _ event.Event) error {
	m.launched.Do(func() {
		m.registerFactory()
	})
	return nil
}

func (m *ModEntry) registerFactory() {
	monitor := m.helper.Monitor
	if monitor == nil {
		monitor = slog.Default()
	}

	registry := m.helper.ModRegistry
	if registry.IsLoaded(automate.ModID) {
		monitor.Debug(LogMsgAutomatePatchAdvisory)
	}

	api, err := modloader.GetAPI[automate.API](registry, automate.ModID)
	if err != nil {
		monitor.Warn(LogMsgAutomateAPIMissing, "error", err)
		return
	}

	api.AddFactory(gardenpot.NewFactory(m.skills, m.rng))
	monitor.Debug(LogMsgFactoryRegistered, "machine_type", gardenpot.MachineTypeID)
}
