package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/osse101/AutomateGardenPot_Go/internal/automate"
	"github.com/osse101/AutomateGardenPot_Go/internal/bootstrap"
	"github.com/osse101/AutomateGardenPot_Go/internal/config"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
	"github.com/osse101/AutomateGardenPot_Go/internal/modloader"
	"github.com/osse101/AutomateGardenPot_Go/internal/plugin"
	"github.com/osse101/AutomateGardenPot_Go/internal/scheduler"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
	"github.com/osse101/AutomateGardenPot_Go/internal/worker"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	slog.Info("Starting garden pot simulation",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"days", cfg.SimDays,
		"ticks_per_day", cfg.TicksPerDay,
		"pots", cfg.PotCount)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := utils.NewRand(cfg.RNGSeed)

	catalog, err := bootstrap.LoadCrops(ctx, cfg.CropsConfigPath)
	if err != nil {
		return err
	}

	world, err := bootstrap.BuildGreenhouse(ctx, bootstrap.WorldConfig{
		PotCount:     cfg.PotCount,
		PlantedCrops: cfg.PlantedCrops,
		FarmingLevel: cfg.FarmingLevel,
	}, catalog, rng)
	if err != nil {
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Location: world.Location,
		Catalog:  catalog,
		RNG:      rng,
	})

	loader := modloader.NewLoader(bus, slog.Default())
	registry := automate.NewRegistry(logger.ForMod(slog.Default(), automate.ModID))
	if err := bootstrap.LoadMods(loader, registry, plugin.New(world.Farmer, rng)); err != nil {
		return err
	}
	if err := loader.Launch(ctx); err != nil {
		return err
	}

	group := automate.NewGroup(world.Location, registry, automate.NewChestStorage(world.Chest), bus)
	group.Discover(ctx)
	loop := worker.NewGameLoop(world.Location, group, bus, cfg.TicksPerDay)

	totalTicks := cfg.SimDays * cfg.TicksPerDay
	if cfg.TickInterval == 0 {
		scheduler.RunTicks(ctx, totalTicks, loop)
	} else {
		runScheduled(ctx, cfg.TickInterval, totalTicks, loop)
	}

	reportChest(world, loop)
	return nil
}

// runScheduled drives the loop from the scheduler until totalTicks ran or ctx is cancelled
func runScheduled(ctx context.Context, interval time.Duration, totalTicks int, loop *worker.GameLoop) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := worker.NewPool(1, 1)
	pool.Start(ctx)
	sched := scheduler.New(pool)

	var ran atomic.Int64
	sched.Schedule(interval, worker.JobFunc(func(ctx context.Context) error {
		if int(ran.Load()) >= totalTicks {
			return nil
		}
		err := loop.Process(ctx)
		if int(ran.Add(1)) >= totalTicks {
			cancel()
		}
		return err
	}))

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Scheduler:  sched,
		WorkerPool: pool,
	})
}

func reportChest(world *bootstrap.World, loop *worker.GameLoop) {
	counts := make(map[string]int)
	for _, item := range world.Chest.Items {
		counts[item.Name()] += item.Stack()
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	totals := loop.Totals()
	slog.Info(bootstrap.LogMsgSimulationFinished,
		"day", loop.Day(),
		"harvests", totals.Harvested,
		"waterings", totals.Fed,
		"discarded", totals.Discarded)
	for _, name := range names {
		slog.Info("Chest contents", "item", name, "quantity", counts[name])
	}
}
