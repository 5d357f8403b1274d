// Command arenasim runs the combat simulation headless, driven by a simple
// kiting autopilot, and prints a run summary.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/core"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/observability"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Uint64("seed", 0, "random seed (0 keeps the configured seed)")
	duration := flag.Duration("duration", 0, "game time to simulate (0 keeps the configured duration)")
	realtime := flag.Bool("realtime", false, "run at wall-clock speed")
	logLevel := flag.String("log-level", "", "log level override")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *duration > 0 {
		settings.Duration = *duration
	}
	if *realtime {
		settings.Realtime = true
	}
	if *logLevel != "" {
		settings.Log.Level = *logLevel
	}
	settings.Apply()

	logger, err := observability.NewLogger(settings.Log)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))
	logger.Info("starting run",
		zap.Uint64("seed", settings.Seed),
		zap.Duration("duration", settings.Duration),
		zap.Bool("realtime", settings.Realtime),
	)

	rec := events.NewRecorder()
	pilot := newAutopilot(logger)
	sim := core.NewSimulation(core.Options{
		Seed:        settings.Seed,
		Logger:      logger,
		Subscribers: []any{rec, pilot},
	})

	start := time.Now()
	if settings.Realtime {
		runRealtime(sim, pilot, settings, logger)
	} else {
		maxTicks := int(settings.Duration.Seconds() * float64(settings.TickRate))
		for sim.Game().Tick < maxTicks && !sim.Over() {
			pilot.Drive(sim)
			sim.Step()
		}
	}

	logger.Info("run finished",
		zap.Int("ticks", sim.Game().Tick),
		zap.Duration("wall", time.Since(start)),
	)
	printSummary(os.Stdout, runID, sim, rec)
}

func runRealtime(sim *core.Simulation, pilot *autopilot, settings config.Settings, logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, settings.Duration)
	defer cancel()

	loop := core.NewGameLoop(sim, settings.TickRate, logger)
	loop.OnFrame = pilot.Drive
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("game loop", zap.Error(err))
	}
}
