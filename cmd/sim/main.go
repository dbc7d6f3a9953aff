package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/tilephys/internal/config"
	"github.com/zeusync/tilephys/internal/core/events/bus"
	"github.com/zeusync/tilephys/internal/core/level"
	"github.com/zeusync/tilephys/internal/core/models"
	"github.com/zeusync/tilephys/internal/core/observability/log"
	"github.com/zeusync/tilephys/internal/core/scene"
	"github.com/zeusync/tilephys/internal/core/systems/physics"
	"github.com/zeusync/tilephys/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	scenePath := flag.String("scene", "", "path to a YAML scene file")
	frames := flag.Int("frames", 120, "number of frames to simulate")
	dt := flag.Float64("dt", 1.0/60, "frame duration in seconds")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *scenePath, *frames, *dt); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "sim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, scenePath string, frames int, dt float64) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}

	sim, err := injector.InitializeSimulation(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer func() { _ = sim.Logger.Sync() }()

	var player *models.Player
	if scenePath != "" {
		s, err := scene.LoadFile(scenePath)
		if err != nil {
			return err
		}
		if player, err = s.Populate(sim.Level, os.DirFS(filepath.Dir(scenePath))); err != nil {
			return fmt.Errorf("populate scene: %w", err)
		}
	}

	sub, err := sim.Events.Subscribe(level.EventDestroyed, func(ev bus.Event) error {
		if e, ok := ev.Data.(models.Entity); ok {
			sim.Logger.Info("entity destroyed", log.Stringer("id", e.ID()), log.Uint64("frame", ev.Frame))
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer func() { _ = sim.Events.Unsubscribe(sub) }()

	counter := &eventCounter{counts: make(map[string]int)}
	sim.Events.AddObserver(counter)
	defer sim.Events.RemoveObserver(counter)

	sim.Logger.Info("simulation starting",
		log.String("engine", cfg.Physics.Engine),
		log.Int("dynamics", len(sim.Level.Dynamics())),
		log.Int("statics", len(sim.Level.Statics())),
		log.Int("frames", frames),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i := 0; i < frames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim.Level.Step(dt)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		sim.Logger.Warn("simulation interrupted", log.Uint64("frame", sim.Level.Frame()))
		return err
	}

	for i, d := range sim.Level.Dynamics() {
		sim.Logger.Info("final state",
			log.Int("index", i),
			log.Vec("position", *d.Position()),
			log.Vec("velocity", *d.Velocity()),
			log.Bool("grounded", d.IsOnGround()),
		)
	}
	if player != nil {
		sim.Logger.Info("player", log.Int("health", player.Health()), log.Bool("destroyed", player.IsDestroyed()))
	}
	m := sim.Events.GetMetrics()
	sim.Logger.Info("simulation finished",
		log.Uint64("frames", sim.Level.Frame()),
		log.Uint64("events", m.Published),
		log.Int("contacts", counter.counts[physics.EventContact]),
		log.Int("destroyed", counter.counts[level.EventDestroyed]),
	)
	return nil
}

// eventCounter tallies published events per type.
type eventCounter struct {
	counts map[string]int
}

func (c *eventCounter) OnPublish(eventType string, _ bus.Event) { c.counts[eventType]++ }
func (c *eventCounter) OnDelivered(string, int, error)          {}
