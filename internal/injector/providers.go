package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/tilephys/internal/config"
	"github.com/zeusync/tilephys/internal/core/events/bus"
	"github.com/zeusync/tilephys/internal/core/level"
	"github.com/zeusync/tilephys/internal/core/observability/log"
	"github.com/zeusync/tilephys/internal/core/systems/physics"
)

// Simulation bundles everything a headless run needs.
type Simulation struct {
	Config config.Config
	Logger *log.Logger
	Events bus.EventBus
	Engine physics.Engine
	Level  *level.Level
}

var SimulationSet = wire.NewSet(
	ProvideLogger,
	ProvideEventBus,
	ProvideEngine,
	ProvideLevel,
	wire.Struct(new(Simulation), "*"),
)

func ProvideLogger(cfg config.Config) *log.Logger {
	return log.New(cfg.LogLevel())
}

func ProvideEventBus() bus.EventBus {
	return bus.New()
}

func ProvideEngine(cfg config.Config, logger *log.Logger, events bus.EventBus) (physics.Engine, error) {
	return physics.New(cfg.Physics.Engine, cfg.Physics.Gravity,
		physics.WithLogger(logger.With(log.String("engine", cfg.Physics.Engine))),
		physics.WithEventBus(events),
	)
}

func ProvideLevel(cfg config.Config, engine physics.Engine, logger *log.Logger, events bus.EventBus) *level.Level {
	return level.New(engine,
		level.WithMaxStep(cfg.Physics.MaxStep),
		level.WithLogger(logger),
		level.WithEventBus(events),
	)
}
