//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/tilephys/internal/config"
)

func InitializeSimulation(cfg config.Config) (*Simulation, error) {
	wire.Build(SimulationSet)
	return nil, nil
}
