package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/tilephys/internal/core/observability/log"
	"github.com/zeusync/tilephys/internal/core/systems/physics"
)

var (
	ErrUnknownEngine   = physics.ErrUnknownEngine
	ErrInvalidGravity  = errors.New("gravity must be a finite number")
	ErrInvalidStep     = errors.New("max step must be positive and finite")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is the top-level simulation configuration.
type Config struct {
	Physics PhysicsConfig `json:"physics" yaml:"physics"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// PhysicsConfig selects the engine strategy for a level.
type PhysicsConfig struct {
	Engine  string  `json:"engine" yaml:"engine"`     // "basic" or "gravity"
	Gravity float64 `json:"gravity" yaml:"gravity"`   // units/s², ignored by the basic engine
	MaxStep float64 `json:"max_step" yaml:"max_step"` // upper bound for a frame's dt, seconds
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Engine:  physics.KindGravity,
			Gravity: 25,
			MaxStep: 1.0 / 20,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load decodes YAML from r on top of Default and validates the result.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads the YAML file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func (c Config) Validate() error {
	switch c.Physics.Engine {
	case physics.KindBasic, physics.KindGravity:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEngine, c.Physics.Engine)
	}
	if math.IsNaN(c.Physics.Gravity) || math.IsInf(c.Physics.Gravity, 0) {
		return ErrInvalidGravity
	}
	if !(c.Physics.MaxStep > 0) || math.IsInf(c.Physics.MaxStep, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, c.Physics.MaxStep)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogLevel, err)
	}
	return nil
}

// LogLevel returns the parsed log level. Validate guarantees it parses.
func (c Config) LogLevel() log.Level {
	lvl, _ := log.ParseLevel(c.Log.Level)
	return lvl
}
