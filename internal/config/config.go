package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/ecscore/internal/core/observability/log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes a demo run: logging, world sizing, the fixed-step loop
// and the optional telemetry endpoint.
type Config struct {
	Log       LogConfig       `json:"log" yaml:"log"`
	World     WorldConfig     `json:"world" yaml:"world"`
	Loop      LoopConfig      `json:"loop" yaml:"loop"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

type WorldConfig struct {
	// Reserve is the initial capacity of every component pool.
	Reserve int `json:"reserve" yaml:"reserve"`
	// Entities is the number of entities spawned at startup.
	Entities int `json:"entities" yaml:"entities"`
	// InactiveRatio is the share of spawned entities created without ActiveTag.
	InactiveRatio float64 `json:"inactive_ratio" yaml:"inactive_ratio"`
	// MaxLifetime bounds the random Lifetime given to spawned entities, in seconds.
	MaxLifetime float32 `json:"max_lifetime" yaml:"max_lifetime"`
	// MaxSpeed clamps velocities in the movement system; zero disables it.
	MaxSpeed float32 `json:"max_speed" yaml:"max_speed"`
	Seed     int64   `json:"seed" yaml:"seed"`
}

type LoopConfig struct {
	// TickRate is the number of fixed steps per second.
	TickRate int `json:"tick_rate" yaml:"tick_rate"`
	// MaxTicks stops the loop after that many steps; zero runs until cancelled.
	MaxTicks uint64 `json:"max_ticks" yaml:"max_ticks"`
	// Realtime paces steps against the wall clock instead of running flat out.
	Realtime bool `json:"realtime" yaml:"realtime"`
}

type TelemetryConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Addr    string `json:"addr" yaml:"addr"`
	// Every publishes a frame snapshot once per that many ticks.
	Every uint64 `json:"every" yaml:"every"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		World: WorldConfig{
			Reserve:       32,
			Entities:      1000,
			InactiveRatio: 0.1,
			MaxLifetime:   10,
			MaxSpeed:      0,
			Seed:          1,
		},
		Loop: LoopConfig{
			TickRate: 60,
			MaxTicks: 600,
		},
		Telemetry: TelemetryConfig{
			Addr:  "127.0.0.1:8089",
			Every: 10,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse decodes YAML from r over the defaults and validates the result. An
// empty document yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err))
	}
	if c.Log.Encoding != "console" && c.Log.Encoding != "json" {
		errs = append(errs, fmt.Errorf("%w: log.encoding must be console or json, got %q", ErrInvalidConfig, c.Log.Encoding))
	}
	if c.World.Reserve < 0 {
		errs = append(errs, fmt.Errorf("%w: world.reserve must not be negative", ErrInvalidConfig))
	}
	if c.World.Entities < 0 {
		errs = append(errs, fmt.Errorf("%w: world.entities must not be negative", ErrInvalidConfig))
	}
	if c.World.InactiveRatio < 0 || c.World.InactiveRatio > 1 {
		errs = append(errs, fmt.Errorf("%w: world.inactive_ratio must be within [0, 1]", ErrInvalidConfig))
	}
	if c.World.MaxLifetime <= 0 {
		errs = append(errs, fmt.Errorf("%w: world.max_lifetime must be positive", ErrInvalidConfig))
	}
	if c.World.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w: world.max_speed must not be negative", ErrInvalidConfig))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: loop.tick_rate must be positive", ErrInvalidConfig))
	}
	if c.Telemetry.Enabled {
		if c.Telemetry.Addr == "" {
			errs = append(errs, fmt.Errorf("%w: telemetry.addr is required when telemetry is enabled", ErrInvalidConfig))
		}
		if c.Telemetry.Every == 0 {
			errs = append(errs, fmt.Errorf("%w: telemetry.every must be positive", ErrInvalidConfig))
		}
	}
	return errors.Join(errs...)
}

// Step returns the fixed time step of the loop.
func (c *Config) Step() time.Duration {
	return time.Second / time.Duration(c.Loop.TickRate)
}

// LogLevel returns the parsed log level. Call it on a validated config.
func (c *Config) LogLevel() log.Level {
	l, _ := log.ParseLevel(c.Log.Level)
	return l
}
