package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ecscore/internal/config"
	"github.com/zeusync/ecscore/internal/core/observability/log"
)

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, time.Second/60, c.Step())
	assert.Equal(t, log.LevelInfo, c.LogLevel())
	assert.Equal(t, 32, c.World.Reserve)
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := config.Parse(strings.NewReader(`
log:
  level: debug
world:
  entities: 50
  max_speed: 4.5
loop:
  tick_rate: 30
  max_ticks: 0
telemetry:
  enabled: true
  addr: ":9000"
`))
	require.NoError(t, err)

	assert.Equal(t, log.LevelDebug, c.LogLevel())
	assert.Equal(t, "console", c.Log.Encoding)
	assert.Equal(t, 50, c.World.Entities)
	assert.Equal(t, float32(4.5), c.World.MaxSpeed)
	assert.Equal(t, 32, c.World.Reserve)
	assert.Equal(t, 30, c.Loop.TickRate)
	assert.Zero(t, c.Loop.MaxTicks)
	assert.True(t, c.Telemetry.Enabled)
	assert.Equal(t, ":9000", c.Telemetry.Addr)
	assert.Equal(t, uint64(10), c.Telemetry.Every)
}

func TestParseEmptyDocument(t *testing.T) {
	c, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse(strings.NewReader("loop: [1, 2"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := config.Default()
	c.Log.Level = "verbose"
	c.Log.Encoding = "xml"
	c.World.Reserve = -1
	c.World.InactiveRatio = 2
	c.Loop.TickRate = 0
	c.Telemetry.Enabled = true
	c.Telemetry.Addr = ""

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, field := range []string{"log.level", "log.encoding", "world.reserve", "world.inactive_ratio", "loop.tick_rate", "telemetry.addr"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecsdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  seed: 42\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.World.Seed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
