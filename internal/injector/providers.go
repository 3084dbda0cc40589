package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/ecscore/internal/config"
	"github.com/zeusync/ecscore/internal/core/ecs"
	"github.com/zeusync/ecscore/internal/core/observability/log"
	"github.com/zeusync/ecscore/internal/core/system"
)

// Runtime is everything a game loop needs, built from one Config.
type Runtime struct {
	Config  *config.Config
	Logger  *log.Logger
	World   *ecs.World
	Manager *system.Manager
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideWorld,
	ProvideManager,
	wire.Struct(new(Runtime), "*"),
)

// ProvideLogger builds the zap-backed logger. The cleanup flushes it.
func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	logger, err := log.New(cfg.LogLevel(), log.WithEncoding(cfg.Log.Encoding))
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideWorld(cfg *config.Config, logger log.Log) *ecs.World {
	return ecs.NewWorld(
		ecs.WithLogger(logger),
		ecs.WithReserve(cfg.World.Reserve),
	)
}

func ProvideManager(w *ecs.World, logger log.Log) *system.Manager {
	return system.NewManager(w, system.WithLogger(logger.With(log.String("component", "systems"))))
}
