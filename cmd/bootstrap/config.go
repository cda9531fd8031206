package bootstrap

import (
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
