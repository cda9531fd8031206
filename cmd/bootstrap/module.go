package bootstrap

import (
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.Invoke(
		StartLiveCommentChannel,
	),
)
