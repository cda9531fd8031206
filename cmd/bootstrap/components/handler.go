package components

import (
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBasketHandler,
		api.NewCommentHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(
		handler.NewRouter,
	),
)
