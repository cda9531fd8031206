package components

import (
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/clock"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewBasketStore,
		usecase.NewDiscountApplier,
		usecase.NewLiveCommentChannel,
		usecase.NewCatalogQueries,
	),
)
