package bootstrap

import (
	"context"
	"log/slog"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/usecase"

	"go.uber.org/fx"
)

// StartLiveCommentChannel connects the shared push channel when the process
// starts. The connection lives until shutdown; individual views only attach
// and detach counter subscriptions. A connect failure degrades to REST-only
// operation instead of failing startup.
func StartLiveCommentChannel(lc fx.Lifecycle, live usecase.LiveCommentChannel, logger *slog.Logger) {
	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, c := context.WithCancel(context.Background())
			cancel = c
			if err := live.Start(ctx); err != nil {
				logger.Error("push channel unavailable, live counters degraded to seeds only", "error", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			if cancel != nil {
				cancel()
			}
			return nil
		},
	})
}
