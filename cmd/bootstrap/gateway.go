package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/gateway"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/gateway/push"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/config"

	"go.uber.org/fx"
)

// GatewayModule builds the outbound boundary: one REST gateway shared by all
// services, plus the push-channel source selected by configuration. Both are
// explicit instances with process-wide lifetime; nothing here is package
// state.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewRestGateway,
		func(rg *gateway.RestGateway) gateway.BasketGateway { return rg },
		func(rg *gateway.RestGateway) gateway.CommentGateway { return rg },
		func(rg *gateway.RestGateway) gateway.CatalogGateway { return rg },
		NewPushSource,
	),
)

func NewRestGateway(cfg config.Config, logger *slog.Logger) *gateway.RestGateway {
	return gateway.NewRestGateway(cfg.Services, logger)
}

func NewPushSource(cfg config.Config, logger *slog.Logger) (push.Source, error) {
	switch cfg.Push.Transport {
	case "redis", "":
		return push.NewRedisSource(cfg.Push.RedisAddr, cfg.Push.RedisChannel, logger), nil
	case "kafka":
		return push.NewKafkaSource(cfg.Push.KafkaBrokers, cfg.Push.KafkaGroup, cfg.Push.KafkaTopic, logger), nil
	default:
		return nil, fmt.Errorf("unknown push transport %q", cfg.Push.Transport)
	}
}
