package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URLs)
// - default: Values common across all environments (timeouts, channel names)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Services ServicesConfig
	Push     PushConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// ServicesConfig holds the base URLs of the backend services the storefront
// composes. Token issuance is owned by the auth service; the gateway only
// attaches the already-issued bearer token to outbound calls.
type ServicesConfig struct {
	BasketURL   string        `envconfig:"BASKET_SERVICE_URL" required:"true"`
	CommentURL  string        `envconfig:"COMMENT_SERVICE_URL" required:"true"`
	CatalogURL  string        `envconfig:"CATALOG_SERVICE_URL" required:"true"`
	BearerToken string        `envconfig:"SERVICE_BEARER_TOKEN" default:""`
	Timeout     time.Duration `envconfig:"SERVICE_TIMEOUT" default:"10s"`
}

// PushConfig selects and configures the push-channel transport that delivers
// comment-count events. The connection is shared process-wide.
type PushConfig struct {
	Transport    string   `envconfig:"PUSH_TRANSPORT" default:"redis"` // redis | kafka
	RedisAddr    string   `envconfig:"PUSH_REDIS_ADDR" default:"localhost:6379"`
	RedisChannel string   `envconfig:"PUSH_REDIS_CHANNEL" default:"comments.count"`
	KafkaBrokers []string `envconfig:"PUSH_KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic   string   `envconfig:"PUSH_KAFKA_TOPIC" default:"comments.count"`
	KafkaGroup   string   `envconfig:"PUSH_KAFKA_GROUP" default:"storefront-client"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:4200"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Services: ServicesConfig{
			BasketURL:  "http://localhost:15003",
			CommentURL: "http://localhost:15004",
			CatalogURL: "http://localhost:15002",
			Timeout:    2 * time.Second,
		},
		Push: PushConfig{
			Transport:    "redis",
			RedisAddr:    "localhost:16379",
			RedisChannel: "comments.count",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
