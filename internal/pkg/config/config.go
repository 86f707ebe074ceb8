package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/marcodiri/micros-chess/pkg/log"
	pkgsql "github.com/marcodiri/micros-chess/pkg/sql"
)

const (
	EnvPrefix = "CHESS_"

	BrokerTypePulsar = "pulsar"
	BrokerTypeNATS   = "nats"
)

var ErrInvalidConfig = errors.New("invalid config")

type (
	Config struct {
		Log         LogConfig         `koanf:"log"`
		HTTP        HTTPConfig        `koanf:"http"`
		SQL         SQLConfig         `koanf:"sql"`
		Broker      BrokerConfig      `koanf:"broker"`
		Outbox      OutboxConfig      `koanf:"outbox"`
		Tracing     TracingConfig     `koanf:"tracing"`
		GameService GameServiceConfig `koanf:"game_service"`
	}

	LogConfig struct {
		Level string `koanf:"level"`
	}

	HTTPConfig struct {
		Address string `koanf:"address"`
	}

	SQLConfig struct {
		User               string        `koanf:"user"`
		Password           string        `koanf:"password"`
		Address            string        `koanf:"address"`
		Database           string        `koanf:"database"`
		ConnectionTimeout  time.Duration `koanf:"connection_timeout"`
		MaxOpenConnections int           `koanf:"max_open_connections"`
		MaxIdleConnections int           `koanf:"max_idle_connections"`
	}

	BrokerConfig struct {
		Type              string        `koanf:"type"`
		Address           string        `koanf:"address"`
		ConnectionTimeout time.Duration `koanf:"connection_timeout"`
	}

	OutboxConfig struct {
		Interval time.Duration `koanf:"interval"`
	}

	// TracingConfig enables span export when Endpoint is set.
	TracingConfig struct {
		Endpoint string `koanf:"endpoint"`
	}

	GameServiceConfig struct {
		URL string `koanf:"url"`
	}
)

var defaults = map[string]any{
	"log.level":                 "info",
	"http.address":              ":8080",
	"sql.user":                  "chess",
	"sql.password":              "chess",
	"sql.address":               "localhost:5432",
	"sql.database":              "chess",
	"sql.connection_timeout":    "20s",
	"sql.max_open_connections":  10,
	"sql.max_idle_connections":  10,
	"broker.type":               BrokerTypePulsar,
	"broker.address":            "localhost:6650",
	"broker.connection_timeout": "20s",
	"outbox.interval":           "1s",
	"tracing.endpoint":          "",
	"game_service.url":          "http://localhost:8080",
}

// Load reads defaults, then the optional yaml file, then CHESS_ prefixed env variables.
// CHESS_SQL__MAX_OPEN_CONNECTIONS overrides sql.max_open_connections.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	for key, value := range defaults {
		err := k.Set(key, value)
		if err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env variables: %w", err)
	}

	var cfg Config
	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	_, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.HTTP.Address == "" {
		return fmt.Errorf("%w: http.address is empty", ErrInvalidConfig)
	}
	if c.Broker.Type != BrokerTypePulsar && c.Broker.Type != BrokerTypeNATS {
		return fmt.Errorf("%w: broker.type %q is not one of %s, %s", ErrInvalidConfig, c.Broker.Type, BrokerTypePulsar, BrokerTypeNATS)
	}
	if c.Outbox.Interval <= 0 {
		return fmt.Errorf("%w: outbox.interval must be positive", ErrInvalidConfig)
	}
	if c.SQL.MaxIdleConnections > c.SQL.MaxOpenConnections {
		return fmt.Errorf("%w: sql.max_idle_connections exceeds sql.max_open_connections", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.LevelInfo
	}

	return level
}

func (c *Config) SQLConfig() *pkgsql.Config {
	return &pkgsql.Config{
		DSN: pkgsql.DSN{
			User:     c.SQL.User,
			Password: c.SQL.Password,
			Address:  c.SQL.Address,
			Database: c.SQL.Database,
		},
		ConnectionTimeout:  c.SQL.ConnectionTimeout,
		MaxOpenConnections: c.SQL.MaxOpenConnections,
		MaxIdleConnections: c.SQL.MaxIdleConnections,
	}
}
