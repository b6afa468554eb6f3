// Package config loads engine configuration from YAML files, environment
// variables and built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/deckforge/engine-go/internal/game"
)

// Config is the root configuration tree.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// EngineConfig bounds the event dispatcher.
type EngineConfig struct {
	QueueCapacity   int `mapstructure:"queue_capacity"`
	MaxCascadeDepth int `mapstructure:"max_cascade_depth"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. Values resolve in precedence order: environment
// variables (ENGINE_ prefix, dots become underscores), then the config file,
// then defaults. An empty path skips the file and is not an error; a path
// that cannot be read is.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("engine.queue_capacity", game.DefaultQueueCapacity)
	v.SetDefault("engine.max_cascade_depth", game.DefaultMaxCascadeDepth)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Engine.QueueCapacity < 1 {
		return fmt.Errorf("engine.queue_capacity must be positive, got %d", c.Engine.QueueCapacity)
	}
	if c.Engine.MaxCascadeDepth < 1 {
		return fmt.Errorf("engine.max_cascade_depth must be positive, got %d", c.Engine.MaxCascadeDepth)
	}
	return nil
}

// NewEventManager builds an event manager bounded by this configuration.
func (c EngineConfig) NewEventManager() game.EventManager {
	return game.NewEventManagerWithLimits(c.QueueCapacity, c.MaxCascadeDepth)
}
