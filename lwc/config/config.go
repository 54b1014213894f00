package config

import (
	"errors"
	"fmt"
	"strings"

	internal "github.com/ZanzyTHEbar/line-word-count/lwc"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
	Trace  TraceConfig  `mapstructure:"trace"`
}

// EngineConfig stores the traversal and worker pool settings.
type EngineConfig struct {
	// Workers is the pool size; 0 means one worker per CPU.
	Workers            int    `mapstructure:"workers"`
	QueueSize          int    `mapstructure:"queueSize"`
	BufferSize         int    `mapstructure:"bufferSize"`
	FollowRootSymlinks bool   `mapstructure:"followRootSymlinks"`
	IgnoreFile         string `mapstructure:"ignoreFile"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// TraceConfig toggles the stdout trace exporter.
type TraceConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Workers:            0,
			QueueSize:          internal.DefaultQueueSize,
			BufferSize:         internal.DefaultBufferSize,
			FollowRootSymlinks: true,
			IgnoreFile:         internal.DefaultIgnoreFileName,
		},
		Log: LogConfig{Level: internal.DefaultLogLevel},
	}
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	def := Default()
	v.SetDefault("engine.workers", def.Engine.Workers)
	v.SetDefault("engine.queueSize", def.Engine.QueueSize)
	v.SetDefault("engine.bufferSize", def.Engine.BufferSize)
	v.SetDefault("engine.followRootSymlinks", def.Engine.FollowRootSymlinks)
	v.SetDefault("engine.ignoreFile", def.Engine.IgnoreFile)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("trace.enabled", def.Trace.Enabled)

	// engine.queueSize becomes LWC_ENGINE_QUEUESIZE
	v.SetEnvPrefix(internal.DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers must be >= 0, got %d", c.Engine.Workers)
	}
	if c.Engine.QueueSize < 0 {
		return fmt.Errorf("engine.queueSize must be >= 0, got %d", c.Engine.QueueSize)
	}
	if c.Engine.BufferSize < 0 {
		return fmt.Errorf("engine.bufferSize must be >= 0, got %d", c.Engine.BufferSize)
	}
	return nil
}
