// Package config manages engine configuration using Viper, following the
// same Config-over-viper shape the teacher uses for Louvain and SCAR
// (algorithm.*/performance.*/logging.* keys with typed getters and a
// zerolog logger builder), generalized to the hypergraph label propagation
// engine's own parameters.
package config

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages algorithm configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with sensible defaults.
func NewConfig() *Config {
	v := viper.New()

	// Engine parameters.
	v.SetDefault("engine.max_iterations", 100)
	v.SetDefault("engine.tolerance", 1e-6)
	v.SetDefault("engine.max_labels", 10)
	v.SetDefault("engine.workgroup_size", 256)

	// Pool classification thresholds.
	v.SetDefault("device.threshold_wg_edge", 256)
	v.SetDefault("device.threshold_sg_edge", 32)
	v.SetDefault("device.threshold_wg_vertex", 1024)
	v.SetDefault("device.threshold_sg_vertex", 256)

	// Performance parameters.
	v.SetDefault("performance.num_workers", runtime.NumCPU())

	// Logging parameters.
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile loads configuration overrides from path (any format viper
// supports by extension: YAML, JSON, TOML, ...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set allows dynamic configuration changes, e.g. from CLI flags.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) MaxIterations() int { return c.v.GetInt("engine.max_iterations") }
func (c *Config) Tolerance() float64 { return c.v.GetFloat64("engine.tolerance") }
func (c *Config) MaxLabels() int     { return c.v.GetInt("engine.max_labels") }
func (c *Config) WorkgroupSize() int { return c.v.GetInt("engine.workgroup_size") }

func (c *Config) ThresholdWGEdge() int   { return c.v.GetInt("device.threshold_wg_edge") }
func (c *Config) ThresholdSGEdge() int   { return c.v.GetInt("device.threshold_sg_edge") }
func (c *Config) ThresholdWGVertex() int { return c.v.GetInt("device.threshold_wg_vertex") }
func (c *Config) ThresholdSGVertex() int { return c.v.GetInt("device.threshold_sg_vertex") }

func (c *Config) NumWorkers() int { return c.v.GetInt("performance.num_workers") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// CreateLogger creates a zerolog logger based on the configured level.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "hlp").Logger()
}
