package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Generator GeneratorConfig `yaml:"generator"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StorageConfig struct {
	// Path is the SQLite file backing the blob store.
	Path string `yaml:"path"`
}

type GeneratorConfig struct {
	// Day counts are pointers so an explicit zero is distinguishable from an
	// omitted field, which falls back to the stock cycle.
	SquatDays *int `yaml:"squat_days"`
	HingeDays *int `yaml:"hinge_days"`
	PressDays *int `yaml:"press_days"`
	// Seed seeds the random picks for secondary/superset/conditioning
	// slots. Zero means a fresh random seed per process start.
	Seed int64 `yaml:"seed"`
}

type AnalyticsConfig struct {
	ImprovingThreshold float64 `yaml:"improving_threshold"`
	PlateauThreshold   float64 `yaml:"plateau_threshold"`
	OverloadStep       float64 `yaml:"overload_step"`
	RPEFloor           int     `yaml:"rpe_floor"`
	RPECeil            int     `yaml:"rpe_ceil"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. Env vars use the prefix IRONLOG_:
//
//	IRONLOG_SERVER_HOST, IRONLOG_SERVER_PORT,
//	IRONLOG_STORAGE_PATH, IRONLOG_GENERATOR_SEED
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IRONLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("IRONLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("IRONLOG_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("IRONLOG_GENERATOR_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Generator.Seed = seed
		}
	}
}

func intPtr(v int) *int { return &v }

func (c *Config) applyDefaults() {
	if c.Generator.SquatDays == nil {
		c.Generator.SquatDays = intPtr(10)
	}
	if c.Generator.HingeDays == nil {
		c.Generator.HingeDays = intPtr(15)
	}
	if c.Generator.PressDays == nil {
		c.Generator.PressDays = intPtr(15)
	}
	if c.Analytics.ImprovingThreshold == 0 {
		c.Analytics.ImprovingThreshold = 5.0
	}
	if c.Analytics.PlateauThreshold == 0 {
		c.Analytics.PlateauThreshold = 2.5
	}
	if c.Analytics.OverloadStep == 0 {
		c.Analytics.OverloadStep = 2.5
	}
	if c.Analytics.RPEFloor == 0 {
		c.Analytics.RPEFloor = 6
	}
	if c.Analytics.RPECeil == 0 {
		c.Analytics.RPECeil = 9
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if *c.Generator.SquatDays < 0 || *c.Generator.HingeDays < 0 || *c.Generator.PressDays < 0 {
		return fmt.Errorf("generator day counts must be non-negative")
	}
	if c.Analytics.RPEFloor > c.Analytics.RPECeil {
		return fmt.Errorf("analytics.rpe_floor must not exceed analytics.rpe_ceil")
	}
	return nil
}
