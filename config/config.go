// Package config loads and validates datasmith configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// --- Configuration Structs ---

// GeneratorConfig controls the messy-data generation run.
type GeneratorConfig struct {
	Seed              int64              `mapstructure:"seed"`
	TotalRows         int64              `mapstructure:"total_rows"`
	BatchSize         int64              `mapstructure:"batch_size"`
	OutputPath        string             `mapstructure:"output_path"`
	WarehouseAffinity float64            `mapstructure:"warehouse_affinity"`
	ShippingAffinity  float64            `mapstructure:"shipping_affinity"`
	ProgressEvery     int                `mapstructure:"progress_every"`
	SummaryPath       string             `mapstructure:"summary_path"`
	Rates             map[string]float64 `mapstructure:"rates"`
}

// UploadConfig holds settings for the optional S3 upload step.
type UploadConfig struct {
	Bucket string `mapstructure:"bucket"`
	Key    string `mapstructure:"key"`
	Region string `mapstructure:"region"`
}

type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Upload    UploadConfig    `mapstructure:"upload"`
}

// --- Defaults ---

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.seed", 42)
	v.SetDefault("generator.total_rows", 1000)
	v.SetDefault("generator.batch_size", 500)
	v.SetDefault("generator.output_path", "messy_ecommerce.csv")
	v.SetDefault("generator.warehouse_affinity", 0.8)
	v.SetDefault("generator.shipping_affinity", 0.85)
	v.SetDefault("generator.progress_every", 5)
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// --- Load Configuration ---

// LoadConfig reads a YAML configuration file, filling unset keys with defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// --- Validation Functions ---

// validate is a helper function to reduce repetition.
func validate(condition bool, format string, a ...any) error {
	if !condition {
		return fmt.Errorf(format, a...)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator validation failed: %w", err)
	}
	return nil
}

func (gc *GeneratorConfig) Validate() error {
	if err := validate(gc.TotalRows > 0, "total_rows must be positive, got %d", gc.TotalRows); err != nil {
		return err
	}
	if err := validate(gc.BatchSize > 0, "batch_size must be positive, got %d", gc.BatchSize); err != nil {
		return err
	}
	if err := validate(gc.OutputPath != "", "output_path is required"); err != nil {
		return err
	}
	if err := validate(gc.WarehouseAffinity >= 0 && gc.WarehouseAffinity <= 1,
		"warehouse_affinity must be between 0 and 1, got %f", gc.WarehouseAffinity); err != nil {
		return err
	}
	if err := validate(gc.ShippingAffinity >= 0 && gc.ShippingAffinity <= 1,
		"shipping_affinity must be between 0 and 1, got %f", gc.ShippingAffinity); err != nil {
		return err
	}
	for field, rate := range gc.Rates {
		if err := validate(rate >= 0 && rate <= 1,
			"rate for field '%s' must be between 0 and 1, got %f", field, rate); err != nil {
			return err
		}
	}
	return nil
}

func (uc *UploadConfig) Validate() error {
	if err := validate(uc.Bucket != "", "upload bucket is required"); err != nil {
		return err
	}
	return validate(uc.Key != "", "upload key is required")
}
