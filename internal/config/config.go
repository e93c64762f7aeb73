package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Asset  AssetConfig  `mapstructure:"asset"`
	Export ExportConfig `mapstructure:"export"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// APIConfig holds dashboard backend configuration
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AssetConfig holds asset host (image upload) configuration
type AssetConfig struct {
	UploadURL      string        `mapstructure:"upload_url"`
	CloudName      string        `mapstructure:"cloud_name"`
	ReportPreset   string        `mapstructure:"report_preset"`
	DeliveryPreset string        `mapstructure:"delivery_preset"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// ExportConfig holds report export configuration
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables.
// Each call works on its own viper instance, so loads are hermetic.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.timeout", 30*time.Second)

	// Asset host defaults
	v.SetDefault("asset.timeout", 60*time.Second)
	v.SetDefault("asset.report_preset", "service_report")
	v.SetDefault("asset.delivery_preset", "delivery_note")

	// Export defaults
	v.SetDefault("export.output_dir", "exports")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("api.base_url", "FIELDSERVE_API_URL")
	v.BindEnv("asset.upload_url", "FIELDSERVE_ASSET_UPLOAD_URL")
	v.BindEnv("asset.cloud_name", "FIELDSERVE_ASSET_CLOUD_NAME")
	v.BindEnv("asset.report_preset", "FIELDSERVE_UPLOAD_PRESET_REPORT")
	v.BindEnv("asset.delivery_preset", "FIELDSERVE_UPLOAD_PRESET_DELIVERY")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Asset.UploadURL == "" {
		return fmt.Errorf("asset.upload_url is required")
	}
	if c.Asset.CloudName == "" {
		return fmt.Errorf("asset.cloud_name is required")
	}
	if c.Asset.ReportPreset == "" {
		return fmt.Errorf("asset.report_preset is required")
	}
	if c.Asset.DeliveryPreset == "" {
		return fmt.Errorf("asset.delivery_preset is required")
	}
	return nil
}
