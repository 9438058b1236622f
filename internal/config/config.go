package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"price-history-viewer/internal/logging"
	"price-history-viewer/internal/window"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Data      DataConfig      `mapstructure:"data"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Window    WindowConfig    `mapstructure:"window"`
	Export    ExportConfig    `mapstructure:"export"`
	Watch     WatchConfig     `mapstructure:"watch"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// DataConfig locates the flat-file sources and tunes their caching.
type DataConfig struct {
	PriceHistoryPath string        `mapstructure:"price_history_path"`
	SupplyPath       string        `mapstructure:"supply_path"`
	ImagePath        string        `mapstructure:"image_path"`
	PriceTTL         time.Duration `mapstructure:"price_ttl"`
	DefaultImageURL  string        `mapstructure:"default_image_url"`
}

// AnalyticsConfig governs the derived statistics.
type AnalyticsConfig struct {
	SamplesPerHour int  `mapstructure:"samples_per_hour"`
	MAEnabled      bool `mapstructure:"ma_enabled"`
	MAPeriodHours  int  `mapstructure:"ma_period_hours"`
}

// WindowConfig 描述时间窗口的候选回看档位。
type WindowConfig struct {
	LookbackPresets []time.Duration `mapstructure:"lookback_presets"`
}

// ExportConfig sets CLI export behaviour.
type ExportConfig struct {
	MaxDataPoints int `mapstructure:"max_data_points"`
	ChartWidth    int `mapstructure:"chart_width"`
	ChartHeight   int `mapstructure:"chart_height"`
}

// WatchConfig governs the periodic redraw loop.
type WatchConfig struct {
	Interval        time.Duration `mapstructure:"interval"`
	AlignToInterval bool          `mapstructure:"align_to_interval"`
	StartupDelay    time.Duration `mapstructure:"startup_delay"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PRICEHIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pricehist")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("data.price_history_path", "data/price_history.csv")
	v.SetDefault("data.supply_path", "data/nft_supply_results.csv")
	v.SetDefault("data.image_path", "data/img.csv")
	v.SetDefault("data.price_ttl", "60s")
	v.SetDefault("data.default_image_url", "https://i.ibb.co/tpZ9HsSY/photo-2023-12-23-09-42-33.jpg")

	v.SetDefault("analytics.samples_per_hour", 2)
	v.SetDefault("analytics.ma_enabled", true)
	v.SetDefault("analytics.ma_period_hours", 6)

	v.SetDefault("window.lookback_presets", []string{"1h", "6h", "24h", "168h", "720h"})

	v.SetDefault("export.max_data_points", 100000)
	v.SetDefault("export.chart_width", 1280)
	v.SetDefault("export.chart_height", 720)

	v.SetDefault("watch.interval", "60s")
	v.SetDefault("watch.align_to_interval", false)
	v.SetDefault("watch.startup_delay", "0s")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Data.PriceHistoryPath == "" {
		return fmt.Errorf("data.price_history_path must be set")
	}
	if c.Data.PriceTTL < 0 {
		return fmt.Errorf("data.price_ttl cannot be negative")
	}
	if c.Analytics.SamplesPerHour <= 0 {
		return fmt.Errorf("analytics.samples_per_hour must be greater than zero")
	}
	if c.Analytics.MAPeriodHours < 1 || c.Analytics.MAPeriodHours > 24 {
		return fmt.Errorf("analytics.ma_period_hours 必须在 1 到 24 之间")
	}
	for _, d := range c.Window.LookbackPresets {
		if d < 0 {
			return fmt.Errorf("window.lookback_presets cannot contain negative durations")
		}
	}
	if c.Export.MaxDataPoints <= 0 {
		return fmt.Errorf("export.max_data_points must be greater than zero")
	}
	if c.Export.ChartWidth <= 0 || c.Export.ChartHeight <= 0 {
		return fmt.Errorf("export.chart_width and export.chart_height must be greater than zero")
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be greater than zero")
	}
	return nil
}

// ResolveMaxPoints returns either the CLI override or config default.
func (c *Config) ResolveMaxPoints(override int) int {
	if override > 0 {
		return override
	}
	return c.Export.MaxDataPoints
}

// PresetLabels renders the lookback presets for help and error text.
func (c *Config) PresetLabels() string {
	labels := make([]string, 0, len(c.Window.LookbackPresets))
	for _, d := range c.Window.LookbackPresets {
		labels = append(labels, window.FormatDuration(d))
	}
	return strings.Join(labels, ", ")
}
