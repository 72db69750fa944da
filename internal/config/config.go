package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Map     MapConfig     `yaml:"map" mapstructure:"map"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Export  ExportConfig  `yaml:"export" mapstructure:"export"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// MapConfig configures the map surface and the re-center animation.
type MapConfig struct {
	Zoom          float64       `yaml:"zoom" mapstructure:"zoom"`
	FlyDuration   time.Duration `yaml:"fly_duration" mapstructure:"fly_duration"`
	TileURL       string        `yaml:"tile_url" mapstructure:"tile_url"`
	Attribution   string        `yaml:"attribution" mapstructure:"attribution"`
	MarkerIconURL string        `yaml:"marker_icon_url" mapstructure:"marker_icon_url"`
}

// CatalogConfig selects the city dataset. An empty path means the
// dataset compiled into the binary.
type CatalogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ExportConfig configures the export command.
type ExportConfig struct {
	Dir         string   `yaml:"dir" mapstructure:"dir"`
	Formats     []string `yaml:"formats" mapstructure:"formats"`
	Concurrency int      `yaml:"concurrency" mapstructure:"concurrency"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CITYVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("map.zoom", 13)
	v.SetDefault("map.fly_duration", "1.5s")
	v.SetDefault("map.tile_url", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.attribution", `&copy; <a href="https://openstreetmap.org">OpenStreetMap</a> contributors`)
	v.SetDefault("map.marker_icon_url", "https://cdnjs.cloudflare.com/ajax/libs/leaflet/1.7.1/images/marker-icon.png")
	v.SetDefault("catalog.path", "")
	v.SetDefault("export.dir", "./export")
	v.SetDefault("export.formats", []string{"geojson"})
	v.SetDefault("export.concurrency", 4)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the map settings the viewer depends on.
func (m MapConfig) Validate() error {
	var problems []string
	if m.Zoom <= 0 {
		problems = append(problems, "map.zoom must be positive")
	}
	if m.FlyDuration <= 0 {
		problems = append(problems, "map.fly_duration must be positive")
	}
	if m.TileURL == "" {
		problems = append(problems, "map.tile_url is required")
	}
	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
