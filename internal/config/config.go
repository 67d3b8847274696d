package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Dashboard DashboardConfig
	Map       MapConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DataConfig struct {
	TrafficPath   string
	LocationsPath string
	Delimiter     rune
}

type DashboardConfig struct {
	TopPerNetwork      int
	PieUnfilteredLimit int
	PieFilteredLimit   int
}

type MapConfig struct {
	Style string
	Zoom  float64
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads envFile (if it exists) and the process environment.
// A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	v.AutomaticEnv()

	delimiter, err := parseDelimiter(v.GetString("DATA_DELIMITER"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Data: DataConfig{
			TrafficPath:   v.GetString("DATA_TRAFFIC_PATH"),
			LocationsPath: v.GetString("DATA_LOCATIONS_PATH"),
			Delimiter:     delimiter,
		},
		Dashboard: DashboardConfig{
			TopPerNetwork:      v.GetInt("DASHBOARD_TOP_PER_NETWORK"),
			PieUnfilteredLimit: v.GetInt("DASHBOARD_PIE_UNFILTERED_LIMIT"),
			PieFilteredLimit:   v.GetInt("DASHBOARD_PIE_FILTERED_LIMIT"),
		},
		Map: MapConfig{
			Style: v.GetString("MAP_STYLE"),
			Zoom:  v.GetFloat64("MAP_ZOOM"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	if cfg.Dashboard.TopPerNetwork <= 0 {
		return nil, fmt.Errorf("DASHBOARD_TOP_PER_NETWORK must be positive, got %d", cfg.Dashboard.TopPerNetwork)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8050)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DATA_TRAFFIC_PATH", "trafic-annuel-entrant-par-station-du-reseau-ferre-2021.csv")
	v.SetDefault("DATA_LOCATIONS_PATH", "emplacement-des-gares-idf.csv")
	v.SetDefault("DATA_DELIMITER", ";")
	v.SetDefault("DASHBOARD_TOP_PER_NETWORK", 5)
	v.SetDefault("DASHBOARD_PIE_UNFILTERED_LIMIT", 20)
	v.SetDefault("DASHBOARD_PIE_FILTERED_LIMIT", 5)
	v.SetDefault("MAP_STYLE", "open-street-map")
	v.SetDefault("MAP_ZOOM", 6)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_ENABLED", true)
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("DATA_DELIMITER must be a single character, got %q", s)
	}
	return runes[0], nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether API_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}
