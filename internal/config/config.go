package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the CLI.
type Config struct {
	StatsAPI StatsAPIConfig
	// Timezone names the zone for local display fields; empty means the host zone.
	Timezone string
	Log      LogConfig
	Metrics  MetricsConfig
}

// LogConfig selects logger level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from an optional .env file, an optional config file
// named by MLBCAL_CONFIG and MLBCAL_* environment variables, with sensible defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := newViper()
	if path := os.Getenv(envConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		StatsAPI: loadStatsAPI(v),
		Timezone: stringOrDefault(v, keyTimezone, ""),
		Log: LogConfig{
			Level:  stringOrDefault(v, keyLogLevel, defaultLogLevel),
			Format: stringOrDefault(v, keyLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(v),
	}
}
