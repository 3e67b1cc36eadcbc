package config

import "github.com/spf13/viper"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled bool
	// Textfile, when set, receives a Prometheus exposition dump at exit.
	Textfile     string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(v *viper.Viper) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolOrDefault(v, keyMetricsOn, false),
		Textfile:     stringOrDefault(v, keyMetricsTextfile, ""),
		OtlpEndpoint: stringOrDefault(v, keyOtelEndpoint, ""),
		ServiceName:  stringOrDefault(v, keyOtelService, defaultServiceName),
		OtlpInsecure: boolOrDefault(v, keyOtelInsecure, true),
	}
}
