package config

import "time"

// envPrefix namespaces every key; MLBCAL_STATSAPI_BASE_URL maps to keyStatsAPIBaseURL.
const envPrefix = "MLBCAL"

const (
	envConfigFile = "MLBCAL_CONFIG"

	keyStatsAPIBaseURL = "statsapi_base_url"
	keyUserAgent       = "user_agent"
	keyHTTPTimeout     = "http_timeout"
	keyFetchAttempts   = "fetch_attempts"
	keyFetchBackoff    = "fetch_backoff"
	keyTimezone        = "timezone"
	keyLogLevel        = "log_level"
	keyLogFormat       = "log_format"
	keyMetricsOn       = "metrics_enabled"
	keyMetricsTextfile = "metrics_textfile"
	keyOtelEndpoint    = "otel_exporter_otlp_endpoint"
	keyOtelService     = "otel_service_name"
	keyOtelInsecure    = "otel_exporter_otlp_insecure"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
	defaultUserAgent       = "mlbcal/dev"
	defaultHTTPTimeout     = 10 * Duration(time.Second)
	// One attempt keeps the fetch retry-free unless explicitly configured.
	defaultFetchAttempts = 1
	defaultFetchBackoff  = 500 * Duration(time.Millisecond)
	defaultLogLevel      = "warn"
	defaultLogFormat     = "text"
	defaultServiceName   = "mlbcal"
)
