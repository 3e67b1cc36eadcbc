package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultUserAgent   = "mlbcal"
	defaultHTTPTimeout = 10 * time.Second
	// sportMLB restricts listings to the major leagues.
	sportMLB = "1"
)
