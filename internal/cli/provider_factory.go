package cli

import (
	"log/slog"

	"github.com/preston-bernstein/mlbcal/internal/config"
	"github.com/preston-bernstein/mlbcal/internal/metrics"
	"github.com/preston-bernstein/mlbcal/internal/providers"
)

// providerFactory assembles providers with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) schedule(cfg config.Config, path string) providers.ScheduleProvider {
	base := selectProvider(cfg, path)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, providerName(base),
		cfg.StatsAPI.Attempts, cfg.StatsAPI.Backoff)
}

func (f providerFactory) teams(cfg config.Config) providers.TeamProvider {
	base := newStatsClient(cfg)
	return providers.NewRetryingTeamProvider(base, f.logger, f.metrics, providerName(base),
		cfg.StatsAPI.Attempts, cfg.StatsAPI.Backoff)
}
