package cli

import (
	"github.com/preston-bernstein/mlbcal/internal/config"
	"github.com/preston-bernstein/mlbcal/internal/providers"
	"github.com/preston-bernstein/mlbcal/internal/providers/file"
	"github.com/preston-bernstein/mlbcal/internal/providers/statsapi"
)

// selectProvider reads from path when one is given and from the stats API otherwise.
func selectProvider(cfg config.Config, path string) providers.ScheduleProvider {
	if path != "" {
		return file.New(path)
	}
	return newStatsClient(cfg)
}

func newStatsClient(cfg config.Config) *statsapi.Client {
	return statsapi.NewClient(statsapi.Config{
		BaseURL:   cfg.StatsAPI.BaseURL,
		UserAgent: cfg.StatsAPI.UserAgent,
		Timeout:   cfg.StatsAPI.Timeout,
	})
}
