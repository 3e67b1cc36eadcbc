package providers

import (
	"context"

	"github.com/preston-bernstein/mlbcal/internal/domain/schedule"
	"github.com/preston-bernstein/mlbcal/internal/domain/teams"
)

// ScheduleProvider fetches the raw schedule document for one team and season.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, teamID, year int) (schedule.Response, error)
}

// TeamProvider fetches the upstream team listing for a season.
type TeamProvider interface {
	FetchTeams(ctx context.Context, season int) ([]teams.Team, error)
}
