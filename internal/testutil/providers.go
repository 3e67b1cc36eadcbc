package testutil

import (
	"context"

	"github.com/preston-bernstein/mlbcal/internal/domain/schedule"
	"github.com/preston-bernstein/mlbcal/internal/domain/teams"
)

// GoodProvider returns the provided schedule with no error and records the
// last request.
type GoodProvider struct {
	Response schedule.Response
	Teams    []teams.Team

	Calls      int
	LastTeamID int
	LastYear   int
}

func (p *GoodProvider) FetchSchedule(ctx context.Context, teamID, year int) (schedule.Response, error) {
	_ = ctx
	p.Calls++
	p.LastTeamID = teamID
	p.LastYear = year
	return p.Response, nil
}

func (p *GoodProvider) FetchTeams(ctx context.Context, season int) ([]teams.Team, error) {
	_ = ctx
	p.Calls++
	p.LastYear = season
	return p.Teams, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSchedule(ctx context.Context, teamID, year int) (schedule.Response, error) {
	return schedule.Response{}, p.Err
}

func (p ErrProvider) FetchTeams(ctx context.Context, season int) ([]teams.Team, error) {
	return nil, p.Err
}

// EmptyProvider returns a schedule with no dates, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchSchedule(ctx context.Context, teamID, year int) (schedule.Response, error) {
	return schedule.Response{Dates: &[]schedule.Date{}}, nil
}
