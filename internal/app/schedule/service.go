package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/mlbcal/internal/domain/games"
	domainschedule "github.com/preston-bernstein/mlbcal/internal/domain/schedule"
	"github.com/preston-bernstein/mlbcal/internal/domain/teams"
	"github.com/preston-bernstein/mlbcal/internal/logging"
	"github.com/preston-bernstein/mlbcal/internal/metrics"
	"github.com/preston-bernstein/mlbcal/internal/providers"
)

// Request describes one schedule lookup.
type Request struct {
	// Team is a free-form name or abbreviation resolved through the lookup table.
	Team string
	// Year is the calendar year; zero means the current year.
	Year             int
	ExcludePreseason bool
	// Full skips normalization and returns the raw game objects.
	Full bool
}

// Result carries either normalized games or, for full requests, raw games.
type Result struct {
	TeamID int
	Year   int
	Games  []domaingames.Game
	Raw    []json.RawMessage
}

// Service resolves a team, fetches its schedule and shapes the games.
type Service struct {
	table      teams.Table
	provider   providers.ScheduleProvider
	normalizer *domaingames.Normalizer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewService constructs a Service. A nil normalizer renders in the host zone.
func NewService(table teams.Table, provider providers.ScheduleProvider, normalizer *domaingames.Normalizer, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if normalizer == nil {
		normalizer = domaingames.NewNormalizer(nil)
	}
	return &Service{
		table:      table,
		provider:   provider,
		normalizer: normalizer,
		logger:     logger,
		metrics:    recorder,
		now:        time.Now,
	}
}

// Run executes the lookup. Any failure aborts the whole request; no partial
// result is returned.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	logger := logging.FromContext(ctx, s.logger)

	teamID, err := s.table.Resolve(req.Team)
	if err != nil {
		return Result{}, err
	}
	year := req.Year
	if year == 0 {
		year = s.now().In(s.normalizer.Location()).Year()
	}
	logging.Debug(logger, "team resolved",
		logging.FieldTeam, req.Team,
		logging.FieldTeamID, teamID,
		logging.FieldYear, year,
	)

	start := time.Now()
	resp, err := s.provider.FetchSchedule(ctx, teamID, year)
	if err != nil {
		return Result{}, fmt.Errorf("fetch schedule: %w", err)
	}
	raw, err := resp.Games()
	if err != nil {
		return Result{}, err
	}

	result := Result{TeamID: teamID, Year: year}
	if req.Full {
		result.Raw = rawGames(raw, req.ExcludePreseason)
		s.logDone(logger, teamID, year, len(result.Raw), start)
		return result, nil
	}

	normalized, err := s.normalizer.Normalize(raw, teamID)
	if err != nil {
		return Result{}, err
	}
	s.metrics.RecordNormalized(len(normalized))
	result.Games = domaingames.FilterPreseason(normalized, req.ExcludePreseason)
	s.logDone(logger, teamID, year, len(result.Games), start)
	return result, nil
}

func (s *Service) logDone(logger *slog.Logger, teamID, year, count int, start time.Time) {
	logging.Info(logger, "schedule ready",
		logging.FieldTeamID, teamID,
		logging.FieldYear, year,
		logging.FieldCount, count,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// rawGames keeps the upstream objects, dropping spring training by its mapped
// label when exclude is set.
func rawGames(games []domainschedule.Game, exclude bool) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(games))
	for _, g := range games {
		if exclude && domaingames.LabelFor(g.GameType) == domaingames.TypeSpringTraining {
			continue
		}
		out = append(out, g.Raw())
	}
	return out
}
