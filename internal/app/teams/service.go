package teams

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/mlbcal/internal/domain/teams"
	"github.com/preston-bernstein/mlbcal/internal/logging"
	"github.com/preston-bernstein/mlbcal/internal/lookup"
	"github.com/preston-bernstein/mlbcal/internal/providers"
)

// Service builds lookup tables from the upstream team listing.
type Service struct {
	provider providers.TeamProvider
	extras   map[int][]string
	logger   *slog.Logger
}

// NewService constructs a Service. A nil extras map uses teams.Extras.
func NewService(provider providers.TeamProvider, extras map[int][]string, logger *slog.Logger) *Service {
	if extras == nil {
		extras = teams.Extras
	}
	return &Service{provider: provider, extras: extras, logger: logger}
}

// BuildTable fetches the listing for season and turns it into a lookup table
// in upstream order.
func (s *Service) BuildTable(ctx context.Context, season int) (teams.Table, error) {
	logger := logging.FromContext(ctx, s.logger)

	listing, err := s.provider.FetchTeams(ctx, season)
	if err != nil {
		return teams.Table{}, fmt.Errorf("fetch teams: %w", err)
	}
	if len(listing) == 0 {
		return teams.Table{}, fmt.Errorf("fetch teams: empty listing for season %d", season)
	}

	table := teams.BuildTable(listing, s.extras)
	if table.Len() != lookup.ExpectedTeams {
		logging.Warn(logger, "unexpected team count",
			logging.FieldYear, season,
			logging.FieldCount, table.Len(),
		)
	}
	logging.Info(logger, "lookup table built",
		logging.FieldYear, season,
		logging.FieldCount, table.Len(),
	)
	return table, nil
}
