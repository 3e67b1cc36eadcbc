package games

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/mlbcal/internal/domain/schedule"
	"github.com/preston-bernstein/mlbcal/internal/timeutil"
)

// ErrMalformedTimestamp is returned when a game date does not match the
// upstream timestamp layout.
var ErrMalformedTimestamp = timeutil.ErrMalformedTimestamp

// Normalizer flattens raw schedule games into Game records. Display fields are
// rendered in loc.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a Normalizer rendering local fields in loc. A nil loc
// means the host's local zone.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Location returns the zone used for local display fields.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Normalize maps raw games to records in input order from the perspective of
// teamID. The first malformed game aborts the whole batch.
func (n *Normalizer) Normalize(raw []schedule.Game, teamID int) ([]Game, error) {
	out := make([]Game, 0, len(raw))
	regSeason := 0
	for _, g := range raw {
		game, next, err := n.normalizeGame(g, teamID, regSeason)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", g.GamePk, err)
		}
		regSeason = next
		out = append(out, game)
	}
	return out, nil
}

// normalizeGame maps one game and returns the updated regular season counter.
func (n *Normalizer) normalizeGame(g schedule.Game, teamID, regSeason int) (Game, int, error) {
	start, err := timeutil.ParseUpstream(g.GameDate)
	if err != nil {
		return Game{}, regSeason, err
	}
	local := start.In(n.loc)

	var seasonNumber *int
	if g.GameType == CodeRegularSeason {
		regSeason++
		num := regSeason
		seasonNumber = &num
	}

	home, away := g.Teams.Home, g.Teams.Away
	venue, venueID := venueFields(g.Venue)
	homeWins, homeLosses, homePct := recordFields(home.LeagueRecord)
	awayWins, awayLosses, awayPct := recordFields(away.LeagueRecord)
	return Game{
		GameID:              g.GamePk,
		RegSeasonGameNumber: seasonNumber,
		Season:              g.Season,
		GameDateISO:         timeutil.FormatISO(start),
		GameDateLocal:       timeutil.FormatDate(local),
		GameDayOfWeekLocal:  local.Format(timeutil.WeekdayLayout),
		GameTimeLocal:       local.Format(timeutil.ClockLayout),
		DayNight:            g.DayNight,
		GameType:            LabelFor(g.GameType),
		Desc:                description(g.Description),
		Venue:               venue,
		VenueID:             venueID,
		ScheduledInnings:    g.ScheduledInnings,
		SeriesGameNumber:    g.SeriesGameNumber,
		GamesInSeries:       g.GamesInSeries,
		DoubleHeader:        g.DoubleHeader == "Y",
		FinalGameStatus:     finalStatus(g.Status),
		HomeGame:            teamID == home.Team.ID,

		HomeTeamID:           home.Team.ID,
		HomeTeamName:         home.Team.Name,
		HomeTeamScore:        home.Score,
		HomeTeamWinner:       home.IsWinner,
		HomeTeamRecordWins:   homeWins,
		HomeTeamRecordLosses: homeLosses,
		HomeTeamRecordPct:    homePct,

		AwayTeamID:           away.Team.ID,
		AwayTeamName:         away.Team.Name,
		AwayTeamScore:        away.Score,
		AwayTeamWinner:       away.IsWinner,
		AwayTeamRecordWins:   awayWins,
		AwayTeamRecordLosses: awayLosses,
		AwayTeamRecordPct:    awayPct,
	}, regSeason, nil
}

func venueFields(v *schedule.Venue) (*string, *int) {
	if v == nil {
		return nil, nil
	}
	name, id := v.Name, v.ID
	return &name, &id
}

func recordFields(r *schedule.LeagueRecord) (*int, *int, *string) {
	if r == nil {
		return nil, nil, nil
	}
	wins, losses, pct := r.Wins, r.Losses, r.Pct
	return &wins, &losses, &pct
}

func finalStatus(s schedule.Status) string {
	if s.Reason != "" {
		return s.DetailedState + " - " + s.Reason
	}
	return s.DetailedState
}

func description(desc *string) string {
	if desc == nil {
		return ""
	}
	return strings.TrimSpace(*desc)
}
