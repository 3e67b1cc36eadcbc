package testutil

import (
	"encoding/json"

	"github.com/preston-bernstein/mlbcal/internal/domain/schedule"
)

// Team ids used across fixtures.
const (
	MarinersID = 136
	AngelsID   = 108
	DodgersID  = 119
)

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }

// RawGame returns a completed game between the Mariners (home) and Angels (away).
func RawGame(pk int, gameType, gameDate string) schedule.Game {
	return schedule.Game{
		GamePk:           pk,
		GameType:         gameType,
		Season:           "2022",
		GameDate:         gameDate,
		OfficialDate:     gameDate[:min(len(gameDate), 10)],
		Status:           schedule.Status{AbstractGameState: "Final", DetailedState: "Final"},
		Venue:            &schedule.Venue{ID: 680, Name: "T-Mobile Park"},
		DoubleHeader:     "N",
		DayNight:         "day",
		Description:      StringPtr("  "),
		ScheduledInnings: IntPtr(9),
		GamesInSeries:    3,
		SeriesGameNumber: 3,
		Teams: schedule.Teams{
			Home: schedule.Side{
				Team:         schedule.TeamRef{ID: MarinersID, Name: "Seattle Mariners"},
				Score:        IntPtr(3),
				IsWinner:     BoolPtr(true),
				LeagueRecord: &schedule.LeagueRecord{Wins: 90, Losses: 72, Pct: ".556"},
			},
			Away: schedule.Side{
				Team:         schedule.TeamRef{ID: AngelsID, Name: "Los Angeles Angels"},
				Score:        IntPtr(2),
				IsWinner:     BoolPtr(false),
				LeagueRecord: &schedule.LeagueRecord{Wins: 73, Losses: 89, Pct: ".451"},
			},
		},
	}
}

// ScheduleResponse wraps games in a single date grouping.
func ScheduleResponse(games ...schedule.Game) schedule.Response {
	dates := []schedule.Date{{Date: "2022-10-02", Games: &games}}
	return schedule.Response{TotalGames: len(games), Dates: &dates}
}

// ScheduleJSON encodes a schedule response built from games.
func ScheduleJSON(games ...schedule.Game) []byte {
	resp := ScheduleResponse(games...)
	data, err := json.Marshal(resp)
	if err != nil {
		panic(err)
	}
	return data
}
