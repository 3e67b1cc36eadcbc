package games

import "strconv"

// Columns lists the record field names in output order.
var Columns = []string{
	"game_id",
	"reg_season_game_number",
	"season",
	"game_date_iso",
	"game_date_local",
	"game_day_of_week_local",
	"game_time_local",
	"day_night",
	"game_type",
	"desc",
	"venue",
	"venue_id",
	"scheduled_innings",
	"series_game_number",
	"games_in_series",
	"double_header",
	"final_game_status",
	"home_game",
	"home_team_id",
	"home_team_name",
	"home_team_score",
	"home_team_winner",
	"home_team_record_wins",
	"home_team_record_losses",
	"home_team_record_pct",
	"away_team_id",
	"away_team_name",
	"away_team_score",
	"away_team_winner",
	"away_team_record_wins",
	"away_team_record_losses",
	"away_team_record_pct",
}

// Values renders the record as strings in Columns order. Null values are
// rendered as empty strings.
func (g Game) Values() []string {
	return []string{
		strconv.Itoa(g.GameID),
		optInt(g.RegSeasonGameNumber),
		g.Season,
		g.GameDateISO,
		g.GameDateLocal,
		g.GameDayOfWeekLocal,
		g.GameTimeLocal,
		g.DayNight,
		string(g.GameType),
		g.Desc,
		optString(g.Venue),
		optInt(g.VenueID),
		optInt(g.ScheduledInnings),
		strconv.Itoa(g.SeriesGameNumber),
		strconv.Itoa(g.GamesInSeries),
		strconv.FormatBool(g.DoubleHeader),
		g.FinalGameStatus,
		strconv.FormatBool(g.HomeGame),
		strconv.Itoa(g.HomeTeamID),
		g.HomeTeamName,
		optInt(g.HomeTeamScore),
		optBool(g.HomeTeamWinner),
		optInt(g.HomeTeamRecordWins),
		optInt(g.HomeTeamRecordLosses),
		optString(g.HomeTeamRecordPct),
		strconv.Itoa(g.AwayTeamID),
		g.AwayTeamName,
		optInt(g.AwayTeamScore),
		optBool(g.AwayTeamWinner),
		optInt(g.AwayTeamRecordWins),
		optInt(g.AwayTeamRecordLosses),
		optString(g.AwayTeamRecordPct),
	}
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
