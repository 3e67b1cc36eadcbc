package games

// GameType is the human-readable label for an upstream game type code.
type GameType string

const (
	TypeSpringTraining GameType = "Spring training"
	TypeRegularSeason  GameType = "Regular season"
	TypeWildCard       GameType = "Wild Card"
	TypeDivision       GameType = "Division Series"
	TypeLeagueChamp    GameType = "League Championship Series"
	TypeWorldSeries    GameType = "World Series"
)

// CodeRegularSeason is the upstream code for regular season games.
const CodeRegularSeason = "R"

var typeLabels = map[string]GameType{
	"S":               TypeSpringTraining,
	CodeRegularSeason: TypeRegularSeason,
	"F":               TypeWildCard,
	"D":               TypeDivision,
	"L":               TypeLeagueChamp,
	"W":               TypeWorldSeries,
}

// LabelFor maps a game type code to its label. Unknown codes pass through
// unchanged.
func LabelFor(code string) GameType {
	if label, ok := typeLabels[code]; ok {
		return label
	}
	return GameType(code)
}

// Game is the flat, normalized record emitted for each scheduled game.
// Field order is the output column order. Pointer fields are null when the
// upstream game omits them.
type Game struct {
	GameID              int      `json:"game_id"`
	RegSeasonGameNumber *int     `json:"reg_season_game_number"`
	Season              string   `json:"season"`
	GameDateISO         string   `json:"game_date_iso"`
	GameDateLocal       string   `json:"game_date_local"`
	GameDayOfWeekLocal  string   `json:"game_day_of_week_local"`
	GameTimeLocal       string   `json:"game_time_local"`
	DayNight            string   `json:"day_night"`
	GameType            GameType `json:"game_type"`
	Desc                string   `json:"desc"`
	Venue               *string  `json:"venue"`
	VenueID             *int     `json:"venue_id"`
	ScheduledInnings    *int     `json:"scheduled_innings"`
	SeriesGameNumber    int      `json:"series_game_number"`
	GamesInSeries       int      `json:"games_in_series"`
	DoubleHeader        bool     `json:"double_header"`
	FinalGameStatus     string   `json:"final_game_status"`
	HomeGame            bool     `json:"home_game"`

	HomeTeamID           int     `json:"home_team_id"`
	HomeTeamName         string  `json:"home_team_name"`
	HomeTeamScore        *int    `json:"home_team_score"`
	HomeTeamWinner       *bool   `json:"home_team_winner"`
	HomeTeamRecordWins   *int    `json:"home_team_record_wins"`
	HomeTeamRecordLosses *int    `json:"home_team_record_losses"`
	HomeTeamRecordPct    *string `json:"home_team_record_pct"`

	AwayTeamID           int     `json:"away_team_id"`
	AwayTeamName         string  `json:"away_team_name"`
	AwayTeamScore        *int    `json:"away_team_score"`
	AwayTeamWinner       *bool   `json:"away_team_winner"`
	AwayTeamRecordWins   *int    `json:"away_team_record_wins"`
	AwayTeamRecordLosses *int    `json:"away_team_record_losses"`
	AwayTeamRecordPct    *string `json:"away_team_record_pct"`
}

// FilterPreseason drops spring training games when exclude is set.
func FilterPreseason(games []Game, exclude bool) []Game {
	if !exclude {
		return games
	}
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g.GameType == TypeSpringTraining {
			continue
		}
		out = append(out, g)
	}
	return out
}
