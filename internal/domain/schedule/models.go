package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingDates reports a schedule document without a dates array.
	ErrMissingDates = errors.New("schedule: response has no dates")
	// ErrMissingGames reports a date grouping without a games array.
	ErrMissingGames = errors.New("schedule: date has no games")
)

// Response is the schedule document returned by the stats API.
// Pointer slices distinguish a missing key from an empty array.
type Response struct {
	TotalGames int     `json:"totalGames"`
	Dates      *[]Date `json:"dates"`
}

// Date groups the games played on one calendar day.
type Date struct {
	Date  string  `json:"date"`
	Games *[]Game `json:"games"`
}

// Status carries the game state as reported upstream.
type Status struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	Reason            string `json:"reason,omitempty"`
}

// TeamRef identifies a club inside a game.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LeagueRecord is a club's win/loss record going into the game.
type LeagueRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}

// Side is one team's view of a game. Score and IsWinner are absent until
// the game has been played; LeagueRecord is missing on some exhibition games.
type Side struct {
	Team         TeamRef       `json:"team"`
	Score        *int          `json:"score"`
	IsWinner     *bool         `json:"isWinner"`
	LeagueRecord *LeagueRecord `json:"leagueRecord"`
}

// Teams holds both sides of a game.
type Teams struct {
	Home Side `json:"home"`
	Away Side `json:"away"`
}

// Venue is the ballpark a game is played at.
type Venue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Game is a single raw game record. The original JSON object is retained so
// it can be emitted untouched.
type Game struct {
	GamePk           int     `json:"gamePk"`
	GameType         string  `json:"gameType"`
	Season           string  `json:"season"`
	GameDate         string  `json:"gameDate"`
	OfficialDate     string  `json:"officialDate"`
	Status           Status  `json:"status"`
	Teams            Teams   `json:"teams"`
	Venue            *Venue  `json:"venue"`
	DoubleHeader     string  `json:"doubleHeader"`
	DayNight         string  `json:"dayNight"`
	Description      *string `json:"description"`
	ScheduledInnings *int    `json:"scheduledInnings"`
	GamesInSeries    int     `json:"gamesInSeries"`
	SeriesGameNumber int     `json:"seriesGameNumber"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the game and keeps a copy of the source bytes.
func (g *Game) UnmarshalJSON(data []byte) error {
	type plain Game
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*g = Game(p)
	g.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Raw returns the original JSON object for the game, or a re-encoding when the
// game was built in memory.
func (g Game) Raw() json.RawMessage {
	if len(g.raw) > 0 {
		return g.raw
	}
	type plain Game
	data, err := json.Marshal(plain(g))
	if err != nil {
		return nil
	}
	return data
}

// Games flattens every date grouping into one ordered slice. Missing dates or
// games keys are reported instead of yielding an empty schedule.
func (r Response) Games() ([]Game, error) {
	if r.Dates == nil {
		return nil, ErrMissingDates
	}
	out := make([]Game, 0, r.TotalGames)
	for i, d := range *r.Dates {
		if d.Games == nil {
			return nil, fmt.Errorf("%w (dates[%d] %s)", ErrMissingGames, i, d.Date)
		}
		out = append(out, *d.Games...)
	}
	return out, nil
}
