package games

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLabelForKnownCodes(t *testing.T) {
	cases := map[string]GameType{
		"S": TypeSpringTraining,
		"R": TypeRegularSeason,
		"F": TypeWildCard,
		"D": TypeDivision,
		"L": TypeLeagueChamp,
		"W": TypeWorldSeries,
	}
	for code, want := range cases {
		if got := LabelFor(code); got != want {
			t.Fatalf("code %s: expected %q, got %q", code, want, got)
		}
	}
}

func TestLabelForUnknownCodePassesThrough(t *testing.T) {
	if got := LabelFor("E"); got != "E" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestFilterPreseasonDropsSpringTraining(t *testing.T) {
	in := []Game{
		{GameID: 1, GameType: TypeSpringTraining},
		{GameID: 2, GameType: TypeRegularSeason},
		{GameID: 3, GameType: "S"},
		{GameID: 4, GameType: TypeWorldSeries},
	}

	out := FilterPreseason(in, true)
	if len(out) != 3 {
		t.Fatalf("expected 3 games, got %d", len(out))
	}
	for i, id := range []int{2, 3, 4} {
		if out[i].GameID != id {
			t.Fatalf("expected order preserved, got %+v", out)
		}
	}

	again := FilterPreseason(out, true)
	if len(again) != len(out) {
		t.Fatalf("expected filter to be idempotent, got %d vs %d", len(again), len(out))
	}
}

func TestFilterPreseasonDisabledReturnsInput(t *testing.T) {
	in := []Game{{GameID: 1, GameType: TypeSpringTraining}}
	if out := FilterPreseason(in, false); len(out) != 1 {
		t.Fatalf("expected input untouched, got %+v", out)
	}
}

func TestGameJSONFieldOrderMatchesColumns(t *testing.T) {
	data, err := json.Marshal(Game{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)

	last := -1
	for _, col := range Columns {
		idx := strings.Index(body, `"`+col+`":`)
		if idx < 0 {
			t.Fatalf("column %s missing from %s", col, body)
		}
		if idx <= last {
			t.Fatalf("column %s out of order", col)
		}
		last = idx
	}
	if !strings.Contains(body, `"reg_season_game_number":null`) || !strings.Contains(body, `"home_team_score":null`) {
		t.Fatalf("expected nulls for unset optional fields, got %s", body)
	}
}

func TestValuesRendersScalars(t *testing.T) {
	num := 12
	won := true
	pct := ".556"
	g := Game{
		GameID:              715,
		RegSeasonGameNumber: &num,
		DoubleHeader:        true,
		HomeTeamWinner:      &won,
		HomeTeamRecordPct:   &pct,
	}

	values := g.Values()
	if len(values) != len(Columns) {
		t.Fatalf("expected %d values, got %d", len(Columns), len(values))
	}
	byCol := make(map[string]string, len(Columns))
	for i, col := range Columns {
		byCol[col] = values[i]
	}

	expect := map[string]string{
		"game_id":                "715",
		"reg_season_game_number": "12",
		"double_header":          "true",
		"home_game":              "false",
		"home_team_winner":       "true",
		"home_team_score":        "",
		"away_team_winner":       "",
		"home_team_record_pct":   ".556",
		"venue_id":               "",
		"away_team_record_wins":  "",
	}
	for col, want := range expect {
		if byCol[col] != want {
			t.Fatalf("%s: expected %q, got %q", col, want, byCol[col])
		}
	}
}
