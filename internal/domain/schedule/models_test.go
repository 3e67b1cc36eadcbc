package schedule

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestResponseGamesFlattensDatesInOrder(t *testing.T) {
	body := `{
		"totalGames": 3,
		"dates": [
			{"date": "2022-04-08", "games": [{"gamePk": 1}, {"gamePk": 2}]},
			{"date": "2022-04-09", "games": [{"gamePk": 3}]}
		]
	}`
	var resp Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	games, err := resp.Games()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for i, g := range games {
		if g.GamePk != i+1 {
			t.Fatalf("expected gamePk %d at %d, got %d", i+1, i, g.GamePk)
		}
	}
}

func TestResponseGamesEmptyDatesIsNotAnError(t *testing.T) {
	var resp Response
	if err := json.Unmarshal([]byte(`{"dates": []}`), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	games, err := resp.Games()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
}

func TestResponseGamesMissingKeysFailFast(t *testing.T) {
	cases := map[string]error{
		`{"totalGames": 0}`:                         ErrMissingDates,
		`{"dates": [{"date": "2022-04-08"}]}`:       ErrMissingGames,
		`{"dates": null}`:                           ErrMissingDates,
		`{"dates": [{"date": "x", "games": null}]}`: ErrMissingGames,
	}

	for body, want := range cases {
		var resp Response
		if err := json.Unmarshal([]byte(body), &resp); err != nil {
			t.Fatalf("decode %s: %v", body, err)
		}
		if _, err := resp.Games(); !errors.Is(err, want) {
			t.Fatalf("%s: expected %v, got %v", body, want, err)
		}
	}
}

func TestGameKeepsRawJSON(t *testing.T) {
	body := `{"gamePk": 42, "gameType": "R", "extraField": {"nested": true}}`
	var g Game
	if err := json.Unmarshal([]byte(body), &g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if g.GamePk != 42 || g.GameType != "R" {
		t.Fatalf("unexpected decoded game %+v", g)
	}
	if string(g.Raw()) != body {
		t.Fatalf("expected raw JSON preserved, got %s", g.Raw())
	}
}

func TestGameRawReencodesInMemoryGame(t *testing.T) {
	g := Game{GamePk: 7, GameType: "S"}
	raw := string(g.Raw())
	if !strings.Contains(raw, `"gamePk":7`) || !strings.Contains(raw, `"gameType":"S"`) {
		t.Fatalf("unexpected re-encoding %s", raw)
	}
}

func TestSideOptionalFieldsDecodeAsNil(t *testing.T) {
	var s Side
	if err := json.Unmarshal([]byte(`{"team": {"id": 136, "name": "Seattle Mariners"}}`), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Score != nil || s.IsWinner != nil {
		t.Fatalf("expected nil score/winner, got %+v", s)
	}
}
