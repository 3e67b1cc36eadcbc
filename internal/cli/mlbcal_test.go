package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/mlbcal/internal/config"
	"github.com/preston-bernstein/mlbcal/internal/lookup"
	"github.com/preston-bernstein/mlbcal/internal/testutil"
)

func saveSchedule(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.json")
	body := testutil.ScheduleJSON(
		testutil.RawGame(1, "S", "2022-03-20T20:05:00Z"),
		testutil.RawGame(2, "R", "2022-04-08T02:10:00Z"),
		testutil.RawGame(715722, "R", "2022-10-02T20:10:00Z"),
	)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write schedule: %v", err)
	}
	return path
}

func runMLBCal(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := RunSchedule(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseScheduleArgs(t *testing.T) {
	opts, err := ParseScheduleArgs([]string{"Seattle", "--year", "2022", "--csv", "--nopre", "--timezone", "UTC", "-v"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := ScheduleOptions{Team: "Seattle", Year: 2022, CSV: true, NoPre: true, Timezone: "UTC", Verbose: true}
	if opts != want {
		t.Fatalf("expected %+v, got %+v", want, opts)
	}
}

func TestParseScheduleArgsUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"sea", "lad"},
		{"sea", "--full", "--csv"},
		{"sea", "--year", "nope"},
		{"sea", "--bogus"},
	}
	for _, args := range cases {
		if _, err := ParseScheduleArgs(args, &bytes.Buffer{}); err == nil {
			t.Fatalf("expected usage error for %v", args)
		}
	}
}

func TestParseScheduleArgsTeamsNeedsNoTeam(t *testing.T) {
	opts, err := ParseScheduleArgs([]string{"--teams"}, &bytes.Buffer{})
	if err != nil || !opts.ListTeams {
		t.Fatalf("expected --teams alone to parse, got %+v %v", opts, err)
	}
}

func TestRunScheduleFromFileWritesJSON(t *testing.T) {
	code, stdout, stderr := runMLBCal(t, "Seattle", "--file", saveSchedule(t), "--timezone", "America/Los_Angeles", "--year", "2022")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	last := records[2]
	if last["game_time_local"] != "01:10 PM" || last["game_day_of_week_local"] != "Sun" {
		t.Fatalf("unexpected local fields %+v", last)
	}
	if last["reg_season_game_number"] != float64(2) || last["home_game"] != true {
		t.Fatalf("unexpected record %+v", last)
	}
	if records[0]["reg_season_game_number"] != nil {
		t.Fatalf("expected null number for spring training, got %v", records[0]["reg_season_game_number"])
	}
}

func TestRunScheduleCSVWithoutPreseason(t *testing.T) {
	code, stdout, stderr := runMLBCal(t, "SEA", "--file", saveSchedule(t), "--timezone", "UTC", "--csv", "--nopre")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d: %q", len(lines), stdout)
	}
	if !strings.HasPrefix(lines[0], "game_id,reg_season_game_number,") {
		t.Fatalf("unexpected header %s", lines[0])
	}
	if strings.Contains(stdout, "Spring training") {
		t.Fatalf("expected spring training filtered, got %s", stdout)
	}
}

func TestRunScheduleFullEmitsRawGames(t *testing.T) {
	code, stdout, stderr := runMLBCal(t, "mariners", "--file", saveSchedule(t), "--full", "--nopre")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	var raw []map[string]any
	if err := json.Unmarshal([]byte(stdout), &raw); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if len(raw) != 2 || raw[0]["gamePk"] != float64(2) || raw[0]["gameType"] != "R" {
		t.Fatalf("unexpected raw output %+v", raw)
	}
}

func TestRunScheduleAgainstStatsAPI(t *testing.T) {
	srv, requests := testutil.NewJSONServer(t, http.StatusOK, testutil.ScheduleJSON(testutil.RawGame(9, "R", "2022-10-02T20:10:00Z")))
	t.Setenv("MLBCAL_STATSAPI_BASE_URL", srv.URL)
	t.Setenv("MLBCAL_TIMEZONE", "UTC")

	code, stdout, stderr := runMLBCal(t, "Los Angeles", "--year", "2022")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if len(*requests) != 1 || !strings.Contains((*requests)[0], "teamId=108") {
		t.Fatalf("expected shared alias to resolve to the first franchise, got %v", *requests)
	}
	if !strings.Contains(stdout, `"game_time_local": "08:10 PM"`) {
		t.Fatalf("expected configured timezone applied, got %s", stdout)
	}
}

func TestRunScheduleUpstreamFailure(t *testing.T) {
	srv, requests := testutil.NewJSONServer(t, http.StatusBadGateway, []byte("upstream down"))
	t.Setenv("MLBCAL_STATSAPI_BASE_URL", srv.URL)
	t.Setenv("MLBCAL_FETCH_ATTEMPTS", "2")
	t.Setenv("MLBCAL_FETCH_BACKOFF", "1ms")

	code, stdout, stderr := runMLBCal(t, "sea", "--year", "2022")
	if code != exitFailure {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout != "" {
		t.Fatalf("expected no partial output, got %s", stdout)
	}
	if !strings.Contains(stderr, "mlbcal: fetch schedule: statsapi: unexpected status 502") {
		t.Fatalf("unexpected stderr %s", stderr)
	}
	if len(*requests) != 2 {
		t.Fatalf("expected configured retry, got %d requests", len(*requests))
	}
}

func TestRunScheduleUnknownTeam(t *testing.T) {
	code, stdout, stderr := runMLBCal(t, "Not A Real Team Name", "--file", saveSchedule(t))
	if code != exitFailure || stdout != "" {
		t.Fatalf("expected exit 1 without output, got %d %q", code, stdout)
	}
	if !strings.Contains(stderr, "unable to find team name") {
		t.Fatalf("unexpected stderr %s", stderr)
	}
}

func TestRunScheduleUsageAndHelp(t *testing.T) {
	if code, _, stderr := runMLBCal(t); code != exitUsage || !strings.Contains(stderr, "team name is required") {
		t.Fatalf("expected usage exit, got %d %s", code, stderr)
	}
	if code, _, stderr := runMLBCal(t, "--help"); code != exitOK || !strings.Contains(stderr, "Usage: mlbcal TEAM") {
		t.Fatalf("expected help exit 0, got %d %s", code, stderr)
	}
}

func TestRunScheduleBadTimezone(t *testing.T) {
	code, _, stderr := runMLBCal(t, "sea", "--file", saveSchedule(t), "--timezone", "Mars/Olympus_Mons")
	if code != exitFailure || !strings.Contains(stderr, "unknown timezone") {
		t.Fatalf("expected timezone failure, got %d %s", code, stderr)
	}
}

func TestRunScheduleListsTeams(t *testing.T) {
	code, stdout, stderr := runMLBCal(t, "--teams")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	table, err := lookup.Parse(strings.NewReader(stdout))
	if err != nil {
		t.Fatalf("listing is not a lookup document: %v", err)
	}
	if table.Len() != lookup.ExpectedTeams {
		t.Fatalf("expected %d teams, got %d", lookup.ExpectedTeams, table.Len())
	}
}

func TestRunScheduleWritesMetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mlbcal.prom")
	t.Setenv("MLBCAL_METRICS_ENABLED", "true")
	t.Setenv("MLBCAL_METRICS_TEXTFILE", path)

	code, _, stderr := runMLBCal(t, "sea", "--file", saveSchedule(t), "--timezone", "UTC")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected metrics textfile: %v", err)
	}
	if !strings.Contains(string(data), "games_normalized_total") {
		t.Fatalf("expected normalized counter in textfile, got %s", data)
	}
}

func TestRunScheduleConfigError(t *testing.T) {
	orig := loadConfig
	t.Cleanup(func() { loadConfig = orig })
	loadConfig = func() (config.Config, error) { return config.Config{}, errors.New("bad config") }

	code, _, stderr := runMLBCal(t, "sea")
	if code != exitFailure || !strings.Contains(stderr, "mlbcal: bad config") {
		t.Fatalf("expected config failure, got %d %s", code, stderr)
	}
}

func TestRunScheduleVerboseLogsToStderr(t *testing.T) {
	code, stdout, stderr := runMLBCal(t, "sea", "--file", saveSchedule(t), "--timezone", "UTC", "--verbose")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "run_id=") || !strings.Contains(stderr, "schedule ready") {
		t.Fatalf("expected debug logs with run id on stderr, got %s", stderr)
	}
	if strings.Contains(stdout, "run_id") {
		t.Fatalf("expected logs kept off stdout")
	}
}
