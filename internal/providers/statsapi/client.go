package statsapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/mlbcal/internal/domain/schedule"
	"github.com/preston-bernstein/mlbcal/internal/domain/teams"
	"github.com/preston-bernstein/mlbcal/internal/logging"
	"github.com/preston-bernstein/mlbcal/internal/providers"
	"github.com/preston-bernstein/mlbcal/internal/timeutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the client reaches the MLB stats API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Client fetches schedules and team listings from the MLB stats API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchSchedule retrieves every game of the calendar year for teamID. The
// document is checked for its dates and games keys before it is returned.
func (c *Client) FetchSchedule(ctx context.Context, teamID, year int) (schedule.Response, error) {
	start, end := timeutil.SeasonBounds(year)
	q := url.Values{}
	q.Set("sportId", sportMLB)
	q.Set("teamId", strconv.Itoa(teamID))
	q.Set("startDate", start)
	q.Set("endDate", end)

	var payload schedule.Response
	if err := c.get(ctx, "/schedule", q, &payload); err != nil {
		return schedule.Response{}, err
	}
	if _, err := payload.Games(); err != nil {
		return schedule.Response{}, fmt.Errorf("%s: %w", providerName, err)
	}
	return payload, nil
}

type teamsResponse struct {
	Teams []teams.Team `json:"teams"`
}

// FetchTeams retrieves the major league team listing for season.
func (c *Client) FetchTeams(ctx context.Context, season int) ([]teams.Team, error) {
	q := url.Values{}
	q.Set("sportId", sportMLB)
	q.Set("season", strconv.Itoa(season))

	var payload teamsResponse
	if err := c.get(ctx, "/teams", q, &payload); err != nil {
		return nil, err
	}
	if payload.Teams == nil {
		return nil, fmt.Errorf("%s: response has no teams", providerName)
	}
	return payload.Teams, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	logger := logging.FromContext(ctx, c.logger)
	logging.Debug(logger, "statsapi request",
		logging.FieldProvider, providerName,
		logging.FieldURL, req.URL.String(),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	logging.Debug(logger, "statsapi response",
		logging.FieldProvider, providerName,
		logging.FieldStatusCode, resp.StatusCode,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}
