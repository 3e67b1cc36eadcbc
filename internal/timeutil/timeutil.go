package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// Layouts used when reading and rendering schedule times.
const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// UpstreamLayout is the UTC timestamp format the stats API emits.
	UpstreamLayout = "2006-01-02T15:04:05Z"
	// ISOLayout renders an absolute timestamp with an explicit numeric offset.
	ISOLayout     = "2006-01-02T15:04:05-07:00"
	WeekdayLayout = "Mon"
	ClockLayout   = "03:04 PM"
	// QueryDateLayout is the MM/DD/YYYY form the schedule endpoint expects.
	QueryDateLayout = "01/02/2006"
)

// ErrMalformedTimestamp reports a timestamp that does not match UpstreamLayout.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// FormatDate renders the calendar day of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseUpstream parses an upstream UTC timestamp. The input must match
// UpstreamLayout exactly; fractional seconds and offsets are rejected.
func ParseUpstream(value string) (time.Time, error) {
	if len(value) != len(UpstreamLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
	}
	parsed, err := time.Parse(UpstreamLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
	}
	return parsed.UTC(), nil
}

// FormatISO renders t in UTC with a +00:00 offset.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// SeasonBounds returns the first and last calendar day of year in the
// schedule endpoint's query format.
func SeasonBounds(year int) (string, string) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start.Format(QueryDateLayout), end.Format(QueryDateLayout)
}
