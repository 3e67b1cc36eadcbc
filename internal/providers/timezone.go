package providers

import (
	"fmt"
	"time"
)

// ResolveTimezone returns the location named by tz. An empty name means the
// host's local zone.
func ResolveTimezone(tz string) (*time.Location, error) {
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	return loc, nil
}
