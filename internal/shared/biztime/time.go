// Package biztime holds the business timezone. Storage uses UTC; the business
// zone only decides calendar boundaries and when scheduled jobs fire.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Europe/Paris"

	// DateLayout is the calendar date format accepted on input.
	DateLayout = "2006-01-02"
)

var (
	bizLocation *time.Location
	bizMu       sync.RWMutex
)

// Init sets the business timezone. Empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	bizMu.Lock()
	bizLocation = loc
	bizMu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	bizMu.RLock()
	loc := bizLocation
	bizMu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns business-day midnight of t, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// ParseDate parses YYYY-MM-DD as business-timezone midnight and returns it in UTC.
// RFC3339 timestamps are accepted as well.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, Location()); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q", s)
	}
	return t.UTC(), nil
}

// FormatDate formats t as a business-timezone calendar date.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}
