package shared

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the format layout for parsing and formatting entry dates.
	DateLayout = "2006-01-02"
)

// Timeframe represents the granularity series data is aggregated to.
type Timeframe int

const (
	Day Timeframe = iota
	Week
	Month
)

// String stringifies the provided timeframe.
func (t Timeframe) String() string {
	switch t {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	default:
		return "unknown"
	}
}

// ParseTimeframe returns the timeframe matching the provided name.
func ParseTimeframe(name string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	default:
		return Day, fmt.Errorf("unknown timeframe provided: %q", name)
	}
}

// Timeframes returns all supported timeframes.
func Timeframes() []Timeframe {
	return []Timeframe{Day, Week, Month}
}

// ParseDate parses the provided YYYY-MM-DD date as a UTC calendar day.
func ParseDate(date string) (time.Time, error) {
	dt, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", date, err)
	}

	return dt, nil
}
