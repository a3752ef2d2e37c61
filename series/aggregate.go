package series

import (
	"fmt"
	"math"
	"time"

	"github.com/dnldd/tradesignal/shared"
)

// isoWeekday returns the ISO weekday of the provided date, Monday is 1 and
// Sunday is 7. Unparseable dates report 7 so they never open a week.
func isoWeekday(date string) int {
	dt, err := shared.ParseDate(date)
	if err != nil {
		return 7
	}

	weekday := int(dt.Weekday())
	if weekday == 0 {
		return 7
	}

	return weekday
}

// monthKey returns the YYYY-M bucket key of the provided date.
func monthKey(date string) string {
	dt, err := shared.ParseDate(date)
	if err != nil {
		return date
	}

	return fmt.Sprintf("%d-%d", dt.Year(), int(dt.Month()))
}

// reduceBucket collapses a bucket of entries into a single entry. Scalars not
// reduced here are carried from the first entry unmodified.
func reduceBucket(bucket []shared.Entry) shared.Entry {
	first := bucket[0]
	last := bucket[len(bucket)-1]

	high := math.Inf(-1)
	low := math.Inf(1)
	var volume float64
	for idx := range bucket {
		high = math.Max(high, bucket[idx].Max)
		low = math.Min(low, bucket[idx].Min)
		volume += bucket[idx].Volume
	}

	reduced := first
	reduced.Date = last.Date
	reduced.Max = high
	reduced.Min = low
	reduced.Volume = volume
	reduced.LastTradePrice = last.LastTradePrice

	return reduced
}

// AggregateWeekly buckets a dense daily series into weeks. A Monday closes the
// running bucket and opens the next one, the final partial week is flushed at
// the end of input.
func AggregateWeekly(entries []shared.Entry) []shared.Entry {
	weekly := make([]shared.Entry, 0, len(entries)/7+1)
	var week []shared.Entry

	for idx := range entries {
		entry := entries[idx]
		if isoWeekday(entry.Date) == int(time.Monday) && len(week) > 0 {
			weekly = append(weekly, reduceBucket(week))
			week = week[:0]
		}
		week = append(week, entry)
	}

	if len(week) > 0 {
		weekly = append(weekly, reduceBucket(week))
	}

	return weekly
}

// AggregateMonthly buckets a dense daily series into calendar months. The
// first entry of a new month closes the running bucket and belongs to the new
// one.
//
// Unlike AggregateWeekly, which flushes on a weekday test, the month boundary
// is detected by comparing the entry's key with the running key. Do not unify
// the two boundary rules without confirming intent.
func AggregateMonthly(entries []shared.Entry) []shared.Entry {
	monthly := make([]shared.Entry, 0, len(entries)/28+1)
	var month []shared.Entry
	var current string

	for idx := range entries {
		entry := entries[idx]
		key := monthKey(entry.Date)
		if current != "" && key != current {
			monthly = append(monthly, reduceBucket(month))
			month = month[:0]
		}
		current = key
		month = append(month, entry)
	}

	if len(month) > 0 {
		monthly = append(monthly, reduceBucket(month))
	}

	return monthly
}

// Aggregate buckets a dense daily series to the provided timeframe. Daily
// series are returned as is.
func Aggregate(entries []shared.Entry, timeframe shared.Timeframe) ([]shared.Entry, error) {
	switch timeframe {
	case shared.Day:
		return entries, nil
	case shared.Week:
		return AggregateWeekly(entries), nil
	case shared.Month:
		return AggregateMonthly(entries), nil
	default:
		return nil, fmt.Errorf("unknown timeframe provided: %s", timeframe.String())
	}
}
