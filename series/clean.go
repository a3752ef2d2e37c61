package series

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dnldd/tradesignal/shared"
)

// CleanStats summarizes how a cleaned series was assembled.
type CleanStats struct {
	// Days is the number of calendar days in the cleaned series.
	Days int
	// Observed is the number of days backed by a raw record.
	Observed int
	// Filled is the number of days forward-filled from an earlier entry.
	Filled int
	// Zeroed is the number of days with no earlier entry to fill from.
	Zeroed int
}

// normalizeDate trims any time component from the provided date.
func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if len(date) > len(shared.DateLayout) {
		_, err := shared.ParseDate(date[:len(shared.DateLayout)])
		if err == nil {
			return date[:len(shared.DateLayout)]
		}
	}

	return date
}

// DateRange returns every calendar day from start to end inclusive, formatted
// as YYYY-MM-DD. Days are stepped in UTC.
func DateRange(start string, end string) ([]string, error) {
	dtStart, err := shared.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("parsing range start: %w", err)
	}

	dtEnd, err := shared.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("parsing range end: %w", err)
	}

	if dtEnd.Before(dtStart) {
		return nil, fmt.Errorf("range end %s is before range start %s", end, start)
	}

	days := int(dtEnd.Sub(dtStart).Hours()/24) + 1
	dates := make([]string, 0, days)
	for dt := dtStart; !dt.After(dtEnd); dt = dt.AddDate(0, 0, 1) {
		dates = append(dates, dt.Format(shared.DateLayout))
	}

	return dates, nil
}

// parseRecord converts the provided raw record to an entry.
func parseRecord(record *shared.RawRecord, date string) shared.Entry {
	return shared.Entry{
		Date:           date,
		Symbol:         record.Symbol,
		AvgPrice:       ParseNumber(record.AvgPrice),
		LastTradePrice: ParseNumber(record.LastTradePrice),
		Max:            ParseNumber(record.Max),
		Min:            ParseNumber(record.Min),
		PctChg:         ParseNumber(record.PctChg),
		TotalTurnover:  ParseNumber(record.TotalTurnover),
		TurnoverBest:   ParseNumber(record.TurnoverBest),
		Volume:         ParseNumber(record.Volume),
	}
}

// CleanWithStats builds a dense daily series from the provided raw records of
// a single instrument. Every calendar day between the first and last record
// is present: observed days are parsed, missing days repeat the most recent
// entry under the missing date. The input slice is not modified.
//
// An error is only returned when the boundary dates cannot be parsed, numeric
// fields never fail and degrade to zero instead.
func CleanWithStats(records []shared.RawRecord) ([]shared.Entry, CleanStats, error) {
	var stats CleanStats
	if len(records) == 0 {
		return []shared.Entry{}, stats, nil
	}

	sorted := make([]shared.RawRecord, len(records))
	copy(sorted, records)
	for idx := range sorted {
		sorted[idx].Date = normalizeDate(sorted[idx].Date)
	}

	// A stable sort keeps scrape order for duplicate dates.
	slices.SortStableFunc(sorted, func(a, b shared.RawRecord) int {
		return strings.Compare(a.Date, b.Date)
	})

	dates, err := DateRange(sorted[0].Date, sorted[len(sorted)-1].Date)
	if err != nil {
		return []shared.Entry{}, stats, fmt.Errorf("building date range: %w", err)
	}

	// The last record in sorted order wins for duplicated dates.
	byDate := make(map[string]*shared.RawRecord, len(sorted))
	for idx := range sorted {
		byDate[sorted[idx].Date] = &sorted[idx]
	}

	entries := make([]shared.Entry, 0, len(dates))
	var last shared.Entry
	var hasLast bool
	for _, date := range dates {
		record, ok := byDate[date]
		switch {
		case ok:
			entries = append(entries, parseRecord(record, date))
			stats.Observed++
		case hasLast:
			entries = append(entries, last.WithDate(date))
			stats.Filled++
		default:
			// Unreachable for ranges derived from the records themselves.
			entries = append(entries, shared.Entry{Date: date, Symbol: sorted[0].Symbol})
			stats.Zeroed++
		}

		last = entries[len(entries)-1]
		hasLast = true
	}

	stats.Days = len(entries)

	return entries, stats, nil
}

// Clean builds a dense daily series from the provided raw records, see
// CleanWithStats. Records with unparseable boundary dates yield an empty series.
func Clean(records []shared.RawRecord) []shared.Entry {
	entries, _, err := CleanWithStats(records)
	if err != nil {
		return []shared.Entry{}
	}

	return entries
}
