package aggregation

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// DayWindow is the closed interval [00:00:00.000, 23:59:59.999] of one calendar day.
// The end has millisecond precision, so a timestamp in the last millisecond with
// a sub-millisecond part (23:59:59.9995) falls outside both this day and the next.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

func NewDayWindow(day time.Time, loc *time.Location) DayWindow {
	y, m, d := day.In(loc).Date()
	return DayWindow{
		Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
		End:   time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc),
	}
}

func (w DayWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && !ts.After(w.End)
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD) as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, loc)
}

// CalendarDate is the ISO calendar date of ts as seen in loc.
func CalendarDate(ts time.Time, loc *time.Location) string {
	return ts.In(loc).Format(dateLayout)
}

// inWindow keeps the items whose timestamp falls inside w, preserving their order.
func inWindow[T any](items []T, timestamp func(T) time.Time, w DayWindow) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if w.Contains(timestamp(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}

// distinctDates reduces timestamps to the set of calendar dates they fall on.
func distinctDates(timestamps []time.Time, loc *time.Location) map[string]struct{} {
	dates := make(map[string]struct{}, len(timestamps))
	for _, ts := range timestamps {
		dates[CalendarDate(ts, loc)] = struct{}{}
	}
	return dates
}

// sortedDesc returns the dates sorted most recent first.
func sortedDesc(dates map[string]struct{}) []string {
	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	// ISO dates sort lexicographically
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	return sorted
}
