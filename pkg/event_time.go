package pkg

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventTime is a client supplied event time. It accepts an RFC3339 timestamp or
// a bare YYYY-MM-DD date; a bare date has no zone and is placed at midnight of
// the location passed to In.
type EventTime struct {
	ts       time.Time
	dateOnly bool
}

func (et *EventTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("event time must be a string: %w", err)
	}

	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		*et = EventTime{ts: ts}
		return nil
	}
	if ts, err := time.Parse(time.DateOnly, s); err == nil {
		*et = EventTime{ts: ts, dateOnly: true}
		return nil
	}

	return fmt.Errorf("event time %q is neither RFC3339 nor YYYY-MM-DD", s)
}

func (et EventTime) IsZero() bool {
	return et.ts.IsZero()
}

func (et EventTime) In(loc *time.Location) time.Time {
	if !et.dateOnly {
		return et.ts
	}
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := et.ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
