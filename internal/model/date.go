package model

import (
	"fmt"
	"time"
)

// ISODate is the storage and wire format for calendar days.
const ISODate = "2006-01-02"

// Day is a calendar date with no time component. Transactions are recorded
// at day granularity, so all date math in the application goes through Day.
type Day struct {
	time.Time
}

// ParseDay parses an ISO YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Day{t}, nil
}

// DayOf truncates a time to its calendar day in UTC.
func DayOf(t time.Time) Day {
	return Day{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() Day {
	return DayOf(time.Now())
}

func (d Day) String() string {
	return d.Format(ISODate)
}

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return Day{d.AddDate(0, 0, n)}
}

// EndOfMonth returns the last calendar day of d's month.
func (d Day) EndOfMonth() Day {
	firstOfNext := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return Day{firstOfNext.AddDate(0, 0, -1)}
}
