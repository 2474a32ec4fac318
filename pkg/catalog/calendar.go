package catalog

import (
	"errors"
	"math/rand"
	"time"
)

// CalendarEntry is one day of the generation window.
type CalendarEntry struct {
	Date      time.Time
	Key       int // YYYYMMDD
	IsWeekday bool
}

// Calendar is the ordered, gapless date range orders are drawn from.
type Calendar struct {
	entries []CalendarEntry
}

// buildCalendar covers Q1 2024 (2024-01-01 through 2024-03-31), one entry per day.
func buildCalendar() (*Calendar, error) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	cal := &Calendar{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		cal.entries = append(cal.entries, CalendarEntry{
			Date:      d,
			Key:       d.Year()*10000 + int(d.Month())*100 + d.Day(),
			IsWeekday: wd != time.Saturday && wd != time.Sunday,
		})
	}

	if len(cal.entries) == 0 {
		return nil, errors.New("empty calendar range")
	}
	return cal, nil
}

// Entries returns the dates in calendar order.
func (c *Calendar) Entries() []CalendarEntry {
	return c.entries
}

// Draw returns a uniformly random calendar entry.
func (c *Calendar) Draw(rng *rand.Rand) CalendarEntry {
	return c.entries[rng.Intn(len(c.entries))]
}

// Len returns the number of days in the range.
func (c *Calendar) Len() int {
	return len(c.entries)
}
