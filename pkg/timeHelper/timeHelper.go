package timehelper

import (
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// DateLayout is the YYYY-MM-DD layout the league API uses for dates.
const DateLayout = "2006-01-02"

var timeLayouts = []string{"15:04:05", "15:04"}

func GetTodaysDateString(clock clockwork.Clock, loc *time.Location) string {
	return Today(clock, loc).Format(DateLayout)
}

// Today returns local midnight of the clock's current day.
func Today(clock clockwork.Clock, loc *time.Location) time.Time {
	return Midnight(clock.Now(), loc)
}

// Midnight truncates t to 00:00 of its day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDate parses a YYYY-MM-DD date as local midnight.
func ParseDate(date string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ParseClock returns the offset from midnight of an HH:MM or HH:MM:SS
// time. Missing or malformed times count as midnight.
func ParseClock(clock string) time.Duration {
	clock = strings.TrimSpace(clock)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second
		}
	}
	return 0
}

// Combine joins a date and a time into one instant. ok is false when the
// date does not parse.
func Combine(date, clock string, loc *time.Location) (time.Time, bool) {
	d, ok := ParseDate(date, loc)
	if !ok {
		return time.Time{}, false
	}
	return d.Add(ParseClock(clock)), true
}
