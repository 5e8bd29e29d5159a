package clock

import "time"

// DateLayout is the calendar-date format used for every date field.
const DateLayout = "2006-01-02"

// Clock returns the current instant.
type Clock func() time.Time

// System returns a Clock reading wall time in loc. A nil loc means UTC.
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Date formats t as YYYY-MM-DD in t's own location.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Today is shorthand for Date(c()).
func (c Clock) Today() string {
	return Date(c())
}

// DaysAgo returns the calendar date n days before now.
func (c Clock) DaysAgo(n int) string {
	return Date(c().AddDate(0, 0, -n))
}
