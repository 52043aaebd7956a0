// Package waktu provides the civil time-of-day value used throughout the
// schedule and countdown logic. All prayer times in Malaysia are published
// as local HH:MM strings against a single fixed UTC+8 offset, so a small
// hour/minute pair is enough; parsing, formatting and minute arithmetic all
// live here instead of being scattered through rendering code.
package waktu

import (
	"fmt"
	"strings"
	"time"
)

// MYT is the single civil-time interpretation for every schedule value.
// Malaysia does not observe DST, so a fixed offset is deliberate.
var MYT = time.FixedZone("MYT", 8*60*60)

// Clock is a time of day with minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// Parse reads an "HH:MM" string. Trailing seconds or other suffixes after
// the minute component ("05:57:00", "05:57 (MYT)") are ignored.
func Parse(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	var c Clock
	if _, err := fmt.Sscanf(s, "%d:%d", &c.Hour, &c.Minute); err != nil {
		return Clock{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return Clock{}, fmt.Errorf("time %q out of range", s)
	}
	return c, nil
}

// MustParse is Parse for static data; it panics on malformed input.
func MustParse(s string) Clock {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Add shifts the clock by the given number of minutes, borrowing or
// carrying one hour when the minute component leaves [0,60).
func (c Clock) Add(minutes int) Clock {
	c.Minute += minutes
	for c.Minute < 0 {
		c.Minute += 60
		c.Hour--
	}
	for c.Minute >= 60 {
		c.Minute -= 60
		c.Hour++
	}
	return c
}

// At anchors the clock to the calendar date of t in MYT.
func (c Clock) At(t time.Time) time.Time {
	t = t.In(MYT)
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, MYT)
}

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	if c.Hour != other.Hour {
		return c.Hour < other.Hour
	}
	return c.Minute < other.Minute
}
