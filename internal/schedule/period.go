// Package schedule holds the Ramadan schedule model: the per-zone 30-day
// imsak/berbuka timetable, the countdown state machine and the month
// progress calculation.
package schedule

import (
	"time"

	"github.com/ilmualam/imsakiah/internal/waktu"
)

// Period describes one Ramadan observance window.
type Period struct {
	Start     time.Time // first day, midnight MYT
	Days      int
	HijriYear int
	Label     string
}

// Ramadan2025 is the period the embedded catalog is generated for.
// The start date follows the official JAKIM announcement; the Hijri day
// labels are a simple offset from it, not a moon-sighting computation.
func Ramadan2025() Period {
	return Period{
		Start:     time.Date(2025, 3, 2, 0, 0, 0, 0, waktu.MYT),
		Days:      30,
		HijriYear: 1446,
		Label:     "Ramadan 2025",
	}
}

// DaysElapsed counts days since the period start, rounded up. Exactly at
// the start instant it reports 0.
func (p Period) DaysElapsed(now time.Time) int {
	d := now.In(waktu.MYT).Sub(p.Start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// DayOrdinal returns the 1-based Ramadan day for now, one past the elapsed
// day count. The caller is responsible for range-checking against Days.
func (p Period) DayOrdinal(now time.Time) int {
	return p.DaysElapsed(now) + 1
}

var malayDayNames = [7]string{"Ahad", "Isnin", "Selasa", "Rabu", "Khamis", "Jumaat", "Sabtu"}

// MalayDayName returns the Malay weekday name for t.
func MalayDayName(t time.Time) string {
	return malayDayNames[int(t.In(waktu.MYT).Weekday())]
}
