package schedule

import (
	"fmt"
	"time"

	"github.com/ilmualam/imsakiah/internal/waktu"
)

// Phase is the countdown state for an instant within a fasting day.
type Phase int

const (
	// PhasePreImsak is before today's imsak; the sahur window is open.
	PhasePreImsak Phase = iota
	// PhaseFasting runs from imsak (inclusive) to maghrib (exclusive).
	PhaseFasting
	// PhasePostMaghrib is after berbuka, counting down to tomorrow's imsak.
	PhasePostMaghrib
)

// Countdown is the state of the fasting-day clock at one instant. It is
// recomputed from wall time on every tick and never stored.
type Countdown struct {
	Phase     Phase
	Label     string // e.g. "Waktu Berbuka"
	Sublabel  string // e.g. "Berbuka dalam"
	Target    waktu.Clock
	Remaining time.Duration
	Day       int  // Ramadan day ordinal used for the lookup
	Preview   bool // true when now is outside the period and day 1 is shown
}

// Hours, Minutes and Seconds render the remaining duration zero-padded.
// Hours are whole hours without a 24-wrap.
func (c Countdown) Hours() string {
	return fmt.Sprintf("%02d", int(c.Remaining.Milliseconds()/3_600_000))
}

func (c Countdown) Minutes() string {
	return fmt.Sprintf("%02d", int(c.Remaining.Milliseconds()/60_000)%60)
}

func (c Countdown) Seconds() string {
	return fmt.Sprintf("%02d", int(c.Remaining.Milliseconds()/1_000)%60)
}

// Clock renders the remaining time as HH:MM:SS.
func (c Countdown) Clock() string {
	return c.Hours() + ":" + c.Minutes() + ":" + c.Seconds()
}

// TodaySchedule resolves the schedule entry for now within the catalog's
// period. Outside the 30 days it falls back to day 1 and reports preview
// so the caller can label the times as an example rather than failing.
func (c *Catalog) TodaySchedule(zoneID string, now time.Time) (DaySchedule, bool, bool) {
	z, found := c.Zone(zoneID)
	if !found {
		return DaySchedule{}, false, false
	}
	day := c.Period.DayOrdinal(now)
	if day < 1 || day > c.Period.Days {
		return z.Times[0], true, true
	}
	return z.Times[day-1], true, false
}

// Countdown computes the active phase and remaining time for a zone. An
// unknown zone yields ok=false rather than an error so the caller can show
// a neutral placeholder. All comparisons happen in fixed MYT civil time.
func (c *Catalog) Countdown(zoneID string, now time.Time) (Countdown, bool) {
	today, found, preview := c.TodaySchedule(zoneID, now)
	if !found {
		return Countdown{}, false
	}

	now = now.In(waktu.MYT)
	imsakAt := today.Imsak.At(now)
	maghribAt := today.Maghrib.At(now)

	switch {
	case now.Before(imsakAt):
		return Countdown{
			Phase:     PhasePreImsak,
			Label:     "Waktu Imsak",
			Sublabel:  "Sahur berakhir dalam",
			Target:    today.Imsak,
			Remaining: imsakAt.Sub(now),
			Day:       today.Day,
			Preview:   preview,
		}, true
	case now.Before(maghribAt):
		return Countdown{
			Phase:     PhaseFasting,
			Label:     "Waktu Berbuka",
			Sublabel:  "Berbuka dalam",
			Target:    today.Maghrib,
			Remaining: maghribAt.Sub(now),
			Day:       today.Day,
			Preview:   preview,
		}, true
	default:
		// Use the actual next-day entry when one exists so the target
		// stays correct across the 5-day drift boundaries. Past the end
		// of the period the current entry's imsak is reused.
		next := today
		if tomorrow, found, prev := c.TodaySchedule(zoneID, now.AddDate(0, 0, 1)); found && !prev {
			next = tomorrow
		}
		target := next.Imsak.At(now.AddDate(0, 0, 1))
		return Countdown{
			Phase:     PhasePostMaghrib,
			Label:     "Imsak Esok",
			Sublabel:  "Sahur bermula dalam",
			Target:    next.Imsak,
			Remaining: target.Sub(now),
			Day:       today.Day,
			Preview:   preview,
		}, true
	}
}
