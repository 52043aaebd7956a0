package schedule

import (
	"fmt"
	"math"
	"time"
)

// ProgressStatus places now relative to the period.
type ProgressStatus string

const (
	StatusUpcoming  ProgressStatus = "upcoming"
	StatusActive    ProgressStatus = "active"
	StatusCompleted ProgressStatus = "completed"
)

// Progress is the month completion snapshot for one instant.
type Progress struct {
	Current    int
	Total      int
	Percentage int
	Status     ProgressStatus
	Message    string
}

// Progress reports how far through the period now is. It is a pure
// function of its inputs: calling it twice at the same instant yields
// identical results.
func (p Period) Progress(now time.Time) Progress {
	elapsed := p.DaysElapsed(now)

	switch {
	case elapsed < 1:
		until := int(math.Ceil(p.Start.Sub(now).Hours() / 24))
		return Progress{
			Current:    0,
			Total:      p.Days,
			Percentage: 0,
			Status:     StatusUpcoming,
			Message:    fmt.Sprintf("%d hari lagi ke Ramadan", until),
		}
	case elapsed > p.Days:
		return Progress{
			Current:    p.Days,
			Total:      p.Days,
			Percentage: 100,
			Status:     StatusCompleted,
			Message:    fmt.Sprintf("%s telah tamat", p.Label),
		}
	default:
		return Progress{
			Current:    elapsed,
			Total:      p.Days,
			Percentage: int(math.Round(float64(elapsed) / float64(p.Days) * 100)),
			Status:     StatusActive,
			Message:    fmt.Sprintf("Hari %d dari %d", elapsed, p.Days),
		}
	}
}
