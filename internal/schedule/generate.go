package schedule

import (
	"fmt"
	"time"

	"github.com/ilmualam/imsakiah/internal/waktu"
)

// DaySchedule is one day's fasting boundaries for a zone.
type DaySchedule struct {
	Day     int // 1-based ordinal within the period
	Date    time.Time
	Hijri   string
	DayName string
	Imsak   waktu.Clock
	Subuh   waktu.Clock
	Maghrib waktu.Clock
}

// Generate derives the full period's timetable from a zone's base imsak and
// maghrib times. JAKIM times drift by roughly a minute every few days, so
// the published tables are reproduced by applying imsakAdj/maghribAdj
// minutes once per 5-day block. Subuh is always imsak plus ten minutes.
// The output is pure: identical inputs yield identical schedules.
func Generate(p Period, baseImsak, baseMaghrib waktu.Clock, imsakAdj, maghribAdj int) []DaySchedule {
	days := make([]DaySchedule, 0, p.Days)
	for i := 0; i < p.Days; i++ {
		drift := i / 5
		imsak := baseImsak.Add(drift * imsakAdj)
		date := p.Start.AddDate(0, 0, i)
		days = append(days, DaySchedule{
			Day:     i + 1,
			Date:    date,
			Hijri:   fmt.Sprintf("%d Ramadan %dH", i+1, p.HijriYear),
			DayName: MalayDayName(date),
			Imsak:   imsak,
			Subuh:   imsak.Add(10),
			Maghrib: baseMaghrib.Add(drift * maghribAdj),
		})
	}
	return days
}
