package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ilmualam/imsakiah/internal/schedule"
)

func ToCSV(zone schedule.Zone, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Day", "Date", "Hijri", "Weekday", "Imsak", "Subuh", "Maghrib"}); err != nil {
		return err
	}

	for _, d := range zone.Times {
		row := []string{
			fmt.Sprintf("%d", d.Day),
			d.Date.Format("2006-01-02"),
			d.Hijri,
			d.DayName,
			d.Imsak.String(),
			d.Subuh.String(),
			d.Maghrib.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
