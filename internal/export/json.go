package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ilmualam/imsakiah/internal/schedule"
)

type jsonExport struct {
	ExportedAt string    `json:"exported_at"`
	Zone       string    `json:"zone"`
	State      string    `json:"state"`
	Name       string    `json:"name"`
	Count      int       `json:"count"`
	Days       []jsonDay `json:"days"`
}

type jsonDay struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Hijri   string `json:"hijri"`
	Weekday string `json:"weekday"`
	Imsak   string `json:"imsak"`
	Subuh   string `json:"subuh"`
	Maghrib string `json:"maghrib"`
}

func ToJSON(zone schedule.Zone, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Zone:       zone.ID,
		State:      zone.State,
		Name:       zone.Name,
		Count:      len(zone.Times),
	}

	for _, d := range zone.Times {
		export.Days = append(export.Days, jsonDay{
			Day:     d.Day,
			Date:    d.Date.Format("2006-01-02"),
			Hijri:   d.Hijri,
			Weekday: d.DayName,
			Imsak:   d.Imsak.String(),
			Subuh:   d.Subuh.String(),
			Maghrib: d.Maghrib.String(),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
