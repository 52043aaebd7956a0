package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

const (
	sourceLabel = "e-solat.gov.my (JAKIM)"
	// Ramadan is month 09 of the Hijri calendar.
	ramadanMonth = "09"
)

// Row is one normalized fasting-month day in an artifact.
type Row struct {
	Hijri   string `json:"hijri"`
	Date    string `json:"date"`
	Day     string `json:"day"`
	Imsak   string `json:"imsak"`
	Fajr    string `json:"fajr"`
	Maghrib string `json:"maghrib"`
}

// Artifact is one per-zone, per-year output file. A failed zone still
// produces an artifact, carrying the error and an empty row set, so a
// rerun never leaves a stale success file behind a new failure.
type Artifact struct {
	Source string `json:"source"`
	Zone   string `json:"zone"`
	Year   int    `json:"year"`
	Error  string `json:"error,omitempty"`
	Count  int    `json:"count"`
	Rows   []Row  `json:"rows"`
}

// ZoneResult is the in-memory outcome for one (year, zone) item.
type ZoneResult struct {
	Zone  string
	Year  int
	Count int
	Err   error
}

// Report summarizes a full run.
type Report struct {
	Zones   int
	Results []ZoneResult
}

// Failed returns the results that recorded an error.
func (r Report) Failed() []ZoneResult {
	var out []ZoneResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Builder drives the ingestion run.
type Builder struct {
	client *Client
	outDir string
	years  []int
	log    zerolog.Logger
}

// NewBuilder wires a builder for the given output root and target years.
func NewBuilder(client *Client, outDir string, years []int, log zerolog.Logger) *Builder {
	return &Builder{client: client, outDir: outDir, years: years, log: log}
}

// hhmm matches a leading HH:MM, dropping any trailing seconds or suffix.
var hhmm = regexp.MustCompile(`^(\d{2}):(\d{2})`)

// trimHHMM truncates a time string to HH:MM. Unparseable strings pass
// through unchanged rather than failing the row.
func trimHHMM(s string) string {
	if m := hhmm.FindStringSubmatch(s); m != nil {
		return m[1] + ":" + m[2]
	}
	return s
}

// Run executes the whole pipeline: catalog first (fatal on failure), then
// every (year, zone) pair independently. One zone's failure never aborts
// the batch.
func (b *Builder) Run() (Report, error) {
	zones, err := b.client.FetchZones()
	if err != nil {
		return Report{}, err
	}
	b.log.Info().Int("zones", len(zones)).Msg("fetched zone catalog")

	if err := b.writeJSON(filepath.Join(b.outDir, "zones.json"), zones); err != nil {
		return Report{}, fmt.Errorf("write zone catalog: %w", err)
	}

	report := Report{Zones: len(zones)}
	for _, year := range b.years {
		for _, z := range zones {
			res := b.buildZone(z.JakimCode, year)
			report.Results = append(report.Results, res)
			if res.Err != nil {
				b.log.Warn().Str("zone", res.Zone).Int("year", res.Year).
					Err(res.Err).Msg("zone failed, error artifact written")
			} else {
				b.log.Info().Str("zone", res.Zone).Int("year", res.Year).
					Int("rows", res.Count).Msg("zone built")
			}
		}
	}
	return report, nil
}

// buildZone fetches, filters and writes one zone's artifact. Any failure
// is captured in the artifact itself.
func (b *Builder) buildZone(zone string, year int) ZoneResult {
	path := filepath.Join(b.outDir, "ramadan", fmt.Sprintf("%d", year), zone+".json")

	rows, err := b.fetchRows(zone, year)
	if err != nil {
		artifact := Artifact{
			Source: sourceLabel,
			Zone:   zone,
			Year:   year,
			Error:  err.Error(),
			Count:  0,
			Rows:   []Row{},
		}
		if werr := b.writeJSON(path, artifact); werr != nil {
			err = fmt.Errorf("%w (write error artifact: %v)", err, werr)
		}
		return ZoneResult{Zone: zone, Year: year, Err: err}
	}

	artifact := Artifact{
		Source: sourceLabel,
		Zone:   zone,
		Year:   year,
		Count:  len(rows),
		Rows:   rows,
	}
	if err := b.writeJSON(path, artifact); err != nil {
		return ZoneResult{Zone: zone, Year: year, Err: err}
	}
	return ZoneResult{Zone: zone, Year: year, Count: len(rows)}
}

func (b *Builder) fetchRows(zone string, year int) ([]Row, error) {
	takwim, err := b.client.FetchYear(zone, year)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, 30)
	for _, r := range takwim.PrayerTime {
		if hijriMonth(r.Hijri) != ramadanMonth {
			continue
		}
		rows = append(rows, Row{
			Hijri:   r.Hijri,
			Date:    r.Date,
			Day:     r.Day,
			Imsak:   trimHHMM(r.Imsak),
			Fajr:    trimHHMM(r.Fajr),
			Maghrib: trimHHMM(r.Maghrib),
		})
	}
	return rows, nil
}

// hijriMonth extracts the month segment of a "YYYY-MM-DD" Hijri date.
func hijriMonth(hijri string) string {
	parts := strings.Split(hijri, "-")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// writeJSON creates the parent directory on demand and overwrites path.
func (b *Builder) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
