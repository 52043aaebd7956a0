package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ilmualam/imsakiah/internal/schedule"
)

// jadualModel renders the full 30-day timetable for the selected zone.
type jadualModel struct {
	catalog *schedule.Catalog
	width   int
	height  int

	zoneID string
	offset int // first visible row
}

func newJadualModel(catalog *schedule.Catalog, zoneID string) jadualModel {
	return jadualModel{catalog: catalog, zoneID: zoneID}
}

func (j *jadualModel) setSize(w, h int) {
	j.width = w
	j.height = h
}

func (j jadualModel) update(msg tea.Msg) (jadualModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if msg.state.SelectedZone != j.zoneID {
			j.zoneID = msg.state.SelectedZone
			j.offset = 0
		}
		return j, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if j.offset > 0 {
				j.offset--
			}
		case key.Matches(msg, keys.Down):
			if j.offset < j.maxOffset() {
				j.offset++
			}
		}
	}
	return j, nil
}

func (j jadualModel) visibleRows() int {
	rows := j.height - 8 // panel chrome + table header
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (j jadualModel) maxOffset() int {
	zone, ok := j.catalog.Zone(j.zoneID)
	if !ok {
		return 0
	}
	m := len(zone.Times) - j.visibleRows()
	if m < 0 {
		m = 0
	}
	return m
}

func (j jadualModel) view() string {
	w := j.width - 4

	zone, ok := j.catalog.Zone(j.zoneID)
	if !ok {
		return panelStyle.Width(w).Render(mutedStyle.Render("Zon tidak dikenali"))
	}

	now := time.Now()
	todayOrdinal := j.catalog.Period.DayOrdinal(now)

	title := titleStyle.Render("Jadual Imsakiah")
	subtitle := mutedStyle.Render(zone.State + " — " + zone.Name + " (" + zone.Code + ")")

	var rows []string
	rows = append(rows, title+"  "+subtitle)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-4s %-12s %-18s %-8s %-7s %-7s %-7s",
		"Hari", "Tarikh", "Hijrah", "Hari", "Imsak", "Subuh", "Maghrib")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 70))))

	end := j.offset + j.visibleRows()
	if end > len(zone.Times) {
		end = len(zone.Times)
	}
	for _, d := range zone.Times[j.offset:end] {
		line := fmt.Sprintf("  %-4d %-12s %-18s %-8s %-7s %-7s %-7s",
			d.Day, d.Date.Format("2006-01-02"), d.Hijri, d.DayName,
			d.Imsak, d.Subuh, d.Maghrib)

		switch {
		case d.Day == todayOrdinal:
			rows = append(rows, selectedItemStyle.Render("▸"+line[1:]))
		case d.Day < todayOrdinal:
			rows = append(rows, mutedStyle.Render(line))
		default:
			rows = append(rows, normalItemStyle.Render(line))
		}
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ↑/↓: skrol  e: export"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
