package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ilmualam/imsakiah/internal/doa"
	"github.com/ilmualam/imsakiah/internal/schedule"
	"github.com/ilmualam/imsakiah/internal/store"
)

// statistikModel charts the daily fasting duration across the month and
// summarizes memorization progress per category.
type statistikModel struct {
	catalog *schedule.Catalog
	width   int
	height  int

	zoneID string
	state  store.UserState
	offset int // first charted day

	chart barchart.Model
}

const chartDays = 10

func newStatistikModel(catalog *schedule.Catalog, zoneID string, state store.UserState) statistikModel {
	m := statistikModel{
		catalog: catalog,
		zoneID:  zoneID,
		state:   state,
		chart:   barchart.New(60, 12),
	}
	m.buildChart()
	return m
}

func (s *statistikModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.buildChart()
}

func (s statistikModel) update(msg tea.Msg) (statistikModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		s.state = msg.state
		if msg.state.SelectedZone != s.zoneID {
			s.zoneID = msg.state.SelectedZone
			s.buildChart()
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if s.offset > 0 {
				s.offset -= chartDays
				if s.offset < 0 {
					s.offset = 0
				}
				s.buildChart()
			}
		case key.Matches(msg, keys.Right):
			if zone, ok := s.catalog.Zone(s.zoneID); ok && s.offset+chartDays < len(zone.Times) {
				s.offset += chartDays
				s.buildChart()
			}
		}
	}
	return s, nil
}

// buildChart plots hours between imsak and maghrib for a window of days.
func (s *statistikModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	zone, ok := s.catalog.Zone(s.zoneID)
	if !ok {
		return
	}

	end := s.offset + chartDays
	if end > len(zone.Times) {
		end = len(zone.Times)
	}

	var bars []barchart.BarData
	for _, d := range zone.Times[s.offset:end] {
		from := d.Imsak.At(d.Date)
		to := d.Maghrib.At(d.Date)
		hours := to.Sub(from).Hours()

		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("H%d", d.Day),
			Values: []barchart.BarValue{{
				Name:  d.Hijri,
				Value: hours,
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statistikModel) view() string {
	w := s.width - 4

	zone, ok := s.catalog.Zone(s.zoneID)
	if !ok {
		return panelStyle.Width(w).Render(mutedStyle.Render("Zon tidak dikenali"))
	}

	end := s.offset + chartDays
	if end > len(zone.Times) {
		end = len(zone.Times)
	}
	rangeLabel := mutedStyle.Render(fmt.Sprintf("hari %d–%d, tempoh puasa (jam)", s.offset+1, end))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Statistik"), "  ", rangeLabel,
	)

	chartView := s.chart.View()
	hafazanView := s.renderHafazanSummary()
	nav := mutedStyle.Render("  ←/→: tukar minggu")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", chartView, "", hafazanView, "", nav),
	)
}

func (s statistikModel) renderHafazanSummary() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Hafazan"))
	for _, cat := range doa.Categories() {
		items := doa.ByCategory(cat)
		done := 0
		for _, it := range items {
			if slices.Contains(s.state.Memorized, it.ID) {
				done++
			}
		}
		bar := successStyle.Render(strings.Repeat("■", done)) +
			mutedStyle.Render(strings.Repeat("□", len(items)-done))
		rows = append(rows, fmt.Sprintf("  %-10s %s %d/%d", cat, bar, done, len(items)))
	}
	return strings.Join(rows, "\n")
}
