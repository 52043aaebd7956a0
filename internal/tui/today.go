package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ilmualam/imsakiah/internal/schedule"
)

// todayModel renders the live countdown, today's boundary times and the
// month progress for the selected zone.
type todayModel struct {
	catalog *schedule.Catalog
	width   int
	height  int

	zoneID    string
	now       time.Time
	countdown schedule.Countdown
	hasData   bool
}

func newTodayModel(catalog *schedule.Catalog, zoneID string) todayModel {
	t := todayModel{catalog: catalog, zoneID: zoneID}
	t.recompute(time.Now())
	return t
}

func (t *todayModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t *todayModel) setZone(zoneID string) {
	t.zoneID = zoneID
	t.recompute(time.Now())
}

// recompute refreshes the cached countdown; the phase and remaining time
// are pure functions of wall time, so nothing else is stored.
func (t *todayModel) recompute(now time.Time) {
	t.now = now
	t.countdown, t.hasData = t.catalog.Countdown(t.zoneID, now)
}

func (t todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		t.recompute(time.Time(msg))
	case stateMsg:
		if msg.state.SelectedZone != t.zoneID {
			t.setZone(msg.state.SelectedZone)
		}
	}
	return t, nil
}

func (t todayModel) view() string {
	if t.width < 20 {
		return "Terminal too small"
	}
	contentWidth := t.width - 4

	countdownPanel := t.renderCountdownPanel(contentWidth)
	timesPanel := t.renderTimesPanel(contentWidth)
	progressPanel := t.renderProgressPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, countdownPanel, timesPanel, progressPanel)
}

func (t todayModel) renderCountdownPanel(w int) string {
	if !t.hasData {
		// Unknown zone: neutral placeholder, never a blank display.
		clock := countdownStyle.Width(w - 6).Render("--:--:--")
		hint := mutedStyle.Render("Tiada data untuk zon ini. Tukar zon di Tetapan.")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Center, clock, hint),
		)
	}

	cd := t.countdown

	style := countdownStyle
	switch cd.Phase {
	case schedule.PhaseFasting:
		style = countdownFastingStyle
	case schedule.PhasePostMaghrib:
		style = countdownBerbukaStyle
	}

	sublabel := mutedStyle.Render(cd.Sublabel)
	clock := style.Width(w - 6).Render(cd.Clock())
	target := highlightStyle.Render(fmt.Sprintf("%s  %s", cd.Label, cd.Target))

	rows := []string{sublabel, clock, target}
	if cd.Preview {
		rows = append(rows, warningStyle.Render("Pratonton hari 1 (di luar tempoh Ramadan)"))
	}

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, rows...),
	)
}

func (t todayModel) renderTimesPanel(w int) string {
	zone, ok := t.catalog.Zone(t.zoneID)
	if !ok {
		return panelStyle.Width(w).Render(mutedStyle.Render("Zon tidak dikenali"))
	}
	day, _, preview := t.catalog.TodaySchedule(t.zoneID, t.now)

	title := titleStyle.Render(zone.State + " — " + zone.Name)
	hijri := accentStyle.Render(day.Hijri)
	if preview {
		hijri += mutedStyle.Render(" (pratonton)")
	}
	date := mutedStyle.Render(fmt.Sprintf("%s, %s", day.DayName, day.Date.Format("2 Jan 2006")))

	times := fmt.Sprintf("  Imsak %s    Subuh %s    Maghrib %s",
		highlightStyle.Render(day.Imsak.String()),
		normalItemStyle.Render(day.Subuh.String()),
		successStyle.Render(day.Maghrib.String()),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, hijri+"  "+date, "", times),
	)
}

func (t todayModel) renderProgressPanel(w int) string {
	prog := t.catalog.Period.Progress(t.now)

	title := titleStyle.Render("Ramadan " + fmt.Sprintf("%dH", t.catalog.Period.HijriYear))
	msg := mutedStyle.Render(prog.Message)

	barWidth := w - 12
	if barWidth < 10 {
		barWidth = 10
	}
	filled := barWidth * prog.Percentage / 100
	bar := successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", barWidth-filled))
	pct := highlightStyle.Render(fmt.Sprintf("%3d%%", prog.Percentage))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title+"  "+msg, "", "  "+bar+" "+pct),
	)
}
