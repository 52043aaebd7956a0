package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ilmualam/imsakiah/internal/schedule"
	"github.com/ilmualam/imsakiah/internal/store"
)

type tetapanModel struct {
	store   *store.Store
	catalog *schedule.Catalog
	width   int
	height  int

	state      store.UserState
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	zone          *string
	darkMode      *bool
	notifications *bool
}

func newTetapanModel(s *store.Store, catalog *schedule.Catalog, state store.UserState) tetapanModel {
	z := ""
	dm, nt := false, false
	return tetapanModel{
		store:         s,
		catalog:       catalog,
		state:         state,
		zone:          &z,
		darkMode:      &dm,
		notifications: &nt,
	}
}

func (t *tetapanModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tetapanModel) update(msg tea.Msg) (tetapanModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case stateMsg:
		t.state = msg.state
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return t.showForm()
		}
	}
	return t, nil
}

func (t tetapanModel) showForm() (tetapanModel, tea.Cmd) {
	*t.zone = t.state.SelectedZone
	*t.darkMode = t.state.DarkMode
	*t.notifications = t.state.Notifications

	var zoneOptions []huh.Option[string]
	for _, z := range t.catalog.Zones() {
		label := fmt.Sprintf("%s — %s", z.State, z.Name)
		zoneOptions = append(zoneOptions, huh.NewOption(label, z.ID))
	}

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Zon").
				Options(zoneOptions...).
				Value(t.zone),
		).Title("Zon Waktu Solat"),
		huh.NewGroup(
			huh.NewConfirm().Title("Mod gelap").Value(t.darkMode),
			huh.NewConfirm().Title("Notifikasi berbuka").Value(t.notifications),
		).Title("Paparan"),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tetapanModel) updateForm(msg tea.Msg) (tetapanModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		return t.saveSettings()
	}

	return t, cmd
}

// saveSettings applies each changed field as its own mutation, persisting
// after each one.
func (t tetapanModel) saveSettings() (tetapanModel, tea.Cmd) {
	now := time.Now()
	state := t.state
	var err error

	if *t.zone != state.SelectedZone {
		state, err = t.store.SelectZone(state, *t.zone, now)
	}
	if err == nil && *t.darkMode != state.DarkMode {
		state, err = t.store.ToggleDarkMode(state, now)
	}
	if err == nil && *t.notifications != state.Notifications {
		state, err = t.store.ToggleNotifications(state, now)
	}
	if err != nil {
		return t, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}

	t.state = state
	return t, func() tea.Msg { return stateMsg{state: state} }
}

func (t tetapanModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("Tetapan")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View()),
		)
	}

	title := titleStyle.Render("Tetapan")
	hint := mutedStyle.Render("Tekan enter untuk ubah tetapan")

	zoneLabel := t.state.SelectedZone
	if z, ok := t.catalog.Zone(t.state.SelectedZone); ok {
		zoneLabel = fmt.Sprintf("%s — %s (%s)", z.State, z.Name, z.Code)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %s %s",
		lipgloss.NewStyle().Width(24).Render("Zon"), highlightStyle.Render(zoneLabel)))
	rows = append(rows, fmt.Sprintf("  %s %s",
		lipgloss.NewStyle().Width(24).Render("Mod gelap"), highlightStyle.Render(onOff(t.state.DarkMode))))
	rows = append(rows, fmt.Sprintf("  %s %s",
		lipgloss.NewStyle().Width(24).Render("Notifikasi"), highlightStyle.Render(onOff(t.state.Notifications))))
	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func onOff(b bool) string {
	if b {
		return "hidup"
	}
	return "mati"
}
