package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ilmualam/imsakiah/internal/doa"
	"github.com/ilmualam/imsakiah/internal/schedule"
	"github.com/ilmualam/imsakiah/internal/store"
	"github.com/ilmualam/imsakiah/internal/waktu"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestCatalog() *schedule.Catalog {
	return schedule.NewCatalog(schedule.Ramadan2025())
}

func newTestApp(t *testing.T) App {
	t.Helper()
	s := newTestStore(t)
	state := s.LoadState(time.Now())
	return NewApp(s, newTestCatalog(), state)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// Today model
// ============================================================

func TestTodayTickRecomputes(t *testing.T) {
	m := newTodayModel(newTestCatalog(), "WP-KL")

	// Mid-fast on day 7 of the 2025 period
	noon := time.Date(2025, 3, 7, 12, 0, 0, 0, waktu.MYT)
	m, _ = m.update(tickMsg(noon))

	if !m.hasData {
		t.Fatal("known zone should have countdown data")
	}
	if m.countdown.Phase != schedule.PhaseFasting {
		t.Fatalf("expected fasting phase at noon, got %v", m.countdown.Phase)
	}
	if !m.now.Equal(noon) {
		t.Fatal("tick should update the cached instant")
	}
}

func TestTodayUnknownZone(t *testing.T) {
	m := newTodayModel(newTestCatalog(), "XX-99")
	m.setSize(100, 40)

	if m.hasData {
		t.Fatal("unknown zone should have no countdown data")
	}
	view := m.view()
	if !strings.Contains(view, "--:--:--") {
		t.Fatal("unknown zone should render the placeholder clock")
	}
}

func TestTodayZoneChangeViaStateMsg(t *testing.T) {
	m := newTodayModel(newTestCatalog(), "WP-KL")

	state := store.DefaultState()
	state.SelectedZone = "JHR-02"
	m, _ = m.update(stateMsg{state: state})

	if m.zoneID != "JHR-02" {
		t.Fatalf("expected zone JHR-02, got %s", m.zoneID)
	}
}

func TestTodayViewShowsTimes(t *testing.T) {
	m := newTodayModel(newTestCatalog(), "WP-KL")
	m.setSize(100, 40)
	m.recompute(time.Date(2025, 3, 7, 12, 0, 0, 0, waktu.MYT))

	view := m.view()
	for _, want := range []string{"Imsak", "Subuh", "Maghrib", "Kuala Lumpur"} {
		if !strings.Contains(view, want) {
			t.Fatalf("today view missing %q", want)
		}
	}
}

// ============================================================
// Jadual model
// ============================================================

func TestJadualScroll(t *testing.T) {
	m := newJadualModel(newTestCatalog(), "WP-KL")
	m.setSize(100, 15) // small height forces scrolling

	if m.offset != 0 {
		t.Fatal("offset should start at 0")
	}

	m, _ = m.update(keyPress('j'))
	if m.offset != 1 {
		t.Fatalf("expected offset 1 after scroll down, got %d", m.offset)
	}

	m, _ = m.update(keyPress('k'))
	if m.offset != 0 {
		t.Fatalf("expected offset 0 after scroll up, got %d", m.offset)
	}

	// Scrolling up at the top is a no-op
	m, _ = m.update(keyPress('k'))
	if m.offset != 0 {
		t.Fatal("offset should not go negative")
	}
}

func TestJadualScrollClampsAtBottom(t *testing.T) {
	m := newJadualModel(newTestCatalog(), "WP-KL")
	m.setSize(100, 15)

	for i := 0; i < 100; i++ {
		m, _ = m.update(keyPress('j'))
	}
	if m.offset != m.maxOffset() {
		t.Fatalf("offset %d should clamp at %d", m.offset, m.maxOffset())
	}
}

func TestJadualZoneChangeResetsScroll(t *testing.T) {
	m := newJadualModel(newTestCatalog(), "WP-KL")
	m.setSize(100, 15)
	m, _ = m.update(keyPress('j'))

	state := store.DefaultState()
	state.SelectedZone = "SGR-01"
	m, _ = m.update(stateMsg{state: state})

	if m.zoneID != "SGR-01" {
		t.Fatalf("expected zone SGR-01, got %s", m.zoneID)
	}
	if m.offset != 0 {
		t.Fatal("zone change should reset scroll offset")
	}
}

func TestJadualViewRendersTable(t *testing.T) {
	m := newJadualModel(newTestCatalog(), "WP-KL")
	m.setSize(120, 40)

	view := m.view()
	for _, want := range []string{"Jadual Imsakiah", "Imsak", "Maghrib", "2025-03-02"} {
		if !strings.Contains(view, want) {
			t.Fatalf("jadual view missing %q", want)
		}
	}
}

// ============================================================
// Hafazan model
// ============================================================

func TestHafazanCursorMovement(t *testing.T) {
	s := newTestStore(t)
	m := newHafazanModel(s, store.DefaultState())

	m, _ = m.update(keyPress('j'))
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
	m, _ = m.update(keyPress('k'))
	if m.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", m.cursor)
	}
	m, _ = m.update(keyPress('k'))
	if m.cursor != 0 {
		t.Fatal("cursor should not go negative")
	}
}

func TestHafazanFilterCycle(t *testing.T) {
	want := []doa.Category{doa.CategoryNiat, doa.CategoryBerbuka, doa.CategorySahur, ""}
	f := doa.Category("")
	for _, w := range want {
		f = nextFilter(f)
		if f != w {
			t.Fatalf("expected filter %q, got %q", w, f)
		}
	}
}

func TestHafazanFilterResetsCursor(t *testing.T) {
	s := newTestStore(t)
	m := newHafazanModel(s, store.DefaultState())
	m, _ = m.update(keyPress('j'))
	m, _ = m.update(keyPress('j'))

	m, _ = m.update(keyPress('f'))
	if m.cursor != 0 {
		t.Fatal("filter change should reset cursor")
	}
	if m.filter != doa.CategoryNiat {
		t.Fatalf("expected niat filter, got %q", m.filter)
	}
}

func TestHafazanToggleMemorizedPersists(t *testing.T) {
	s := newTestStore(t)
	state := s.LoadState(time.Now())
	m := newHafazanModel(s, state)

	m, cmd := m.update(keyPress('m'))
	if cmd == nil {
		t.Fatal("toggle should emit a command")
	}
	msg := cmd()
	sm, ok := msg.(stateMsg)
	if !ok {
		t.Fatalf("expected stateMsg, got %T", msg)
	}
	if len(sm.state.Memorized) != 1 {
		t.Fatalf("expected 1 memorized item, got %d", len(sm.state.Memorized))
	}
	if len(m.state.Memorized) != 1 {
		t.Fatal("model should hold the updated snapshot")
	}

	// Round trip through the store
	loaded := s.LoadState(time.Now())
	if len(loaded.Memorized) != 1 {
		t.Fatal("memorized item should survive reload")
	}
}

func TestHafazanToggleBookmark(t *testing.T) {
	s := newTestStore(t)
	state := s.LoadState(time.Now())
	m := newHafazanModel(s, state)

	m, cmd := m.update(keyPress('b'))
	if cmd == nil {
		t.Fatal("bookmark toggle should emit a command")
	}
	if len(m.state.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(m.state.Bookmarks))
	}

	m, _ = m.update(keyPress('b'))
	if len(m.state.Bookmarks) != 0 {
		t.Fatal("second toggle should remove the bookmark")
	}
}

func TestHafazanViewShowsBadges(t *testing.T) {
	s := newTestStore(t)
	state := store.DefaultState()
	state.Achievements = []string{"first_memorized"}
	m := newHafazanModel(s, state)
	m.setSize(120, 40)

	if !strings.Contains(m.view(), "Hafalan Pertama") {
		t.Fatal("view should show the achievement badge label")
	}
}

// ============================================================
// Statistik model
// ============================================================

func TestStatistikPaging(t *testing.T) {
	m := newStatistikModel(newTestCatalog(), "WP-KL", store.DefaultState())
	m.setSize(120, 40)

	m, _ = m.update(keyPress('l'))
	if m.offset != chartDays {
		t.Fatalf("expected offset %d after page right, got %d", chartDays, m.offset)
	}

	m, _ = m.update(keyPress('h'))
	if m.offset != 0 {
		t.Fatalf("expected offset 0 after page left, got %d", m.offset)
	}

	// Paging left at the start is a no-op
	m, _ = m.update(keyPress('h'))
	if m.offset != 0 {
		t.Fatal("offset should not go negative")
	}
}

func TestStatistikPagingClampsAtEnd(t *testing.T) {
	m := newStatistikModel(newTestCatalog(), "WP-KL", store.DefaultState())
	m.setSize(120, 40)

	for i := 0; i < 10; i++ {
		m, _ = m.update(keyPress('l'))
	}
	zone, _ := newTestCatalog().Zone("WP-KL")
	if m.offset+chartDays > len(zone.Times)+chartDays-1 {
		t.Fatalf("offset %d paged past the period", m.offset)
	}
	if m.offset >= len(zone.Times) {
		t.Fatalf("offset %d should stay within %d days", m.offset, len(zone.Times))
	}
}

func TestStatistikViewRenders(t *testing.T) {
	m := newStatistikModel(newTestCatalog(), "WP-KL", store.DefaultState())
	m.setSize(120, 40)

	view := m.view()
	for _, want := range []string{"Statistik", "Hafazan", "tempoh puasa"} {
		if !strings.Contains(view, want) {
			t.Fatalf("statistik view missing %q", want)
		}
	}
}

// ============================================================
// Tetapan model
// ============================================================

func TestTetapanShowFormOnEnter(t *testing.T) {
	s := newTestStore(t)
	m := newTetapanModel(s, newTestCatalog(), store.DefaultState())
	m.setSize(100, 40)

	if m.formActive {
		t.Fatal("form should start inactive")
	}

	m, cmd := m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.formActive {
		t.Fatal("enter should open the form")
	}
	if cmd == nil {
		t.Fatal("form init should return a command")
	}
	if *m.zone != "WP-KL" {
		t.Fatalf("form should seed the current zone, got %q", *m.zone)
	}
}

func TestTetapanEscCancelsForm(t *testing.T) {
	s := newTestStore(t)
	m := newTetapanModel(s, newTestCatalog(), store.DefaultState())
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.formActive {
		t.Fatal("esc should cancel the form")
	}
}

func TestTetapanSaveSettings(t *testing.T) {
	s := newTestStore(t)
	state := s.LoadState(time.Now())
	m := newTetapanModel(s, newTestCatalog(), state)

	*m.zone = "KDH-01"
	*m.darkMode = true
	*m.notifications = state.Notifications

	m, cmd := m.saveSettings()
	if cmd == nil {
		t.Fatal("save should emit a command")
	}
	sm, ok := cmd().(stateMsg)
	if !ok {
		t.Fatal("save should broadcast a state snapshot")
	}
	if sm.state.SelectedZone != "KDH-01" {
		t.Fatalf("expected zone KDH-01, got %s", sm.state.SelectedZone)
	}
	if !sm.state.DarkMode {
		t.Fatal("dark mode should be on")
	}

	loaded := s.LoadState(time.Now())
	if loaded.SelectedZone != "KDH-01" || !loaded.DarkMode {
		t.Fatal("settings should survive reload")
	}
}

func TestTetapanViewShowsCurrentZone(t *testing.T) {
	s := newTestStore(t)
	m := newTetapanModel(s, newTestCatalog(), store.DefaultState())
	m.setSize(100, 40)

	view := m.view()
	if !strings.Contains(view, "Kuala Lumpur") {
		t.Fatal("view should name the selected zone")
	}
}

func TestOnOff(t *testing.T) {
	if onOff(true) != "hidup" || onOff(false) != "mati" {
		t.Fatal("onOff labels wrong")
	}
}

// ============================================================
// Helper functions
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{time.Minute, "00:01:00"},
		{time.Hour, "01:00:00"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 5 {
		t.Fatalf("expected 5 view names, got %d", len(viewNames))
	}
	expected := []string{"Hari Ini", "Jadual", "Hafazan", "Statistik", "Tetapan"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewToday != 0 || viewJadual != 1 || viewHafazan != 2 || viewStatistik != 3 || viewTetapan != 4 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	if app.activeView != viewToday {
		t.Fatal("default view should be Hari Ini")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.state.SelectedZone != "WP-KL" {
		t.Fatalf("first run should default to WP-KL, got %s", app.state.SelectedZone)
	}
}

func TestAppIsFormActiveDefault(t *testing.T) {
	app := newTestApp(t)
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(App)

	// Test all views render without panic
	views := []viewState{viewToday, viewJadual, viewHafazan, viewStatistik, viewTetapan}
	for _, v := range views {
		app.activeView = v
		output := app.View()
		if output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabSwitching(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(keyPress('2'))
	app = model.(App)
	if app.activeView != viewJadual {
		t.Fatalf("expected Jadual view, got %d", app.activeView)
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.activeView != viewHafazan {
		t.Fatalf("tab should cycle to Hafazan, got %d", app.activeView)
	}
}

func TestAppTabWrapsAround(t *testing.T) {
	app := newTestApp(t)
	app.activeView = viewTetapan

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.activeView != viewToday {
		t.Fatal("tab should wrap back to Hari Ini")
	}
}

func TestAppStateMsgFansOut(t *testing.T) {
	app := newTestApp(t)

	state := app.state
	state.SelectedZone = "PNG-01"
	model, _ := app.Update(stateMsg{state: state})
	app = model.(App)

	if app.state.SelectedZone != "PNG-01" {
		t.Fatal("app should hold the new snapshot")
	}
	if app.today.zoneID != "PNG-01" {
		t.Fatal("today view should pick up the zone change")
	}
	if app.jadual.zoneID != "PNG-01" {
		t.Fatal("jadual view should pick up the zone change")
	}
	if app.statistik.zoneID != "PNG-01" {
		t.Fatal("statistik view should pick up the zone change")
	}
}

func TestAppTickReArms(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should re-arm the next tick")
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppRenderFooter(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	footer := app.renderFooter()
	if footer == "" {
		t.Fatal("footer should not be empty")
	}
}

func TestAppLoadingState(t *testing.T) {
	app := newTestApp(t)
	// Width 0 means not yet sized
	output := app.View()
	if output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.status = "test status"

	footer := app.renderFooter()
	if !strings.Contains(footer, "test status") {
		t.Fatal("footer should contain status message")
	}
}

// ============================================================
// Export picker
// ============================================================

func TestAppExportPickerOpens(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(keyPress('e'))
	app = model.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	if app.exportCursor != 0 {
		t.Fatal("picker cursor should reset")
	}
}

func TestAppExportPickerNavigation(t *testing.T) {
	app := newTestApp(t)
	app.exportPicking = true

	model, _ := app.Update(keyPress('j'))
	app = model.(App)
	if app.exportCursor != 1 {
		t.Fatalf("expected cursor 1, got %d", app.exportCursor)
	}

	// Clamp at the last format
	model, _ = app.Update(keyPress('j'))
	app = model.(App)
	if app.exportCursor != 1 {
		t.Fatal("cursor should clamp at the last format")
	}

	model, _ = app.Update(keyPress('k'))
	app = model.(App)
	if app.exportCursor != 0 {
		t.Fatalf("expected cursor 0, got %d", app.exportCursor)
	}
}

func TestAppExportPickerCancel(t *testing.T) {
	app := newTestApp(t)
	app.exportPicking = true

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	if app.exportPicking {
		t.Fatal("esc should close the picker")
	}
}

func TestAppExportPickerRenders(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.exportPicking = true

	view := app.View()
	for _, want := range []string{"Export Jadual", "CSV", "JSON"} {
		if !strings.Contains(view, want) {
			t.Fatalf("export picker missing %q", want)
		}
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	bindings := keys.ShortHelp()
	if len(bindings) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test — just verify they don't panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"countdown", func() string { return countdownStyle.Render("test") }},
		{"countdownFasting", func() string { return countdownFastingStyle.Render("test") }},
		{"countdownBerbuka", func() string { return countdownBerbukaStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"accent", func() string { return accentStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		result := s.fn()
		if result == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
