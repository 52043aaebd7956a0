package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ilmualam/imsakiah/internal/export"
	"github.com/ilmualam/imsakiah/internal/schedule"
	"github.com/ilmualam/imsakiah/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store   *store.Store
	catalog *schedule.Catalog
	state   store.UserState
	width   int
	height  int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	today     todayModel
	jadual    jadualModel
	hafazan   hafazanModel
	statistik statistikModel
	tetapan   tetapanModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, catalog *schedule.Catalog, state store.UserState) App {
	h := help.New()
	h.ShowAll = false

	zone := state.SelectedZone

	return App{
		store:      s,
		catalog:    catalog,
		state:      state,
		activeView: viewToday,
		today:      newTodayModel(catalog, zone),
		jadual:     newJadualModel(catalog, zone),
		hafazan:    newHafazanModel(s, state),
		statistik:  newStatistikModel(catalog, zone, state),
		tetapan:    newTetapanModel(s, catalog, state),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.today.setSize(a.width, contentHeight)
		a.jadual.setSize(a.width, contentHeight)
		a.hafazan.setSize(a.width, contentHeight)
		a.statistik.setSize(a.width, contentHeight)
		a.tetapan.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewToday
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewJadual
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewHafazan
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewStatistik
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewTetapan
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 5
			return a, nil
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
		var cmd tea.Cmd
		a.today, cmd = a.today.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case stateMsg:
		// Fan state snapshots out so every view renders consistently.
		a.state = msg.state
		a.today, _ = a.today.update(msg)
		a.jadual, _ = a.jadual.update(msg)
		a.hafazan, _ = a.hafazan.update(msg)
		a.statistik, _ = a.statistik.update(msg)
		a.tetapan, _ = a.tetapan.update(msg)
		return a, nil

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewToday:
		a.today, cmd = a.today.update(msg)
	case viewJadual:
		a.jadual, cmd = a.jadual.update(msg)
	case viewHafazan:
		a.hafazan, cmd = a.hafazan.update(msg)
	case viewStatistik:
		a.statistik, cmd = a.statistik.update(msg)
	case viewTetapan:
		a.tetapan, cmd = a.tetapan.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	return a.activeView == viewTetapan && a.tetapan.formActive
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewToday:
		content = a.today.view()
	case viewJadual:
		content = a.jadual.view()
	case viewHafazan:
		content = a.hafazan.view()
	case viewStatistik:
		content = a.statistik.view()
	case viewTetapan:
		content = a.tetapan.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker(contentHeight)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("imsakiah")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Countdown indicator in footer
	countdownInfo := ""
	if cd, ok := a.catalog.Countdown(a.state.SelectedZone, time.Now()); ok {
		switch cd.Phase {
		case schedule.PhaseFasting:
			countdownInfo = successStyle.Render(" ● berbuka " + cd.Clock())
		case schedule.PhasePreImsak:
			countdownInfo = warningStyle.Render(" ● imsak " + cd.Clock())
		default:
			countdownInfo = mutedStyle.Render(" ● sahur " + cd.Clock())
		}
	}

	left := footerStyle.Render(helpView)
	right := countdownInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker(_ int) string {
	title := titleStyle.Render("Export Jadual")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	zoneID := a.state.SelectedZone
	return func() tea.Msg {
		zone, ok := a.catalog.Zone(zoneID)
		if !ok {
			return statusMsg{text: "Export error: zon tidak dikenali", isError: true}
		}

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("imsakiah-%s-%s.csv", zoneID, dateStr))
			if err := export.ToCSV(zone, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("imsakiah-%s-%s.json", zoneID, dateStr))
			if err := export.ToJSON(zone, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
