package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ilmualam/imsakiah/internal/doa"
	"github.com/ilmualam/imsakiah/internal/store"
)

// hafazanModel is the memorization tracker: the doa catalog with
// memorized/bookmark toggles, the visit streak and the achievement badges.
type hafazanModel struct {
	store  *store.Store
	width  int
	height int

	state  store.UserState
	cursor int
	filter doa.Category // empty = all
}

func newHafazanModel(s *store.Store, state store.UserState) hafazanModel {
	return hafazanModel{store: s, state: state}
}

func (h *hafazanModel) setSize(w, h2 int) {
	h.width = w
	h.height = h2
}

func (h hafazanModel) items() []doa.Item {
	if h.filter == "" {
		return doa.All()
	}
	return doa.ByCategory(h.filter)
}

func (h hafazanModel) update(msg tea.Msg) (hafazanModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		h.state = msg.state
		return h, nil

	case tea.KeyMsg:
		items := h.items()
		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
		case key.Matches(msg, keys.Down):
			if h.cursor < len(items)-1 {
				h.cursor++
			}
		case key.Matches(msg, keys.Filter):
			h.filter = nextFilter(h.filter)
			h.cursor = 0
		case key.Matches(msg, keys.Memorize):
			if len(items) == 0 {
				return h, nil
			}
			return h.toggleMemorized(items[h.cursor].ID)
		case key.Matches(msg, keys.Bookmark):
			if len(items) == 0 {
				return h, nil
			}
			return h.toggleBookmark(items[h.cursor].ID)
		}
	}
	return h, nil
}

func nextFilter(f doa.Category) doa.Category {
	switch f {
	case "":
		return doa.CategoryNiat
	case doa.CategoryNiat:
		return doa.CategoryBerbuka
	case doa.CategoryBerbuka:
		return doa.CategorySahur
	default:
		return ""
	}
}

func (h hafazanModel) toggleMemorized(itemID string) (hafazanModel, tea.Cmd) {
	state, err := h.store.ToggleMemorized(h.state, itemID, time.Now())
	if err != nil {
		return h, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	h.state = state
	return h, func() tea.Msg { return stateMsg{state: state} }
}

func (h hafazanModel) toggleBookmark(itemID string) (hafazanModel, tea.Cmd) {
	state, err := h.store.ToggleBookmark(h.state, itemID, time.Now())
	if err != nil {
		return h, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	h.state = state
	return h, func() tea.Msg { return stateMsg{state: state} }
}

var achievementLabels = map[string]string{
	"first_memorized":    "Hafalan Pertama",
	"hafiz_beginner":     "Hafiz Permulaan",
	"hafiz_intermediate": "Hafiz Pertengahan",
	"weekly_streak":      "Streak Seminggu",
	"monthly_streak":     "Streak Sebulan",
	"dedicated_learner":  "Pelajar Tekun",
}

func (h hafazanModel) view() string {
	w := h.width - 4

	filterLabel := "semua"
	if h.filter != "" {
		filterLabel = string(h.filter)
	}
	title := titleStyle.Render("Hafazan Doa")
	meta := mutedStyle.Render(fmt.Sprintf("kategori: %s   streak: %d hari   hafal: %d/%d",
		filterLabel, h.state.Streak, len(h.state.Memorized), len(doa.All())))

	var rows []string
	rows = append(rows, title+"  "+meta)
	rows = append(rows, "")

	for i, it := range h.items() {
		mark := "  "
		if slices.Contains(h.state.Memorized, it.ID) {
			mark = successStyle.Render("✓ ")
		}
		book := " "
		if slices.Contains(h.state.Bookmarks, it.ID) {
			book = accentStyle.Render("★")
		}

		line := fmt.Sprintf("%s%s %-34s %s%-10s %s",
			mark, book, it.Title, mutedStyle.Render(string(it.Category)+" "), it.Importance,
			mutedStyle.Render(it.Source))

		if i == h.cursor {
			rows = append(rows, selectedItemStyle.Render("> ")+line)
		} else {
			rows = append(rows, "  "+line)
		}
	}

	if badges := h.renderBadges(); badges != "" {
		rows = append(rows, "")
		rows = append(rows, badges)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  m: hafal  b: bookmark  f: filter"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (h hafazanModel) renderBadges() string {
	if len(h.state.Achievements) == 0 {
		return ""
	}
	var badges []string
	for _, id := range h.state.Achievements {
		label, ok := achievementLabels[id]
		if !ok {
			label = id
		}
		badges = append(badges, accentStyle.Render("🏆 "+label))
	}
	return "  " + strings.Join(badges, "  ")
}
