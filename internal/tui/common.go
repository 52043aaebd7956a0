package tui

import (
	"fmt"
	"time"

	"github.com/ilmualam/imsakiah/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewJadual
	viewHafazan
	viewStatistik
	viewTetapan
)

var viewNames = []string{"Hari Ini", "Jadual", "Hafazan", "Statistik", "Tetapan"}

// --- Messages ---

// stateMsg broadcasts the user record after any mutation so every view
// renders the same snapshot.
type stateMsg struct {
	state store.UserState
}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
