package store

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/ilmualam/imsakiah/internal/waktu"
)

// StateKey is the durable slot the user record lives under. The year in
// the key namespaces records per Ramadan edition, so a stale record from a
// previous year never merges into a new one.
const StateKey = "imsakiah_2025"

// UserState is the whole per-user record. It is persisted as a single
// JSON snapshot and overwritten wholesale on every save.
type UserState struct {
	SelectedZone  string    `json:"selectedZone"`
	DarkMode      bool      `json:"darkMode"`
	Notifications bool      `json:"notifications"`
	LastVisit     time.Time `json:"lastVisit"`
	Streak        int       `json:"streak"`
	Memorized     []string  `json:"memorized"`
	Bookmarks     []string  `json:"bookmarks"`
	TotalReads    int       `json:"totalReads"`
	Achievements  []string  `json:"achievements"`
}

// DefaultState is the record a first-time user starts from.
func DefaultState() UserState {
	return UserState{SelectedZone: "WP-KL"}
}

// LoadState reads the persisted record and applies the day-over-day streak
// rule against now. A missing or unparseable record silently yields the
// defaults; persistence problems never surface past this point.
func (s *Store) LoadState(now time.Time) UserState {
	state := DefaultState()

	raw, err := s.getValue(StateKey)
	if err != nil {
		return state
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return DefaultState()
	}

	state.Streak = nextStreak(state.Streak, state.LastVisit, now)
	state.Achievements = ComputeAchievements(state)
	return state
}

// SaveState stamps a fresh last-visit time and overwrites the slot.
func (s *Store) SaveState(state UserState, now time.Time) error {
	state.LastVisit = now
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.setValue(StateKey, string(raw))
}

// nextStreak compares calendar dates in MYT, not instants: a repeat visit
// the same day keeps the streak, a visit the day after the last one extends
// it, anything else (including a first visit) resets to 1.
func nextStreak(streak int, lastVisit, now time.Time) int {
	if lastVisit.IsZero() {
		return 1
	}
	last := lastVisit.In(waktu.MYT)
	today := now.In(waktu.MYT)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case sameDate(last, today):
		return streak
	case sameDate(last, yesterday):
		return streak + 1
	default:
		return 1
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Achievement thresholds. Each rule fires independently; the result
// replaces the previous set entirely, so standing reflects the current
// counts rather than a historical peak.
var achievementRules = []struct {
	id  string
	met func(UserState) bool
}{
	{"first_memorized", func(u UserState) bool { return len(u.Memorized) >= 1 }},
	{"hafiz_beginner", func(u UserState) bool { return len(u.Memorized) >= 5 }},
	{"hafiz_intermediate", func(u UserState) bool { return len(u.Memorized) >= 10 }},
	{"weekly_streak", func(u UserState) bool { return u.Streak >= 7 }},
	{"monthly_streak", func(u UserState) bool { return u.Streak >= 30 }},
	{"dedicated_learner", func(u UserState) bool { return u.TotalReads >= 100 }},
}

// ComputeAchievements recomputes the full achievement set from the current
// record.
func ComputeAchievements(state UserState) []string {
	var out []string
	for _, r := range achievementRules {
		if r.met(state) {
			out = append(out, r.id)
		}
	}
	return out
}

// ============================================================
// Mutations
// ============================================================

// Each mutation transforms the record, recomputes achievements where the
// inputs changed, and persists immediately.

func (s *Store) SelectZone(state UserState, zoneID string, now time.Time) (UserState, error) {
	state.SelectedZone = zoneID
	return state, s.SaveState(state, now)
}

func (s *Store) ToggleDarkMode(state UserState, now time.Time) (UserState, error) {
	state.DarkMode = !state.DarkMode
	return state, s.SaveState(state, now)
}

func (s *Store) ToggleNotifications(state UserState, now time.Time) (UserState, error) {
	state.Notifications = !state.Notifications
	return state, s.SaveState(state, now)
}

// ToggleMemorized marks or unmarks an item as memorized. Marking counts as
// an interaction; unmarking does not.
func (s *Store) ToggleMemorized(state UserState, itemID string, now time.Time) (UserState, error) {
	if i := slices.Index(state.Memorized, itemID); i >= 0 {
		state.Memorized = slices.Delete(state.Memorized, i, i+1)
	} else {
		state.Memorized = append(state.Memorized, itemID)
		state.TotalReads++
	}
	state.Achievements = ComputeAchievements(state)
	return state, s.SaveState(state, now)
}

func (s *Store) ToggleBookmark(state UserState, itemID string, now time.Time) (UserState, error) {
	if i := slices.Index(state.Bookmarks, itemID); i >= 0 {
		state.Bookmarks = slices.Delete(state.Bookmarks, i, i+1)
	} else {
		state.Bookmarks = append(state.Bookmarks, itemID)
	}
	return state, s.SaveState(state, now)
}
