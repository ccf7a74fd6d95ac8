package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/habitr/internal/store"
	"github.com/sadopc/habitr/internal/streak"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewHabits
	viewAnalytics
	viewSettings
)

var viewNames = []string{"Today", "Habits", "Analytics", "Settings"}

// --- Messages ---

type habitCreatedMsg struct {
	habit *store.Habit
}

type checkedOffMsg struct {
	habit      store.Habit
	completion *store.Completion
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

// periodNoun names one period of p, for "3 days" style labels.
func periodNoun(p streak.Periodicity, n int) string {
	var unit string
	switch p {
	case streak.Daily:
		unit = "day"
	case streak.Weekly:
		unit = "week"
	case streak.Monthly:
		unit = "month"
	default:
		unit = "period"
	}
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// formatLast renders a last-completion time relative to now.
func formatLast(t *time.Time, now time.Time) string {
	if t == nil {
		return "never"
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	switch {
	case y1 == y2 && m1 == m2 && d1 == d2:
		return "today " + t.Format("15:04")
	case y1 == y2:
		return t.Format("Jan 02 15:04")
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
