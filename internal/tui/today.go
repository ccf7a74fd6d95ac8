package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/store"
	"go.uber.org/zap"
)

type todayModel struct {
	store    *store.Store
	analyzer *analytics.Analyzer
	log      *zap.Logger
	now      func() time.Time
	width    int
	height   int

	reports []analytics.Report
	cursor  int
	err     error
}

func newTodayModel(s *store.Store, an *analytics.Analyzer, log *zap.Logger, now func() time.Time) todayModel {
	return todayModel{
		store:    s,
		analyzer: an,
		log:      log,
		now:      now,
	}
}

func (d *todayModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type todayDataMsg struct {
	reports []analytics.Report
	err     error
}

func (d todayModel) refresh() tea.Cmd {
	return func() tea.Msg {
		reports, err := d.analyzer.Reports(nil)
		return todayDataMsg{reports: reports, err: err}
	}
}

func (d todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todayDataMsg:
		d.reports = msg.reports
		d.err = msg.err
		if d.cursor >= len(d.reports) {
			d.cursor = max(0, len(d.reports)-1)
		}
		return d, nil

	case tickMsg:
		// period boundaries move with the clock
		return d, d.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.reports)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Check), key.Matches(msg, keys.Enter):
			if len(d.reports) == 0 {
				return d, func() tea.Msg {
					return statusMsg{text: "No habits yet. Press 2 to go to Habits and create one.", isError: true}
				}
			}
			return d, d.checkOff(d.reports[d.cursor].Habit)
		}
	}
	return d, nil
}

func (d todayModel) checkOff(h store.Habit) tea.Cmd {
	return func() tea.Msg {
		c, err := d.store.CheckOff(h.ID, d.now())
		if errors.Is(err, store.ErrAlreadyChecked) {
			return statusMsg{text: fmt.Sprintf("%s is already checked off today", h.Name)}
		}
		if err != nil {
			d.log.Error("check off failed", zap.Int64("habit_id", h.ID), zap.Error(err))
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return checkedOffMsg{habit: h, completion: c}
	}
}

func (d todayModel) doneCount() int {
	n := 0
	for _, r := range d.reports {
		if r.DoneThisPeriod {
			n++
		}
	}
	return n
}

func (d todayModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	w := d.width - 4

	title := titleStyle.Render("Today")
	if d.err != nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", errorStyle.Render(d.err.Error()),
		))
	}
	if len(d.reports) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("No habits yet. Press 2 to go to Habits and create one."),
		))
	}

	progress := highlightStyle.Render(fmt.Sprintf("%d/%d done this period", d.doneCount(), len(d.reports)))

	var rows []string
	rows = append(rows, fmt.Sprintf("%s  %s", title, progress), "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("    %-24s %-8s %-12s %s", "Habit", "Every", "Streak", "Last")))

	now := d.now()
	for i, r := range d.reports {
		mark := pendingMarkStyle.Render("○")
		if r.DoneThisPeriod {
			mark = doneMarkStyle.Render("✓")
		}
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		line := style.Render(fmt.Sprintf("%s%-24s %-8s ", cursor, truncate(r.Habit.Name, 24), r.Habit.Periodicity))
		streakText := fmt.Sprintf("%-12s", periodNoun(r.Habit.Periodicity, r.Current))
		if r.Current > 0 {
			streakText = streakStyle.Render(streakText)
		}
		rows = append(rows, fmt.Sprintf("%s %s %s %s", mark, line, streakText, mutedStyle.Render(formatLast(r.LastCompletion, now))))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  c/enter: check off  ↑/↓: move"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
