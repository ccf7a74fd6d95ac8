package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/store"
	"github.com/sadopc/habitr/internal/streak"
	"go.uber.org/zap"
)

const recentCompletionsLimit = 10

type habitsModel struct {
	store    *store.Store
	analyzer *analytics.Analyzer
	log      *zap.Logger
	width    int
	height   int

	reports []analytics.Report
	cursor  int
	filter  *streak.Periodicity // nil shows every habit
	err     error

	viewingHistory bool
	history        []store.Completion

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName        *string
	formDescription *string
	formPriority    *int
	formPeriodicity *streak.Periodicity
}

func newHabitsModel(s *store.Store, an *analytics.Analyzer, log *zap.Logger) habitsModel {
	name, desc, prio, per := "", "", 3, streak.Daily
	return habitsModel{
		store:           s,
		analyzer:        an,
		log:             log,
		formName:        &name,
		formDescription: &desc,
		formPriority:    &prio,
		formPeriodicity: &per,
	}
}

func (p *habitsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type habitsDataMsg struct {
	reports []analytics.Report
	err     error
}

type historyDataMsg struct {
	completions []store.Completion
}

func (p habitsModel) refresh() tea.Cmd {
	filter := p.filter
	return func() tea.Msg {
		reports, err := p.analyzer.Reports(filter)
		return habitsDataMsg{reports: reports, err: err}
	}
}

func (p habitsModel) refreshHistory() tea.Cmd {
	if p.cursor >= len(p.reports) {
		return nil
	}
	id := p.reports[p.cursor].Habit.ID
	return func() tea.Msg {
		cs, _ := p.store.ListCompletions(id, recentCompletionsLimit)
		return historyDataMsg{completions: cs}
	}
}

// nextFilter cycles all → daily → weekly → monthly → all.
func nextFilter(cur *streak.Periodicity) *streak.Periodicity {
	ps := streak.Periodicities()
	if cur == nil {
		return &ps[0]
	}
	for i, p := range ps {
		if p == *cur && i+1 < len(ps) {
			return &ps[i+1]
		}
	}
	return nil
}

func filterLabel(p *streak.Periodicity) string {
	if p == nil {
		return "all"
	}
	return p.String()
}

func (p habitsModel) update(msg tea.Msg) (habitsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case habitsDataMsg:
		p.reports = msg.reports
		p.err = msg.err
		if p.cursor >= len(p.reports) {
			p.cursor = max(0, len(p.reports)-1)
		}
		return p, nil

	case historyDataMsg:
		p.history = msg.completions
		return p, nil

	case tea.KeyMsg:
		if p.viewingHistory {
			if key.Matches(msg, keys.Back) {
				p.viewingHistory = false
			}
			return p, nil
		}
		return p.updateList(msg)
	}
	return p, nil
}

func (p habitsModel) updateList(msg tea.KeyMsg) (habitsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.reports)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(p.reports) > 0 {
			p.viewingHistory = true
			p.history = nil
			return p, p.refreshHistory()
		}
	case key.Matches(msg, keys.Filter):
		p.filter = nextFilter(p.filter)
		p.cursor = 0
		return p, p.refresh()
	case key.Matches(msg, keys.New):
		return p.showNewHabitForm()
	}
	return p, nil
}

func (p habitsModel) showNewHabitForm() (habitsModel, tea.Cmd) {
	*p.formName = ""
	*p.formDescription = ""
	*p.formPriority = p.store.DefaultPriority()
	*p.formPeriodicity = p.store.DefaultPeriodicity()

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Habit Name").Value(p.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return store.ErrEmptyName
					}
					return nil
				}),
			huh.NewInput().Title("Description").Value(p.formDescription),
			huh.NewSelect[int]().Title("Priority").Options(priorityOptions()...).Value(p.formPriority),
			huh.NewSelect[streak.Periodicity]().Title("Periodicity").Options(periodicityOptions()...).Value(p.formPeriodicity),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func priorityOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, 5)
	for i := 1; i <= 5; i++ {
		label := fmt.Sprintf("%d", i)
		switch i {
		case 1:
			label += " (highest)"
		case 5:
			label += " (lowest)"
		}
		opts = append(opts, huh.NewOption(label, i))
	}
	return opts
}

func periodicityOptions() []huh.Option[streak.Periodicity] {
	ps := streak.Periodicities()
	opts := make([]huh.Option[streak.Periodicity], len(ps))
	for i, per := range ps {
		opts[i] = huh.NewOption(per.String(), per)
	}
	return opts
}

func (p habitsModel) updateForm(msg tea.Msg) (habitsModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		return p, p.createHabit(*p.formName, *p.formDescription, *p.formPriority, *p.formPeriodicity)
	}

	return p, cmd
}

func (p habitsModel) createHabit(name, desc string, prio int, per streak.Periodicity) tea.Cmd {
	return func() tea.Msg {
		h, err := p.store.CreateHabit(name, desc, prio, per)
		switch {
		case errors.Is(err, store.ErrDuplicateHabit):
			return statusMsg{text: fmt.Sprintf("A habit named %q already exists", strings.TrimSpace(name)), isError: true}
		case err != nil:
			p.log.Error("create habit failed", zap.String("name", name), zap.Error(err))
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return habitCreatedMsg{habit: h}
	}
}

func (p habitsModel) view() string {
	if p.formActive && p.form != nil {
		title := titleStyle.Render("New Habit")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View())
		return panelStyle.Width(p.width - 4).Render(content)
	}

	if p.viewingHistory {
		return p.renderHistory()
	}
	return p.renderList()
}

func (p habitsModel) renderList() string {
	w := p.width - 4
	title := titleStyle.Render("Habits") + "  " + mutedStyle.Render("filter: "+filterLabel(p.filter))

	if p.err != nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", errorStyle.Render(p.err.Error()),
		))
	}
	if len(p.reports) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("No habits here. Press n to create one."),
		))
	}

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-24s %-9s %8s %8s %8s %6s", "Name", "Every", "Priority", "Current", "Longest", "Total")))

	for i, r := range p.reports {
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-24s %-9s %8d %8d %8d %6d",
			cursor, truncate(r.Habit.Name, 24), r.Habit.Periodicity, r.Habit.Priority,
			r.Current, r.Longest, r.Completions,
		)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  f: filter  enter: history"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (p habitsModel) renderHistory() string {
	w := p.width - 4
	r := p.reports[p.cursor]
	title := titleStyle.Render(r.Habit.Name) + "  " + mutedStyle.Render(r.Habit.Periodicity.String())

	var rows []string
	rows = append(rows, title)
	if r.Habit.Description != "" {
		rows = append(rows, mutedStyle.Render(r.Habit.Description))
	}
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("Current streak  %s", streakStyle.Render(periodNoun(r.Habit.Periodicity, r.Current))))
	rows = append(rows, fmt.Sprintf("Longest streak  %s", highlightStyle.Render(periodNoun(r.Habit.Periodicity, r.Longest))))
	rows = append(rows, fmt.Sprintf("Created         %s", r.Habit.CreatedAt.Format("2006-01-02")))
	rows = append(rows, "")
	rows = append(rows, titleStyle.Render("Recent Completions"))

	if len(p.history) == 0 {
		rows = append(rows, mutedStyle.Render("  Not completed yet"))
	}
	for _, c := range p.history {
		when := c.CompletedAt
		if t, err := streak.ParseTimestamp(c.CompletedAt); err == nil {
			when = t.Format("Mon 2006-01-02 15:04")
		}
		rows = append(rows, "  "+successStyle.Render("✓")+" "+when)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
