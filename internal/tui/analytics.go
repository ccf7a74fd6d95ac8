package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/streak"
)

type analyticsModel struct {
	analyzer *analytics.Analyzer
	width    int
	height   int

	filter    *streak.Periodicity
	reports   []analytics.Report
	maxStreak int
	err       error

	chart barchart.Model
}

func newAnalyticsModel(an *analytics.Analyzer) analyticsModel {
	return analyticsModel{
		analyzer: an,
		chart:    barchart.New(60, 12),
	}
}

func (r *analyticsModel) setSize(w, h int) {
	r.width = w
	r.height = h
	r.buildChart()
}

type analyticsDataMsg struct {
	reports   []analytics.Report
	maxStreak int
	err       error
}

func (r analyticsModel) refresh() tea.Cmd {
	filter := r.filter
	return func() tea.Msg {
		reports, err := r.analyzer.Reports(filter)
		if err != nil {
			return analyticsDataMsg{err: err}
		}
		analytics.ByLongest(reports)
		best, err := r.analyzer.MaxOverallStreak()
		return analyticsDataMsg{reports: reports, maxStreak: best, err: err}
	}
}

func (r analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsDataMsg:
		r.reports = msg.reports
		r.maxStreak = msg.maxStreak
		r.err = msg.err
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Filter) {
			r.filter = nextFilter(r.filter)
			return r, r.refresh()
		}
	}
	return r, nil
}

// buildChart draws one bar per habit: the current run stacked under the
// rest of the longest run, so bar height is the longest streak.
func (r *analyticsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, rep := range r.reports {
		bars = append(bars, barchart.BarData{
			Label: truncate(rep.Habit.Name, 8),
			Values: []barchart.BarValue{
				{Name: "current", Value: float64(rep.Current), Style: chartCurrentStyle},
				{Name: "longest", Value: float64(rep.Longest - rep.Current), Style: chartBestStyle},
			},
		})
	}
	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: mutedStyle}},
		}}
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r analyticsModel) view() string {
	w := r.width - 4

	var tabs []string
	for _, p := range append([]*streak.Periodicity{nil}, periodicityPtrs()...) {
		label := filterLabel(p)
		if samePeriodicity(p, r.filter) {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	best := highlightStyle.Render(fmt.Sprintf("best streak overall: %d", r.maxStreak))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Analytics"), "  ", modeTabs, "  ", best,
	)

	if r.err != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, header, "", errorStyle.Render(r.err.Error())),
		)
	}

	legend := "  " + chartCurrentStyle.Render("█") + " current  " + chartBestStyle.Render("█") + " longest"
	nav := mutedStyle.Render("  f: filter periodicity")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", legend, "", r.renderTable(w), "", nav,
		),
	)
}

func (r analyticsModel) renderTable(w int) string {
	if len(r.reports) == 0 {
		return mutedStyle.Render("  No habits for this periodicity")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-24s %-9s %8s %8s %6s", "Habit", "Every", "Longest", "Current", "Total")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 59))))
	for _, rep := range r.reports {
		rows = append(rows, fmt.Sprintf("  %-24s %-9s %8d %8d %6d",
			truncate(rep.Habit.Name, 24), rep.Habit.Periodicity, rep.Longest, rep.Current, rep.Completions,
		))
	}
	return strings.Join(rows, "\n")
}

func periodicityPtrs() []*streak.Periodicity {
	ps := streak.Periodicities()
	out := make([]*streak.Periodicity, len(ps))
	for i := range ps {
		out[i] = &ps[i]
	}
	return out
}

func samePeriodicity(a, b *streak.Periodicity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
