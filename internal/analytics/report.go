package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/sadopc/habitr/internal/store"
	"github.com/sadopc/habitr/internal/streak"
)

// Report summarizes one habit's history as of the analyzer's clock.
type Report struct {
	Habit          store.Habit
	Longest        int
	Current        int
	Completions    int
	LastCompletion *time.Time
	DoneThisPeriod bool
}

// Report reads the habit's completions once and derives every figure from them.
func (a *Analyzer) Report(h store.Habit) (Report, error) {
	ts, err := a.src.Completions(h.ID)
	if err != nil {
		return Report{}, fmt.Errorf("completions for %q: %w", h.Name, err)
	}
	now := a.now()

	r := Report{Habit: h, Completions: len(ts)}
	if r.Longest, err = streak.Longest(h.Periodicity, ts); err != nil {
		return Report{}, fmt.Errorf("report for %q: %w", h.Name, err)
	}
	if r.Current, err = streak.Current(h.Periodicity, ts, now); err != nil {
		return Report{}, fmt.Errorf("report for %q: %w", h.Name, err)
	}
	if r.DoneThisPeriod, err = streak.DoneInPeriod(h.Periodicity, ts, now); err != nil {
		return Report{}, fmt.Errorf("report for %q: %w", h.Name, err)
	}
	for _, s := range ts {
		t, err := streak.ParseTimestamp(s)
		if err != nil {
			return Report{}, err
		}
		if r.LastCompletion == nil || t.After(*r.LastCompletion) {
			r.LastCompletion = &t
		}
	}
	return r, nil
}

// Reports builds a report for every habit, or only those with periodicity
// p when p is non-nil.
func (a *Analyzer) Reports(p *streak.Periodicity) ([]Report, error) {
	var habits []store.Habit
	var err error
	if p != nil {
		habits, err = a.src.ListHabitsByPeriodicity(*p)
	} else {
		habits, err = a.src.ListHabits()
	}
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(habits))
	for _, h := range habits {
		r, err := a.Report(h)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// ByLongest orders reports by longest streak, then current, then name.
func ByLongest(reports []Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Longest != reports[j].Longest {
			return reports[i].Longest > reports[j].Longest
		}
		if reports[i].Current != reports[j].Current {
			return reports[i].Current > reports[j].Current
		}
		return reports[i].Habit.Name < reports[j].Habit.Name
	})
}
