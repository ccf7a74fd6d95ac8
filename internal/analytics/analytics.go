// Package analytics computes streak figures for stored habits.
//
// It fetches completions from a Source and delegates the arithmetic to the
// streak package. "Now" comes from an injectable clock so results are
// reproducible in tests.
package analytics

import (
	"fmt"
	"time"

	"github.com/sadopc/habitr/internal/store"
	"github.com/sadopc/habitr/internal/streak"
)

// Source supplies habits and their completions. *store.Store implements it.
type Source interface {
	Completions(habitID int64) ([]string, error)
	ListHabits() ([]store.Habit, error)
	ListHabitsByPeriodicity(p streak.Periodicity) ([]store.Habit, error)
}

type Analyzer struct {
	src Source
	now func() time.Time
}

type Option func(*Analyzer)

// WithClock replaces time.Now as the source of the current moment.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

func New(src Source, opts ...Option) *Analyzer {
	a := &Analyzer{src: src, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) LongestStreak(h store.Habit) (int, error) {
	ts, err := a.src.Completions(h.ID)
	if err != nil {
		return 0, fmt.Errorf("completions for %q: %w", h.Name, err)
	}
	n, err := streak.Longest(h.Periodicity, ts)
	if err != nil {
		return 0, fmt.Errorf("longest streak for %q: %w", h.Name, err)
	}
	return n, nil
}

func (a *Analyzer) CurrentStreak(h store.Habit) (int, error) {
	ts, err := a.src.Completions(h.ID)
	if err != nil {
		return 0, fmt.Errorf("completions for %q: %w", h.Name, err)
	}
	n, err := streak.Current(h.Periodicity, ts, a.now())
	if err != nil {
		return 0, fmt.Errorf("current streak for %q: %w", h.Name, err)
	}
	return n, nil
}

func (a *Analyzer) AllHabitNames() ([]string, error) {
	habits, err := a.src.ListHabits()
	if err != nil {
		return nil, err
	}
	return names(habits), nil
}

func (a *Analyzer) HabitNamesByPeriodicity(p streak.Periodicity) ([]string, error) {
	habits, err := a.src.ListHabitsByPeriodicity(p)
	if err != nil {
		return nil, err
	}
	return names(habits), nil
}

// MaxOverallStreak is the largest longest-streak across all habits, 0 when
// there are none.
func (a *Analyzer) MaxOverallStreak() (int, error) {
	habits, err := a.src.ListHabits()
	if err != nil {
		return 0, err
	}
	best := 0
	for _, h := range habits {
		n, err := a.LongestStreak(h)
		if err != nil {
			return 0, err
		}
		best = max(best, n)
	}
	return best, nil
}

func names(habits []store.Habit) []string {
	out := make([]string, 0, len(habits))
	for _, h := range habits {
		out = append(out, h.Name)
	}
	return out
}
