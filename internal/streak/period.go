package streak

import (
	"strings"
	"time"
)

type Periodicity string

const (
	Daily   Periodicity = "daily"
	Weekly  Periodicity = "weekly"
	Monthly Periodicity = "monthly"
)

// Periodicities returns the supported periodicities in cadence order.
func Periodicities() []Periodicity {
	return []Periodicity{Daily, Weekly, Monthly}
}

// ParsePeriodicity normalizes s and rejects anything unknown.
func ParsePeriodicity(s string) (Periodicity, error) {
	p := Periodicity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := rules[p]; !ok {
		return "", &InvalidPeriodicityError{Value: s}
	}
	return p, nil
}

func (p Periodicity) Valid() bool {
	_, ok := rules[p]
	return ok
}

func (p Periodicity) String() string { return string(p) }

// rule describes how one periodicity buckets time. Adjacent buckets differ
// by step. A zero window means recency is judged on keys, not durations.
type rule struct {
	key    func(time.Time) int
	step   int
	window time.Duration
}

var rules = map[Periodicity]rule{
	Daily:   {key: dayOrdinal, step: 1, window: 24 * time.Hour},
	Weekly:  {key: weekOrdinal, step: 7, window: 7 * 24 * time.Hour},
	Monthly: {key: monthOrdinal, step: 1},
}

func lookup(p Periodicity) (rule, error) {
	r, ok := rules[p]
	if !ok {
		return rule{}, &InvalidPeriodicityError{Value: string(p)}
	}
	return r, nil
}

// Key returns the period key of t under p.
func Key(p Periodicity, t time.Time) (int, error) {
	r, err := lookup(p)
	if err != nil {
		return 0, err
	}
	return r.key(t), nil
}

// dayOrdinal counts civil days since 1970-01-01 using t's own wall date,
// so DST transitions never move a timestamp into another bucket.
func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// weekOrdinal is the day ordinal of the Monday that starts t's ISO week.
func weekOrdinal(t time.Time) int {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return dayOrdinal(t) - sinceMonday
}

func monthOrdinal(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// lapsed reports whether the latest completion is too old for a streak to
// still be current at now.
func (r rule) lapsed(latest, now time.Time) bool {
	if r.window > 0 {
		return now.Sub(latest) > r.window
	}
	return r.key(now)-r.key(latest) > r.step
}
