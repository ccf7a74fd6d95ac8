package streak

import (
	"slices"
	"time"
)

// Longest returns the longest run of adjacent periods that contain at least
// one completion. Input order and same-period duplicates do not matter.
func Longest(p Periodicity, timestamps []string) (int, error) {
	r, err := lookup(p)
	if err != nil {
		return 0, err
	}
	keys, _, err := periodKeys(r, timestamps)
	if err != nil {
		return 0, err
	}

	longest, run := 0, 0
	for i, k := range keys {
		if i == 0 || k-keys[i-1] != r.step {
			run = 1
		} else {
			run++
		}
		longest = max(longest, run)
	}
	return longest, nil
}

// Current returns the run of adjacent periods ending at the most recent
// completion, or 0 when that completion is more than one period before now.
func Current(p Periodicity, timestamps []string, now time.Time) (int, error) {
	r, err := lookup(p)
	if err != nil {
		return 0, err
	}
	keys, latest, err := periodKeys(r, timestamps)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 || r.lapsed(latest, now) {
		return 0, nil
	}

	run := 1
	for i := len(keys) - 1; i > 0; i-- {
		if keys[i-1] != keys[i]-r.step {
			break
		}
		run++
	}
	return run, nil
}

// DoneInPeriod reports whether any completion falls in the same period as now.
func DoneInPeriod(p Periodicity, timestamps []string, now time.Time) (bool, error) {
	r, err := lookup(p)
	if err != nil {
		return false, err
	}
	keys, _, err := periodKeys(r, timestamps)
	if err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(keys, r.key(now))
	return found, nil
}

// periodKeys parses timestamps and returns their unique keys in ascending
// order together with the latest parsed time.
func periodKeys(r rule, timestamps []string) ([]int, time.Time, error) {
	var latest time.Time
	seen := make(map[int]struct{}, len(timestamps))
	keys := make([]int, 0, len(timestamps))
	for _, ts := range timestamps {
		t, err := ParseTimestamp(ts)
		if err != nil {
			return nil, time.Time{}, err
		}
		if t.After(latest) {
			latest = t
		}
		k := r.key(t)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, latest, nil
}
