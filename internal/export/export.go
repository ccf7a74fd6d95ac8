// Package export writes habit history to CSV or JSON files.
package export

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/store"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Label is the display name, e.g. "CSV".
func (f Format) Label() string { return strings.ToUpper(string(f)) }

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv or json)", s)
}

// DefaultPath is habitr-export-YYYY-MM-DD.<format> inside dir.
func DefaultPath(dir string, f Format, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("habitr-export-%s.%s", now.Format("2006-01-02"), f))
}

// Write exports reports in format f, loading completions from s.
func Write(s *store.Store, reports []analytics.Report, f Format, path string) error {
	completions := make(map[int64][]store.Completion, len(reports))
	for _, r := range reports {
		cs, err := s.ListCompletions(r.Habit.ID, 0)
		if err != nil {
			return err
		}
		// ListCompletions is newest first; exports read oldest first.
		slices.Reverse(cs)
		completions[r.Habit.ID] = cs
	}

	switch f {
	case FormatCSV:
		return ToCSV(reports, completions, path)
	case FormatJSON:
		return ToJSON(reports, completions, path)
	}
	return fmt.Errorf("unknown export format %q", f)
}
