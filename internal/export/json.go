package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/store"
	"github.com/sadopc/habitr/internal/streak"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	MaxStreak  int         `json:"max_streak"`
	Habits     []jsonHabit `json:"habits"`
}

type jsonHabit struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Priority       int      `json:"priority"`
	Periodicity    string   `json:"periodicity"`
	CreatedAt      string   `json:"created_at"`
	LongestStreak  int      `json:"longest_streak"`
	CurrentStreak  int      `json:"current_streak"`
	DoneThisPeriod bool     `json:"done_this_period"`
	Completions    []string `json:"completions"`
}

// ToJSON writes every habit with its streak figures and completion history.
func ToJSON(reports []analytics.Report, completions map[int64][]store.Completion, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(reports),
	}

	for _, r := range reports {
		h := r.Habit
		export.MaxStreak = max(export.MaxStreak, r.Longest)

		stamps := make([]string, 0, len(completions[h.ID]))
		for _, c := range completions[h.ID] {
			stamps = append(stamps, c.CompletedAt)
		}

		export.Habits = append(export.Habits, jsonHabit{
			ID:             h.ID,
			Name:           h.Name,
			Description:    h.Description,
			Priority:       h.Priority,
			Periodicity:    string(h.Periodicity),
			CreatedAt:      streak.FormatTimestamp(h.CreatedAt),
			LongestStreak:  r.Longest,
			CurrentStreak:  r.Current,
			DoneThisPeriod: r.DoneThisPeriod,
			Completions:    stamps,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
