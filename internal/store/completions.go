package store

import (
	"fmt"
	"time"

	"github.com/sadopc/habitr/internal/streak"
	"go.uber.org/zap"
)

// CheckOff records a completion at the given moment unless the habit was
// already checked off on that calendar day.
func (s *Store) CheckOff(habitID int64, at time.Time) (*Completion, error) {
	if _, err := s.GetHabit(habitID); err != nil {
		return nil, err
	}

	day := at.Local().Format("2006-01-02")
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM completions WHERE habit_id = ? AND date(completed_at) = ?`,
		habitID, day,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check existing completion: %w", err)
	}
	if exists > 0 {
		return nil, fmt.Errorf("habit %d on %s: %w", habitID, day, ErrAlreadyChecked)
	}
	return s.insertCompletion(habitID, at)
}

// AddCompletion records a completion without the once-per-day check. It is
// meant for back-filling history.
func (s *Store) AddCompletion(habitID int64, at time.Time) (*Completion, error) {
	if _, err := s.GetHabit(habitID); err != nil {
		return nil, err
	}
	return s.insertCompletion(habitID, at)
}

func (s *Store) insertCompletion(habitID int64, at time.Time) (*Completion, error) {
	ts := streak.FormatTimestamp(at)
	res, err := s.db.Exec(
		`INSERT INTO completions (habit_id, completed_at) VALUES (?, ?)`,
		habitID, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert completion: %w", err)
	}
	id, _ := res.LastInsertId()
	s.log.Info("habit checked off", zap.Int64("habit_id", habitID), zap.String("completed_at", ts))
	return &Completion{ID: id, HabitID: habitID, CompletedAt: ts}, nil
}

// Completions returns the habit's completion timestamps, oldest first.
func (s *Store) Completions(habitID int64) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT completed_at FROM completions WHERE habit_id = ? ORDER BY completed_at`, habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

// ListCompletions returns completion rows for a habit, newest first.
// A limit of zero returns everything.
func (s *Store) ListCompletions(habitID int64, limit int) ([]Completion, error) {
	query := `SELECT id, habit_id, completed_at FROM completions WHERE habit_id = ? ORDER BY completed_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := s.db.Query(query, habitID)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	var completions []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.CompletedAt); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

// CompletionCounts returns the number of completions per habit ID.
func (s *Store) CompletionCounts() (map[int64]int, error) {
	rows, err := s.db.Query(`SELECT habit_id, COUNT(*) FROM completions GROUP BY habit_id`)
	if err != nil {
		return nil, fmt.Errorf("completion counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}
