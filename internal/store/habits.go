package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sadopc/habitr/internal/streak"
	"go.uber.org/zap"
)

const habitColumns = `id, name, description, priority, periodicity, created_at`

func (s *Store) CreateHabit(name, description string, priority int, periodicity streak.Periodicity) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priority < 1 || priority > 5 {
		return nil, ErrInvalidPriority
	}
	if !periodicity.Valid() {
		return nil, &streak.InvalidPeriodicityError{Value: string(periodicity)}
	}

	if _, err := s.GetHabitByName(name); err == nil {
		return nil, fmt.Errorf("create habit %q: %w", name, ErrDuplicateHabit)
	} else if !errors.Is(err, ErrHabitNotFound) {
		return nil, err
	}

	now := streak.FormatTimestamp(time.Now())
	res, err := s.db.Exec(
		`INSERT INTO habits (name, description, priority, periodicity, created_at) VALUES (?, ?, ?, ?, ?)`,
		name, description, priority, string(periodicity), now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert habit: %w", err)
	}
	id, _ := res.LastInsertId()
	s.log.Info("habit created",
		zap.Int64("habit_id", id),
		zap.String("name", name),
		zap.String("periodicity", string(periodicity)),
	)
	return s.GetHabit(id)
}

func (s *Store) GetHabit(id int64) (*Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get habit %d: %w", id, ErrHabitNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get habit %d: %w", id, err)
	}
	return h, nil
}

// GetHabitByName looks a habit up ignoring case.
func (s *Store) GetHabitByName(name string) (*Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE name = ? COLLATE NOCASE`, strings.TrimSpace(name))
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get habit %q: %w", name, ErrHabitNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get habit %q: %w", name, err)
	}
	return h, nil
}

// LookupHabit resolves an all-digit identifier as an ID and anything else
// as a case-insensitive name.
func (s *Store) LookupHabit(identifier string) (*Habit, error) {
	identifier = strings.TrimSpace(identifier)
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return s.GetHabit(id)
	}
	return s.GetHabitByName(identifier)
}

func (s *Store) ListHabits() ([]Habit, error) {
	return s.queryHabits(`SELECT `+habitColumns+` FROM habits ORDER BY name COLLATE NOCASE`)
}

func (s *Store) ListHabitsByPeriodicity(p streak.Periodicity) ([]Habit, error) {
	if !p.Valid() {
		return nil, &streak.InvalidPeriodicityError{Value: string(p)}
	}
	return s.queryHabits(
		`SELECT `+habitColumns+` FROM habits WHERE periodicity = ? ORDER BY name COLLATE NOCASE`,
		string(p),
	)
}

func (s *Store) queryHabits(query string, args ...any) ([]Habit, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	var habits []Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	return habits, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(sc scanner) (*Habit, error) {
	h := &Habit{}
	var periodicity, createdAt string
	if err := sc.Scan(&h.ID, &h.Name, &h.Description, &h.Priority, &periodicity, &createdAt); err != nil {
		return nil, err
	}
	h.Periodicity = streak.Periodicity(periodicity)
	h.CreatedAt, _ = streak.ParseTimestamp(createdAt)
	return h, nil
}
