package store

import (
	"fmt"
	"strconv"

	"github.com/sadopc/habitr/internal/streak"
	"go.uber.org/zap"
)

const (
	SettingDefaultPeriodicity = "default_periodicity"
	SettingDefaultPriority    = "default_priority"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting upserts a setting. Known keys are validated first.
func (s *Store) SetSetting(key, value string) error {
	if err := validateSetting(key, value); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	s.log.Debug("setting updated", zap.String("key", key), zap.String("value", value))
	return nil
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var st Setting
		if err := rows.Scan(&st.Key, &st.Value); err != nil {
			return nil, err
		}
		settings = append(settings, st)
	}
	return settings, rows.Err()
}

// DefaultPeriodicity is the periodicity preselected for new habits.
func (s *Store) DefaultPeriodicity() streak.Periodicity {
	v, err := s.GetSetting(SettingDefaultPeriodicity)
	if err != nil {
		return streak.Daily
	}
	p, err := streak.ParsePeriodicity(v)
	if err != nil {
		return streak.Daily
	}
	return p
}

// DefaultPriority is the priority preselected for new habits.
func (s *Store) DefaultPriority() int {
	v, err := s.GetSetting(SettingDefaultPriority)
	if err != nil {
		return 3
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 5 {
		return 3
	}
	return n
}

func validateSetting(key, value string) error {
	switch key {
	case SettingDefaultPeriodicity:
		_, err := streak.ParsePeriodicity(value)
		return err
	case SettingDefaultPriority:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 5 {
			return ErrInvalidPriority
		}
	}
	return nil
}
