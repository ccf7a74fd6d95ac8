package store

import (
	"time"

	"github.com/sadopc/habitr/internal/streak"
)

type Habit struct {
	ID          int64
	Name        string
	Description string
	Priority    int // 1 (highest) to 5
	Periodicity streak.Periodicity
	CreatedAt   time.Time
}

type Completion struct {
	ID          int64
	HabitID     int64
	CompletedAt string // streak.TimestampLayout, local time
}

type Setting struct {
	Key   string
	Value string
}
