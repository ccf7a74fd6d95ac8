package store

import (
	"errors"
	"testing"
	"time"

	"github.com/sadopc/habitr/internal/streak"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustHabit(t *testing.T, s *Store, name string, p streak.Periodicity) *Habit {
	t.Helper()
	h, err := s.CreateHabit(name, "desc", 2, p)
	if err != nil {
		t.Fatalf("create habit %q: %v", name, err)
	}
	return h
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/habitr.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	h, err := s.CreateHabit("Read", "", 1, streak.Daily)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: data survives and migration is not re-run.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	got, err := s2.GetHabit(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Read" {
		t.Fatalf("name = %q after reopen", got.Name)
	}
}

func TestPragmasConfigured(t *testing.T) {
	s := newTestStore(t)

	var fk int
	s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fk)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Habits
// ============================================================

func TestCreateAndGetHabit(t *testing.T) {
	s := newTestStore(t)
	h, err := s.CreateHabit("Meditate", "ten minutes", 1, streak.Daily)
	if err != nil {
		t.Fatal(err)
	}
	if h.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if h.Name != "Meditate" || h.Description != "ten minutes" || h.Priority != 1 || h.Periodicity != streak.Daily {
		t.Fatalf("unexpected habit: %+v", h)
	}
	if h.CreatedAt.IsZero() {
		t.Fatal("CreatedAt should be set")
	}
}

func TestCreateHabitTrimsName(t *testing.T) {
	s := newTestStore(t)
	h, err := s.CreateHabit("  Stretch  ", "", 3, streak.Weekly)
	if err != nil {
		t.Fatal(err)
	}
	if h.Name != "Stretch" {
		t.Fatalf("name = %q, want Stretch", h.Name)
	}
}

func TestCreateHabitDuplicateNameIgnoresCase(t *testing.T) {
	s := newTestStore(t)
	mustHabit(t, s, "Run", streak.Daily)

	_, err := s.CreateHabit("RUN", "", 1, streak.Weekly)
	if !errors.Is(err, ErrDuplicateHabit) {
		t.Fatalf("expected ErrDuplicateHabit, got %v", err)
	}
}

func TestCreateHabitValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateHabit("", "", 1, streak.Daily); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("empty name: got %v", err)
	}
	for _, prio := range []int{0, 6, -1} {
		if _, err := s.CreateHabit("X", "", prio, streak.Daily); !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("priority %d: got %v", prio, err)
		}
	}
	_, err := s.CreateHabit("X", "", 1, "yearly")
	var perr *streak.InvalidPeriodicityError
	if !errors.As(err, &perr) {
		t.Fatalf("expected InvalidPeriodicityError, got %v", err)
	}
}

func TestGetHabitNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetHabit(999); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
	if _, err := s.GetHabitByName("nope"); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestLookupHabit(t *testing.T) {
	s := newTestStore(t)
	h := mustHabit(t, s, "CaseTest", streak.Daily)

	byName, err := s.LookupHabit("casetest")
	if err != nil {
		t.Fatal(err)
	}
	if byName.ID != h.ID || byName.Name != "CaseTest" {
		t.Fatalf("lookup by name returned %+v", byName)
	}

	byID, err := s.LookupHabit(" 1 ")
	if err != nil {
		t.Fatal(err)
	}
	if byID.ID != h.ID {
		t.Fatalf("lookup by id returned %+v", byID)
	}
}

func TestListHabits(t *testing.T) {
	s := newTestStore(t)
	mustHabit(t, s, "walk", streak.Daily)
	mustHabit(t, s, "Budget", streak.Monthly)
	mustHabit(t, s, "Call mum", streak.Weekly)

	habits, err := s.ListHabits()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Budget", "Call mum", "walk"}
	if len(habits) != len(want) {
		t.Fatalf("expected %d habits, got %d", len(want), len(habits))
	}
	for i, name := range want {
		if habits[i].Name != name {
			t.Fatalf("habits[%d] = %q, want %q", i, habits[i].Name, name)
		}
	}
}

func TestListHabitsEmpty(t *testing.T) {
	s := newTestStore(t)
	habits, err := s.ListHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 0 {
		t.Fatalf("expected no habits, got %d", len(habits))
	}
}

func TestListHabitsByPeriodicity(t *testing.T) {
	s := newTestStore(t)
	mustHabit(t, s, "DH1", streak.Daily)
	mustHabit(t, s, "DH2", streak.Daily)
	mustHabit(t, s, "WH1", streak.Weekly)

	daily, err := s.ListHabitsByPeriodicity(streak.Daily)
	if err != nil {
		t.Fatal(err)
	}
	if len(daily) != 2 || daily[0].Name != "DH1" || daily[1].Name != "DH2" {
		t.Fatalf("unexpected daily habits: %+v", daily)
	}

	monthly, err := s.ListHabitsByPeriodicity(streak.Monthly)
	if err != nil {
		t.Fatal(err)
	}
	if len(monthly) != 0 {
		t.Fatalf("expected no monthly habits, got %d", len(monthly))
	}

	if _, err := s.ListHabitsByPeriodicity("hourly"); err == nil {
		t.Fatal("expected error for unknown periodicity")
	}
}

// ============================================================
// Completions
// ============================================================

func TestCheckOffOncePerDay(t *testing.T) {
	s := newTestStore(t)
	h := mustHabit(t, s, "CheckOnce", streak.Daily)

	morning := time.Date(2025, 10, 15, 8, 0, 0, 0, time.Local)
	if _, err := s.CheckOff(h.ID, morning); err != nil {
		t.Fatal(err)
	}
	_, err := s.CheckOff(h.ID, morning.Add(10*time.Hour))
	if !errors.Is(err, ErrAlreadyChecked) {
		t.Fatalf("expected ErrAlreadyChecked, got %v", err)
	}

	if _, err := s.CheckOff(h.ID, morning.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("next day check-off: %v", err)
	}

	ts, err := s.Completions(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 2 {
		t.Fatalf("expected 2 completions, got %d", len(ts))
	}
}

func TestCheckOffUnknownHabit(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CheckOff(42, time.Now()); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestCheckOffStoresLocalSecondPrecision(t *testing.T) {
	s := newTestStore(t)
	h := mustHabit(t, s, "Floss", streak.Daily)

	at := time.Date(2025, 10, 15, 21, 5, 9, 987654321, time.Local)
	c, err := s.CheckOff(h.ID, at)
	if err != nil {
		t.Fatal(err)
	}
	if c.CompletedAt != "2025-10-15T21:05:09" {
		t.Fatalf("completed_at = %q", c.CompletedAt)
	}
}

func TestAddCompletionAllowsSameDay(t *testing.T) {
	s := newTestStore(t)
	h := mustHabit(t, s, "Water", streak.Daily)

	at := time.Date(2025, 10, 15, 9, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		if _, err := s.AddCompletion(h.ID, at.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatal(err)
		}
	}
	ts, _ := s.Completions(h.ID)
	if len(ts) != 3 {
		t.Fatalf("expected 3 completions, got %d", len(ts))
	}
}

func TestCompletionsAscending(t *testing.T) {
	s := newTestStore(t)
	h := mustHabit(t, s, "Journal", streak.Daily)

	base := time.Date(2025, 10, 15, 12, 0, 0, 0, time.Local)
	for _, d := range []int{0, -5, -2, -9} {
		s.AddCompletion(h.ID, base.AddDate(0, 0, d))
	}

	ts, err := s.Completions(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(ts); i++ {
		if ts[i-1] > ts[i] {
			t.Fatalf("completions not ascending: %v", ts)
		}
	}
	if ts[0] != "2025-10-06T12:00:00" {
		t.Fatalf("first completion = %q", ts[0])
	}
}

func TestCompletionsScopedToHabit(t *testing.T) {
	s := newTestStore(t)
	a := mustHabit(t, s, "A", streak.Daily)
	b := mustHabit(t, s, "B", streak.Daily)
	s.AddCompletion(a.ID, time.Now())

	ts, err := s.Completions(b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 0 {
		t.Fatalf("expected no completions for B, got %v", ts)
	}
}

func TestListCompletionsNewestFirstWithLimit(t *testing.T) {
	s := newTestStore(t)
	h := mustHabit(t, s, "Gym", streak.Weekly)

	base := time.Date(2025, 10, 15, 18, 0, 0, 0, time.Local)
	for w := 0; w < 5; w++ {
		s.AddCompletion(h.ID, base.AddDate(0, 0, -7*w))
	}

	all, err := s.ListCompletions(h.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5, got %d", len(all))
	}
	if all[0].CompletedAt != "2025-10-15T18:00:00" {
		t.Fatalf("newest = %q", all[0].CompletedAt)
	}

	limited, _ := s.ListCompletions(h.ID, 2)
	if len(limited) != 2 {
		t.Fatalf("expected 2 with limit, got %d", len(limited))
	}
}

func TestCompletionCounts(t *testing.T) {
	s := newTestStore(t)
	a := mustHabit(t, s, "A", streak.Daily)
	b := mustHabit(t, s, "B", streak.Daily)
	mustHabit(t, s, "C", streak.Daily)

	now := time.Now()
	s.AddCompletion(a.ID, now)
	s.AddCompletion(a.ID, now.Add(-time.Hour))
	s.AddCompletion(b.ID, now)

	counts, err := s.CompletionCounts()
	if err != nil {
		t.Fatal(err)
	}
	if counts[a.ID] != 2 || counts[b.ID] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if _, ok := counts[3]; ok {
		t.Fatal("habit without completions should be absent")
	}
}

// ============================================================
// Settings
// ============================================================

func TestDefaultSettings(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) != 2 {
		t.Fatalf("expected 2 default settings, got %d", len(settings))
	}
	if s.DefaultPeriodicity() != streak.Daily {
		t.Fatalf("default periodicity = %q", s.DefaultPeriodicity())
	}
	if s.DefaultPriority() != 3 {
		t.Fatalf("default priority = %d", s.DefaultPriority())
	}
}

func TestSetSetting(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetSetting(SettingDefaultPeriodicity, "weekly"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting(SettingDefaultPriority, "5"); err != nil {
		t.Fatal(err)
	}
	if s.DefaultPeriodicity() != streak.Weekly {
		t.Fatalf("default periodicity = %q", s.DefaultPeriodicity())
	}
	if s.DefaultPriority() != 5 {
		t.Fatalf("default priority = %d", s.DefaultPriority())
	}

	if err := s.SetSetting("theme", "dark"); err != nil {
		t.Fatal(err)
	}
	v, err := s.GetSetting("theme")
	if err != nil || v != "dark" {
		t.Fatalf("theme = %q, %v", v, err)
	}
}

func TestSetSettingRejectsInvalid(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetSetting(SettingDefaultPeriodicity, "hourly"); err == nil {
		t.Fatal("expected error for invalid periodicity")
	}
	if err := s.SetSetting(SettingDefaultPriority, "9"); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if s.DefaultPriority() != 3 {
		t.Fatal("invalid value should not be stored")
	}
}

func TestGetSettingMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetSetting("missing"); err == nil {
		t.Fatal("expected error for missing setting")
	}
}
