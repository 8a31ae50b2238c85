package store

import (
	"testing"
	"time"

	"github.com/rnwolfe/habitkit/internal/habit"
)

func TestLoadHabits_EmptyStore(t *testing.T) {
	db := openTestDB(t)

	hs, err := LoadHabits(db, "habits")
	if err != nil {
		t.Fatalf("LoadHabits: %v", err)
	}
	if hs == nil || len(hs) != 0 {
		t.Errorf("LoadHabits = %v, want empty non-nil slice", hs)
	}
}

func TestLoadHabits_MalformedIsEmpty(t *testing.T) {
	db := openTestDB(t)
	if err := db.Save("habits", []byte("{definitely not habits")); err != nil {
		t.Fatal(err)
	}

	hs, err := LoadHabits(db, "habits")
	if !IsMalformed(err) {
		t.Fatalf("err = %v, want malformed state", err)
	}
	if len(hs) != 0 {
		t.Errorf("LoadHabits = %v, want empty", hs)
	}
}

func TestPersistSubscriberRoundTrip(t *testing.T) {
	db := openTestDB(t)

	s := habit.NewStore(nil, habit.WithClock(habit.ClockFunc(func() time.Time {
		return time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	})))
	s.Subscribe(Persist(db, "habits"))

	h, err := s.Add(habit.Draft{Name: "Walk"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Toggle(h.ID, "2024-06-03"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	loaded, err := LoadHabits(db, "habits")
	if err != nil {
		t.Fatalf("LoadHabits: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d habits, want 1", len(loaded))
	}
	if loaded[0].ID != h.ID || !loaded[0].Completions.Done("2024-06-03") {
		t.Errorf("loaded = %+v", loaded[0])
	}
}

func TestPersistUsesConfiguredKey(t *testing.T) {
	db := openTestDB(t)
	persist := Persist(db, "custom")
	if err := persist([]habit.Habit{{ID: "x"}}); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := db.Load("custom"); !ok {
		t.Error("expected value under custom key")
	}
	if _, ok, _ := db.Load("habits"); ok {
		t.Error("nothing should be written under another key")
	}
}
