// Package habit models tracked habits and derives streaks and activity grids
// from their completion maps.
package habit

import (
	"errors"
	"maps"
	"time"
)

var (
	// ErrHabitNotFound is returned when no habit matches an id or query.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidHabit is returned when a Draft fails validation.
	ErrInvalidHabit = errors.New("invalid habit")
	// ErrInvalidDateKey is returned for keys that are not canonical YYYY-MM-DD.
	ErrInvalidDateKey = errors.New("invalid date key")
	// ErrMalformedState is returned when serialized habits can't be decoded.
	ErrMalformedState = errors.New("malformed habit state")
	// ErrAmbiguous is returned when a query matches more than one habit.
	ErrAmbiguous = errors.New("ambiguous habit")
)

// Completions maps canonical date keys to completion state. Keys are sparse;
// an absent key means not completed.
type Completions map[string]bool

// Done reports whether key is marked completed. Absent keys are false.
func (c Completions) Done(key string) bool {
	return c[key]
}

// Count returns the number of days marked completed.
func (c Completions) Count() int {
	n := 0
	for _, done := range c {
		if done {
			n++
		}
	}
	return n
}

// Habit is a tracked behavior with its completion history.
type Habit struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Icon        string      `json:"icon" yaml:"icon"`
	Color       string      `json:"color" yaml:"color"`
	CreatedAt   time.Time   `json:"createdAt" yaml:"createdAt"`
	Completions Completions `json:"completions" yaml:"completions"`
}

// DoneOn reports whether the habit was completed on t's calendar day.
func (h Habit) DoneOn(t time.Time) bool {
	return h.Completions.Done(DateKey(t))
}

// clone returns a copy that shares no mutable state with h.
func (h Habit) clone() Habit {
	out := h
	out.Completions = maps.Clone(h.Completions)
	if out.Completions == nil {
		out.Completions = Completions{}
	}
	return out
}

func cloneAll(hs []Habit) []Habit {
	out := make([]Habit, len(hs))
	for i, h := range hs {
		out[i] = h.clone()
	}
	return out
}
