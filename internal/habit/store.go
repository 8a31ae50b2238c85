package habit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the host clock in local time.
var SystemClock Clock = ClockFunc(time.Now)

// IDGenerator returns a new globally unique habit id.
type IDGenerator func() string

// Subscriber is notified with the new collection after every mutation.
type Subscriber func(habits []Habit) error

// Store owns the habit collection. Each mutation replaces the collection with
// a new slice, so snapshots returned by Habits are never modified afterwards.
// A Store is not safe for concurrent use.
type Store struct {
	habits      []Habit
	clock       Clock
	newID       IDGenerator
	warn        func(error)
	subscribers []Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp CreatedAt.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator sets the id source for new habits.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) { s.newID = gen }
}

// WithWarnFunc sets the handler for non-fatal subscriber errors.
func WithWarnFunc(fn func(error)) Option {
	return func(s *Store) { s.warn = fn }
}

// NewStore returns a Store holding a copy of habits.
func NewStore(habits []Habit, opts ...Option) *Store {
	s := &Store{
		habits: cloneAll(habits),
		clock:  SystemClock,
		newID:  uuid.NewString,
		warn: func(err error) {
			zap.L().Warn("habit subscriber failed", zap.Error(err))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after each mutation.
func (s *Store) Subscribe(fn Subscriber) {
	s.subscribers = append(s.subscribers, fn)
}

// Habits returns a deep copy of the collection in creation order.
func (s *Store) Habits() []Habit {
	return cloneAll(s.habits)
}

// Get returns a copy of the habit with the given id.
func (s *Store) Get(id string) (Habit, bool) {
	i := s.index(id)
	if i < 0 {
		return Habit{}, false
	}
	return s.habits[i].clone(), true
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// Add validates d and appends a new habit with empty completions.
func (s *Store) Add(d Draft) (Habit, error) {
	d, err := d.Validate()
	if err != nil {
		return Habit{}, err
	}

	h := Habit{
		ID:          s.newID(),
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Color:       d.Color,
		CreatedAt:   s.clock.Now(),
		Completions: Completions{},
	}

	next := make([]Habit, 0, len(s.habits)+1)
	next = append(next, s.habits...)
	next = append(next, h)
	s.commit(next)
	return h.clone(), nil
}

// Toggle flips the completion for key on habit id. The entry is set to the
// negation of its current value, so a second toggle leaves an explicit false.
func (s *Store) Toggle(id, key string) (Habit, error) {
	if _, err := ParseDateKey(key, time.Local); err != nil {
		return Habit{}, err
	}
	i := s.index(id)
	if i < 0 {
		return Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	updated := s.habits[i].clone()
	updated.Completions[key] = !s.habits[i].Completions.Done(key)

	next := make([]Habit, len(s.habits))
	copy(next, s.habits)
	next[i] = updated
	s.commit(next)
	return updated.clone(), nil
}

// Import appends habits whose ids are not yet present and returns how many
// were added. Existing habits are left as they are.
func (s *Store) Import(habits []Habit) int {
	seen := make(map[string]bool, len(s.habits))
	for _, h := range s.habits {
		seen[h.ID] = true
	}

	next := make([]Habit, len(s.habits), len(s.habits)+len(habits))
	copy(next, s.habits)
	added := 0
	for _, h := range habits {
		if h.ID == "" || seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		next = append(next, h.clone())
		added++
	}
	if added > 0 {
		s.commit(next)
	}
	return added
}

func (s *Store) index(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// commit installs next as the current state and notifies subscribers.
func (s *Store) commit(next []Habit) {
	s.habits = next
	for _, fn := range s.subscribers {
		if err := fn(cloneAll(next)); err != nil {
			s.warn(err)
		}
	}
}
