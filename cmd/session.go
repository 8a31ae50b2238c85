package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/habitkit/internal/config"
	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/store"
	"github.com/rnwolfe/habitkit/internal/ui"
	"go.uber.org/zap"
)

// nowFunc is the clock commands read "today" from. Tests replace it.
var nowFunc = time.Now

// newID generates habit ids. Tests replace it.
var newID habit.IDGenerator

// session bundles what a habit command needs: config, the open database, and
// a habit store whose mutations are persisted.
type session struct {
	cfg   *config.Config
	db    *store.DB
	store *habit.Store
}

func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	key := cfg.StorageKey()
	habits, err := store.LoadHabits(db, key)
	if err != nil {
		if !store.IsMalformed(err) {
			db.Close()
			return nil, fmt.Errorf("loading habits: %w", err)
		}
		ui.Warn("Saved habits couldn't be read, starting with an empty list.")
	}

	opts := []habit.Option{
		habit.WithClock(habit.ClockFunc(func() time.Time { return nowFunc() })),
		habit.WithWarnFunc(func(err error) {
			zap.L().Warn("saving habits failed", zap.Error(err))
			ui.Warn(fmt.Sprintf("couldn't save habits: %v", err))
		}),
	}
	if newID != nil {
		opts = append(opts, habit.WithIDGenerator(newID))
	}

	hs := habit.NewStore(habits, opts...)
	hs.Subscribe(store.Persist(db, key))

	return &session{cfg: cfg, db: db, store: hs}, nil
}

// Close releases the database.
func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("closing store", zap.Error(err))
	}
}

// resolve finds a habit by id, id prefix or name.
func (s *session) resolve(query string) (habit.Habit, error) {
	h, err := habit.Resolve(s.store.Habits(), query)
	if err != nil {
		return habit.Habit{}, fmt.Errorf("%w (run %s to see your habits)", err, ui.Accent.Render("habitkit list"))
	}
	return h, nil
}
