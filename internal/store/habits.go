package store

import (
	"errors"
	"fmt"

	"github.com/rnwolfe/habitkit/internal/habit"
	"go.uber.org/zap"
)

// LoadHabits reads the habit collection stored under key. A missing key is an
// empty collection. A malformed value is also an empty collection, returned
// together with an error wrapping habit.ErrMalformedState so the caller can
// warn and carry on.
func LoadHabits(db *DB, key string) ([]habit.Habit, error) {
	raw, ok, err := db.Load(key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []habit.Habit{}, nil
	}

	habits, err := habit.Decode(raw)
	if err != nil {
		zap.L().Warn("stored habits are malformed, starting fresh",
			zap.String("key", key), zap.Int("bytes", len(raw)), zap.Error(err))
		return []habit.Habit{}, err
	}
	zap.L().Debug("loaded habits", zap.String("key", key), zap.Int("count", len(habits)))
	return habits, nil
}

// IsMalformed reports whether err came from unreadable stored state.
func IsMalformed(err error) bool {
	return errors.Is(err, habit.ErrMalformedState)
}

// Persist returns a subscriber that writes the whole collection under key
// after every mutation.
func Persist(db *DB, key string) habit.Subscriber {
	return func(habits []habit.Habit) error {
		data, err := habit.Encode(habits)
		if err != nil {
			return err
		}
		if err := db.Save(key, data); err != nil {
			return fmt.Errorf("persisting habits: %w", err)
		}
		zap.L().Debug("persisted habits", zap.String("key", key), zap.Int("count", len(habits)))
		return nil
	}
}
