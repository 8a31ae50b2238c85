package habit

import (
	"encoding/json"
	"fmt"
)

// Encode serializes habits as a JSON array.
func Encode(habits []Habit) ([]byte, error) {
	if habits == nil {
		habits = []Habit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return nil, fmt.Errorf("encoding habits: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of habits. Parse failures wrap ErrMalformedState.
func Decode(data []byte) ([]Habit, error) {
	var habits []Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return Normalize(habits)
}

// Normalize checks decoded habits and fills nil completion maps. Habits
// without an id or creation time, or with keys that are not real YYYY-MM-DD
// dates, make the whole state malformed.
func Normalize(habits []Habit) ([]Habit, error) {
	for i := range habits {
		if habits[i].ID == "" {
			return nil, fmt.Errorf("%w: habit %d has no id", ErrMalformedState, i)
		}
		if habits[i].CreatedAt.IsZero() {
			return nil, fmt.Errorf("%w: habit %s has no createdAt", ErrMalformedState, habits[i].ID)
		}
		if habits[i].Completions == nil {
			habits[i].Completions = Completions{}
		}
		for key := range habits[i].Completions {
			if _, err := parseCalendarKey(key); err != nil {
				return nil, fmt.Errorf("%w: habit %s has completion key %q", ErrMalformedState, habits[i].ID, key)
			}
		}
	}
	return habits, nil
}
