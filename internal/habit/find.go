package habit

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// minIDPrefix is the shortest id prefix Resolve will match on.
const minIDPrefix = 4

type habitNames []Habit

func (h habitNames) String(i int) string { return h[i].Name }
func (h habitNames) Len() int            { return len(h) }

// Resolve finds a habit by exact id, unique id prefix, case-insensitive name,
// or best fuzzy name match, in that order.
func Resolve(habits []Habit, query string) (Habit, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Habit{}, fmt.Errorf("%w: empty query", ErrHabitNotFound)
	}

	for _, h := range habits {
		if h.ID == q {
			return h, nil
		}
	}

	if len(q) >= minIDPrefix {
		var matches []Habit
		for _, h := range habits {
			if strings.HasPrefix(h.ID, q) {
				matches = append(matches, h)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
		default:
			return Habit{}, fmt.Errorf("%w: id prefix %q matches %d habits", ErrAmbiguous, q, len(matches))
		}
	}

	for _, h := range habits {
		if strings.EqualFold(h.Name, q) {
			return h, nil
		}
	}

	if found := FuzzyFilter(habits, q); len(found) > 0 {
		return found[0], nil
	}
	return Habit{}, fmt.Errorf("%w: %q", ErrHabitNotFound, q)
}

// FuzzyFilter returns habits whose names fuzzy-match query, best first.
// An empty query returns habits unchanged.
func FuzzyFilter(habits []Habit, query string) []Habit {
	if query == "" {
		return habits
	}
	matches := fuzzy.FindFrom(query, habitNames(habits))
	out := make([]Habit, 0, len(matches))
	for _, m := range matches {
		out = append(out, habits[m.Index])
	}
	return out
}

// ShortID returns the first eight characters of a habit id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
