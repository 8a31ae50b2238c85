package habit

import (
	"fmt"
	"time"
)

// LastCompleted returns the most recent completed day in c.
func LastCompleted(c Completions) (string, bool) {
	last := ""
	for key, done := range c {
		if done && key > last {
			last = key
		}
	}
	return last, last != ""
}

// LastCompletedLabel describes the most recent completion relative to now:
// "Today", "Yesterday" or "N days ago". A key dated after now is "Upcoming".
// It is empty when c has no completions.
func LastCompletedLabel(c Completions, now time.Time) string {
	key, ok := LastCompleted(c)
	if !ok {
		return ""
	}
	day, err := parseCalendarKey(key)
	if err != nil {
		return ""
	}
	switch diff := daysBetween(day, now); {
	case diff < 0:
		return "Upcoming"
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", diff)
	}
}
