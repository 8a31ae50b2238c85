package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value for calendar days. It accepts YYYY-MM-DD,
// "today" and "yesterday", resolved against nowFunc.
type dateValue struct {
	t   time.Time
	set bool
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if !d.set {
		return ""
	}
	return habit.DateKey(d.t)
}

func (d *dateValue) Set(s string) error {
	now := nowFunc()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		d.t = habit.StartOfDay(now)
	case "yesterday":
		d.t = habit.StartOfDay(now).AddDate(0, 0, -1)
	default:
		t, err := habit.ParseDateKey(strings.TrimSpace(s), now.Location())
		if err != nil {
			return fmt.Errorf("want YYYY-MM-DD, today or yesterday")
		}
		d.t = t
	}
	d.set = true
	return nil
}

func (d *dateValue) Type() string { return "date" }

// Or returns the parsed day, or fallback when the flag wasn't given.
func (d *dateValue) Or(fallback time.Time) time.Time {
	if !d.set {
		return fallback
	}
	return d.t
}
