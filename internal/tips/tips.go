// Package tips provides short hints for habitkit command discovery and
// streak milestone messages.
package tips

import "time"

var all = []string{
	"`habitkit add \"Read\"` to start tracking a new habit.",
	"`habitkit add --preset 3` to start from one of the built-in suggestions.",
	"`habitkit presets` to browse suggested habits with their icons and colors.",
	"`habitkit done read` to check off today. Names match fuzzily.",
	"`habitkit done read --date 2024-05-01` to back-fill a day you forgot.",
	"`habitkit toggle read` to undo a check-off made by mistake.",
	"`habitkit show read` to see a habit's activity grid and longest streak.",
	"`habitkit board` to check off habits from an interactive list.",
	"`habitkit list` to see every habit with its id and current streak.",
	"`habitkit export backup.json` to save all habits to a file.",
	"`habitkit export --format yaml` to get a human-editable backup.",
	"`habitkit export --encrypt backup.age` to protect a backup with a passphrase.",
	"`habitkit import backup.json` to bring habits over from another machine.",
	"`habitkit config set habits.grid_weeks 26` to show half a year in the grid.",
	"`habitkit config set user.name Sam` to get a personal greeting.",
	"`habitkit config list` to see every setting you can change.",
	"`habitkit -v` logs what habitkit is doing to stderr.",
	"Set HABITKIT_PASSPHRASE to skip the passphrase prompt in scripts.",
	"Streaks count back from today. Check off today before midnight to keep yours.",
	"Small habits stick. Two minutes a day beats an hour once a week.",
}

// milestones are streak lengths worth celebrating, longest first.
var milestones = []struct {
	days int
	msg  string
}{
	{365, "A full year. Unstoppable."},
	{100, "Triple digits!"},
	{30, "A month strong."},
	{21, "Three weeks. This is becoming a habit."},
	{7, "One week down."},
	{3, "Three in a row. Momentum!"},
}

// All returns all tips in the pool.
func All() []string {
	return all
}

// Daily returns a deterministic tip for the given day.
// The same tip is returned all day; it changes each day.
func Daily(t time.Time) string {
	return all[t.YearDay()%len(all)]
}

// Milestone returns a celebration message when streak lands exactly on a
// milestone length.
func Milestone(streak int) (string, bool) {
	for _, m := range milestones {
		if streak == m.days {
			return m.msg, true
		}
	}
	return "", false
}
