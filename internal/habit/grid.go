package habit

import "time"

// Day is one cell of the activity grid.
type Day struct {
	Date      time.Time
	Key       string
	Completed bool
	// Inactive marks leading days of the first week that fall before the
	// habit's creation day. They are never reported as completed.
	Inactive bool
}

// Week is a Sunday-first column of up to seven days.
type Week []Day

var monthAbbrev = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// BuildGrid buckets every day from the Sunday on or before the habit's
// creation day through today into Sunday-first weeks. Every week holds seven
// days except possibly the last. A creation day after today yields no weeks.
//
// The creation time is read in today's location so both ends share a calendar.
func BuildGrid(h Habit, today time.Time) []Week {
	loc := today.Location()
	end := calendarDay(today)
	created := calendarDay(h.CreatedAt.In(loc))
	if created.After(end) {
		return nil
	}

	start := created.AddDate(0, 0, -int(created.Weekday()))
	total := daysBetween(start, end) + 1

	weeks := make([]Week, 0, total/7+1)
	week := make(Week, 0, 7)
	for i := 0; i < total; i++ {
		d := start.AddDate(0, 0, i)
		key := DateKey(d)
		inactive := d.Before(created)
		week = append(week, Day{
			Date:      localMidnight(d.Year(), d.Month(), d.Day(), loc),
			Key:       key,
			Completed: !inactive && h.Completions.Done(key),
			Inactive:  inactive,
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make(Week, 0, 7)
		}
	}
	if len(week) > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthLabels returns one label per week: the month of the week's first day
// on every fourth week, empty otherwise.
func MonthLabels(weeks []Week) []string {
	labels := make([]string, len(weeks))
	for i, w := range weeks {
		if i%4 == 0 && len(w) > 0 {
			labels[i] = monthAbbrev[w[0].Date.Month()-1]
		}
	}
	return labels
}

// TrimWeeks keeps at most the last n weeks. n <= 0 returns weeks unchanged.
func TrimWeeks(weeks []Week, n int) []Week {
	if n <= 0 || len(weeks) <= n {
		return weeks
	}
	return weeks[len(weeks)-n:]
}
