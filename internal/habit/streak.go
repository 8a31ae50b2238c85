package habit

import (
	"sort"
	"time"
)

// MaxStreakDays bounds the backward walk of ComputeStreak. Streaks longer than
// this are reported as exactly MaxStreakDays.
const MaxStreakDays = 365

// StreakInfo is the result of a bounded streak walk.
type StreakInfo struct {
	Days int
	// Capped is set when the walk reached its limit without hitting a gap,
	// so the real streak may be longer than Days.
	Capped bool
}

// ComputeStreak returns the number of consecutive completed days ending at
// (and including) ref. If ref itself is not completed the streak is 0.
func ComputeStreak(c Completions, ref time.Time) int {
	return Streak(c, ref, MaxStreakDays).Days
}

// Streak walks backward from ref for at most limit days. A limit <= 0 falls
// back to MaxStreakDays.
func Streak(c Completions, ref time.Time, limit int) StreakInfo {
	if limit <= 0 {
		limit = MaxStreakDays
	}
	day := calendarDay(ref)
	var info StreakInfo
	for i := 0; i < limit; i++ {
		if !c.Done(DateKey(day)) {
			return info
		}
		info.Days++
		day = day.AddDate(0, 0, -1)
	}
	info.Capped = true
	return info
}

// LongestStreak returns the longest run of consecutive completed days within
// the MaxStreakDays-day window ending at ref. Keys that don't parse are ignored.
func LongestStreak(c Completions, ref time.Time) int {
	end := calendarDay(ref)
	start := end.AddDate(0, 0, -(MaxStreakDays - 1))
	days := make([]time.Time, 0, len(c))
	for key, done := range c {
		if !done {
			continue
		}
		t, err := parseCalendarKey(key)
		if err != nil || t.Before(start) || t.After(end) {
			continue
		}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest
}
