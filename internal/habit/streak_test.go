package habit

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// santiago skips midnight on 2024-09-08 when DST starts.
func santiago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

// runEnding marks n consecutive days ending at end as completed.
func runEnding(end string, n int) Completions {
	c := Completions{}
	d := mustDate(end)
	for i := 0; i < n; i++ {
		c[DateKey(d)] = true
		d = d.AddDate(0, 0, -1)
	}
	return c
}

func TestComputeStreak_Empty(t *testing.T) {
	if got := ComputeStreak(Completions{}, mustDate("2024-06-02")); got != 0 {
		t.Fatalf("streak = %d, want 0 for empty completions", got)
	}
	if got := ComputeStreak(nil, mustDate("2024-06-02")); got != 0 {
		t.Fatalf("streak = %d, want 0 for nil completions", got)
	}
}

func TestComputeStreak_TodayOnly(t *testing.T) {
	c := Completions{"2024-06-02": true}
	if got := ComputeStreak(c, mustDate("2024-06-02")); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestComputeStreak_ReferenceNotDone(t *testing.T) {
	// Yesterday was done but today wasn't: no grace period.
	c := Completions{"2024-06-01": true}
	if got := ComputeStreak(c, mustDate("2024-06-02")); got != 0 {
		t.Errorf("streak = %d, want 0 when reference day is absent", got)
	}

	c["2024-06-02"] = false
	if got := ComputeStreak(c, mustDate("2024-06-02")); got != 0 {
		t.Errorf("streak = %d, want 0 when reference day is explicitly false", got)
	}
}

func TestComputeStreak_ExplicitFalseStops(t *testing.T) {
	c := Completions{"2024-06-01": true, "2024-06-02": true, "2024-06-03": false}
	if got := ComputeStreak(c, mustDate("2024-06-02")); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestComputeStreak_StopsAtGap(t *testing.T) {
	c := Completions{
		"2024-06-10": true,
		"2024-06-09": true,
		"2024-06-08": true,
		// 06-07 missing
		"2024-06-06": true,
		"2024-06-05": true,
	}
	if got := ComputeStreak(c, mustDate("2024-06-10")); got != 3 {
		t.Errorf("streak = %d, want 3 (stops at the gap)", got)
	}
}

func TestComputeStreak_IgnoresTimeOfDay(t *testing.T) {
	c := Completions{"2024-06-01": true, "2024-06-02": true}
	ref := time.Date(2024, 6, 2, 23, 59, 0, 0, time.UTC)
	if got := ComputeStreak(c, ref); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestComputeStreak_ExactRuns(t *testing.T) {
	for _, k := range []int{1, 2, 7, 31, 100, 364, 365} {
		c := runEnding("2024-06-02", k)
		if got := ComputeStreak(c, mustDate("2024-06-02")); got != k {
			t.Errorf("run of %d: streak = %d", k, got)
		}
	}
}

func TestComputeStreak_MonotonicAsRunGrows(t *testing.T) {
	prev := 0
	for k := 0; k <= 40; k++ {
		got := ComputeStreak(runEnding("2024-03-05", k), mustDate("2024-03-05"))
		if got < prev {
			t.Fatalf("streak decreased from %d to %d at run length %d", prev, got, k)
		}
		prev = got
	}
}

func TestComputeStreak_CappedAt365(t *testing.T) {
	c := runEnding("2024-06-02", 400)
	if got := ComputeStreak(c, mustDate("2024-06-02")); got != MaxStreakDays {
		t.Errorf("streak = %d, want %d", got, MaxStreakDays)
	}
}

func TestStreak_ReportsCapped(t *testing.T) {
	c := runEnding("2024-06-02", 10)

	info := Streak(c, mustDate("2024-06-02"), 5)
	if info.Days != 5 || !info.Capped {
		t.Errorf("Streak limit 5 = %+v, want {5 true}", info)
	}

	info = Streak(c, mustDate("2024-06-02"), 30)
	if info.Days != 10 || info.Capped {
		t.Errorf("Streak limit 30 = %+v, want {10 false}", info)
	}

	info = Streak(c, mustDate("2024-06-02"), 0)
	if info.Days != 10 {
		t.Errorf("Streak limit 0 = %+v, want default limit", info)
	}
}

func TestComputeStreak_CrossesMonthAndLeapDay(t *testing.T) {
	c := Completions{"2024-03-01": true, "2024-02-29": true, "2024-02-28": true}
	if got := ComputeStreak(c, mustDate("2024-03-01")); got != 3 {
		t.Errorf("streak = %d, want 3 across leap day", got)
	}
}

func TestLongestStreak(t *testing.T) {
	c := Completions{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": true,
		"2024-01-04": false,
		"2024-01-05": true,
		"2024-02-10": true,
		"2024-02-11": true,
	}
	ref := mustDate("2024-03-01")
	if got := LongestStreak(c, ref); got != 3 {
		t.Errorf("longest = %d, want 3", got)
	}
	if got := LongestStreak(Completions{}, ref); got != 0 {
		t.Errorf("longest of empty = %d, want 0", got)
	}
}

func TestLongestStreak_OneYearWindow(t *testing.T) {
	c := Completions{
		// Outside the window ending 2025-03-01.
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": true,
		// Inside.
		"2025-02-27": true,
		"2025-02-28": true,
		// After ref.
		"2025-03-02": true,
		"2025-03-03": true,
		"2025-03-04": true,
	}
	if got := LongestStreak(c, mustDate("2025-03-01")); got != 2 {
		t.Errorf("longest = %d, want 2 (only days in the trailing year count)", got)
	}
}

func TestComputeStreak_MidnightDSTGap(t *testing.T) {
	loc := santiago(t)
	c := Completions{"2024-09-10": true, "2024-09-09": true, "2024-09-07": true, "2024-09-06": true}
	ref := time.Date(2024, 9, 10, 20, 0, 0, 0, loc)
	if got := ComputeStreak(c, ref); got != 2 {
		t.Errorf("streak = %d, want 2 (2024-09-08 missing)", got)
	}

	c["2024-09-08"] = true
	if got := ComputeStreak(c, ref); got != 5 {
		t.Errorf("streak = %d, want 5", got)
	}
	if got := LongestStreak(c, ref); got != 5 {
		t.Errorf("longest = %d, want 5", got)
	}
}

func TestComputeStreak_OnMidnightDSTDay(t *testing.T) {
	loc := santiago(t)
	ref := time.Date(2024, 9, 8, 10, 0, 0, 0, loc)
	c := Completions{"2024-09-08": true, "2024-09-07": true}
	if got := ComputeStreak(c, ref); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestParseDateKey_SkippedMidnight(t *testing.T) {
	loc := santiago(t)
	got, err := ParseDateKey("2024-09-08", loc)
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if DateKey(got) != "2024-09-08" {
		t.Errorf("ParseDateKey = %v, want a time on 2024-09-08", got)
	}
	if DateKey(StartOfDay(time.Date(2024, 9, 8, 15, 0, 0, 0, loc))) != "2024-09-08" {
		t.Error("StartOfDay left the calendar day")
	}
}
