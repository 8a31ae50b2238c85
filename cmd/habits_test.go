package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rnwolfe/habitkit/internal/config"
	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/store"
	"github.com/rnwolfe/habitkit/internal/tui"
)

var testNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// habitTestEnv isolates XDG dirs, pins the clock and id generator, and
// resets command flags.
func habitTestEnv(t *testing.T) {
	t.Helper()
	configTestEnv(t)
	t.Setenv(passphraseEnv, "")

	oldNow, oldID := nowFunc, newID
	nowFunc = func() time.Time { return testNow }
	n := 0
	newID = func() string {
		n++
		return fmt.Sprintf("habit-%04d-0000", n)
	}

	resetFlags := func() {
		addDesc, addIcon, addColor, addPreset = "", "", "", ""
		doneDate = dateValue{}
		showWeeks = 0
		exportFormat = formatValue{}
		exportEncrypt = false
	}
	resetFlags()
	t.Cleanup(func() {
		nowFunc, newID = oldNow, oldID
		resetFlags()
	})
}

func storedHabits(t *testing.T) []habit.Habit {
	t.Helper()
	db, err := store.Open()
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer db.Close()
	habits, err := store.LoadHabits(db, config.DefaultStorageKey)
	if err != nil {
		t.Fatalf("LoadHabits: %v", err)
	}
	return habits
}

func mustAdd(t *testing.T, name string) {
	t.Helper()
	captureStdout(t, func() {
		if err := runAdd(nil, []string{name}); err != nil {
			t.Fatalf("runAdd(%q): %v", name, err)
		}
	})
}

func mustDone(t *testing.T, query string) string {
	t.Helper()
	return captureStdout(t, func() {
		if err := runDone(nil, []string{query}); err != nil {
			t.Fatalf("runDone(%q): %v", query, err)
		}
	})
}

func TestRunAdd_WithFlags(t *testing.T) {
	habitTestEnv(t)
	addDesc, addIcon, addColor = "ten pages", "📖", "#8b5cf6"

	out := captureStdout(t, func() {
		if err := runAdd(nil, []string{"Read", "daily"}); err != nil {
			t.Fatalf("runAdd: %v", err)
		}
	})
	if !strings.Contains(out, "Read daily") {
		t.Errorf("output missing name:\n%s", out)
	}

	habits := storedHabits(t)
	if len(habits) != 1 {
		t.Fatalf("stored %d habits, want 1", len(habits))
	}
	h := habits[0]
	if h.ID != "habit-0001-0000" || h.Name != "Read daily" || h.Icon != "📖" || h.Color != "#8b5cf6" || h.Description != "ten pages" {
		t.Errorf("stored habit = %+v", h)
	}
	if !h.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, want %v", h.CreatedAt, testNow)
	}
}

func TestRunAdd_Preset(t *testing.T) {
	habitTestEnv(t)
	addPreset = "2"

	captureStdout(t, func() {
		if err := runAdd(nil, nil); err != nil {
			t.Fatalf("runAdd: %v", err)
		}
	})
	h := storedHabits(t)[0]
	if h.Name != "Learn Norwegian" || h.Icon != "📚" {
		t.Errorf("preset habit = %+v", h)
	}
}

func TestRunAdd_UnknownPreset(t *testing.T) {
	habitTestEnv(t)
	addPreset = "juggle"

	err := runAdd(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("err = %v, want unknown preset", err)
	}
}

func TestRunAdd_BlankNameRejected(t *testing.T) {
	habitTestEnv(t)

	err := runAdd(nil, []string{"   "})
	if err == nil {
		t.Fatal("expected error for blank name")
	}
	if len(storedHabits(t)) != 0 {
		t.Fatal("blank name must not store a habit")
	}
}

func TestRunAdd_ConfigDefaults(t *testing.T) {
	habitTestEnv(t)
	cfg, _ := config.Load()
	cfg.Habits.DefaultColor = "#f97316"
	cfg.Habits.DefaultIcon = "🏃"
	if err := config.Save(cfg); err != nil {
		t.Fatal(err)
	}

	mustAdd(t, "Run")
	h := storedHabits(t)[0]
	if h.Color != "#f97316" || h.Icon != "🏃" {
		t.Errorf("habit = %+v, want config defaults", h)
	}
}

func TestRunDone_ToggleTwice(t *testing.T) {
	habitTestEnv(t)
	mustAdd(t, "Read")

	out := mustDone(t, "read")
	if !strings.Contains(out, "done for today") {
		t.Errorf("output = %q", out)
	}
	if !storedHabits(t)[0].DoneOn(testNow) {
		t.Fatal("habit should be done today")
	}

	out = mustDone(t, "read")
	if !strings.Contains(out, "Unchecked") {
		t.Errorf("output = %q", out)
	}
	h := storedHabits(t)[0]
	if v, ok := h.Completions["2024-01-10"]; !ok || v {
		t.Fatalf("second toggle should leave an explicit false, got %v", h.Completions)
	}
}

func TestRunDone_DateFlag(t *testing.T) {
	habitTestEnv(t)
	nowFunc = func() time.Time { return testNow.AddDate(0, 0, -5) }
	mustAdd(t, "Read")
	nowFunc = func() time.Time { return testNow }

	if err := doneDate.Set("yesterday"); err != nil {
		t.Fatal(err)
	}
	mustDone(t, "Read")
	if !storedHabits(t)[0].Completions.Done("2024-01-09") {
		t.Fatal("--date yesterday should complete 2024-01-09")
	}
}

func TestRunDone_RejectsFutureAndPreCreation(t *testing.T) {
	habitTestEnv(t)
	mustAdd(t, "Read")

	doneDate.Set("2024-01-11")
	if err := runDone(nil, []string{"Read"}); err == nil || !strings.Contains(err.Error(), "hasn't happened") {
		t.Errorf("future date err = %v", err)
	}

	doneDate.Set("2024-01-09")
	if err := runDone(nil, []string{"Read"}); err == nil || !strings.Contains(err.Error(), "was created on") {
		t.Errorf("pre-creation err = %v", err)
	}
	if storedHabits(t)[0].Completions.Count() != 0 {
		t.Fatal("rejected dates must not be stored")
	}
}

func TestRunDone_UnknownHabit(t *testing.T) {
	habitTestEnv(t)
	mustAdd(t, "Read")

	if err := runDone(nil, []string{"zzz"}); err == nil {
		t.Fatal("expected error for unknown habit")
	}
}

func TestRunShow(t *testing.T) {
	habitTestEnv(t)
	nowFunc = func() time.Time { return testNow.AddDate(0, 0, -9) }
	mustAdd(t, "Read")
	nowFunc = func() time.Time { return testNow }
	mustDone(t, "Read")
	showWeeks = 4

	out := captureStdout(t, func() {
		if err := runShow(nil, []string{"Read"}); err != nil {
			t.Fatalf("runShow: %v", err)
		}
	})
	for _, want := range []string{"Read", "Streak", "1 day", "Longest", "Less", "More", "Jan"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestRunList(t *testing.T) {
	habitTestEnv(t)
	mustAdd(t, "Read")
	mustAdd(t, "Run")

	out := captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Fatalf("runList: %v", err)
		}
	})
	if !strings.Contains(out, "habit-00") || !strings.Contains(out, "Run") {
		t.Errorf("list output:\n%s", out)
	}
}

func TestRunDashboard(t *testing.T) {
	habitTestEnv(t)

	out := captureStdout(t, func() {
		if err := runDashboard(nil, nil); err != nil {
			t.Fatalf("runDashboard: %v", err)
		}
	})
	if !strings.Contains(out, "No habits yet") {
		t.Errorf("empty dashboard should onboard:\n%s", out)
	}

	mustAdd(t, "Read")
	mustAdd(t, "Run")
	mustDone(t, "Run")

	out = captureStdout(t, func() {
		if err := runDashboard(nil, nil); err != nil {
			t.Fatalf("runDashboard: %v", err)
		}
	})
	if !strings.Contains(out, "1/2 done today") {
		t.Errorf("dashboard summary missing:\n%s", out)
	}
	if !strings.Contains(out, "last: Today") {
		t.Errorf("dashboard should show last completion:\n%s", out)
	}
}

func TestMalformedStoredStateLoadsEmpty(t *testing.T) {
	habitTestEnv(t)

	db, err := store.Open()
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Save(config.DefaultStorageKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	db.Close()

	out := captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Fatalf("runList: %v", err)
		}
	})
	if !strings.Contains(out, "No habits yet") {
		t.Errorf("malformed state should load as empty:\n%s", out)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	habitTestEnv(t)
	mustAdd(t, "Read")
	mustDone(t, "Read")

	path := filepath.Join(t.TempDir(), "habits.yaml")
	captureStdout(t, func() {
		if err := runExport(nil, []string{path}); err != nil {
			t.Fatalf("runExport: %v", err)
		}
	})
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "name: Read") {
		t.Fatalf(".yaml export should be YAML:\n%s", data)
	}

	// Fresh machine.
	configTestEnv(t)
	out := captureStdout(t, func() {
		if err := runImport(nil, []string{path}); err != nil {
			t.Fatalf("runImport: %v", err)
		}
	})
	if !strings.Contains(out, "Imported 1") {
		t.Errorf("import output = %q", out)
	}
	habits := storedHabits(t)
	if len(habits) != 1 || !habits[0].DoneOn(testNow) {
		t.Fatalf("imported habits = %+v", habits)
	}

	// Second import adds nothing.
	out = captureStdout(t, func() {
		if err := runImport(nil, []string{path}); err != nil {
			t.Fatalf("runImport: %v", err)
		}
	})
	if !strings.Contains(out, "Skipped 1") || len(storedHabits(t)) != 1 {
		t.Errorf("re-import should skip existing habit, got %q", out)
	}
}

func TestExportImport_Encrypted(t *testing.T) {
	habitTestEnv(t)
	t.Setenv(passphraseEnv, "correct horse")
	mustAdd(t, "Read")

	path := filepath.Join(t.TempDir(), "habits.age")
	exportEncrypt = true
	captureStdout(t, func() {
		if err := runExport(nil, []string{path}); err != nil {
			t.Fatalf("runExport: %v", err)
		}
	})

	configTestEnv(t)
	t.Setenv(passphraseEnv, "wrong")
	err := runImport(nil, []string{path})
	if err == nil || !strings.Contains(err.Error(), "wrong passphrase") {
		t.Fatalf("err = %v, want wrong passphrase", err)
	}

	t.Setenv(passphraseEnv, "correct horse")
	captureStdout(t, func() {
		if err := runImport(nil, []string{path}); err != nil {
			t.Fatalf("runImport: %v", err)
		}
	})
	if got := storedHabits(t); len(got) != 1 || got[0].Name != "Read" {
		t.Fatalf("imported = %+v", got)
	}
}

func TestApplyBoardActions(t *testing.T) {
	habitTestEnv(t)
	mustAdd(t, "Read")

	sess, err := openSession()
	if err != nil {
		t.Fatal(err)
	}
	captureStdout(t, func() {
		err = applyBoardActions(sess, []tui.BoardAction{
			{Type: "toggle", ID: "habit-0001-0000", Key: "2024-01-10"},
		})
	})
	sess.Close()
	if err != nil {
		t.Fatalf("applyBoardActions: %v", err)
	}
	if !storedHabits(t)[0].DoneOn(testNow) {
		t.Fatal("board toggle should persist")
	}
}

func TestDateValue(t *testing.T) {
	habitTestEnv(t)

	tests := []struct {
		in   string
		want string
	}{
		{"today", "2024-01-10"},
		{"Yesterday", "2024-01-09"},
		{"2023-12-31", "2023-12-31"},
	}
	for _, tt := range tests {
		var d dateValue
		if err := d.Set(tt.in); err != nil {
			t.Errorf("Set(%q): %v", tt.in, err)
			continue
		}
		if d.String() != tt.want {
			t.Errorf("Set(%q) = %s, want %s", tt.in, d.String(), tt.want)
		}
	}

	var d dateValue
	for _, bad := range []string{"2024-02-30", "1/2/2024", "tomorrowish"} {
		if err := d.Set(bad); err == nil {
			t.Errorf("Set(%q) should fail", bad)
		}
	}
	if !d.Or(testNow).Equal(testNow) {
		t.Error("unset dateValue should fall back")
	}
}

func TestFormatValue(t *testing.T) {
	var f formatValue
	if err := f.Set("yml"); err != nil || f.String() != "yaml" {
		t.Errorf("Set(yml) = %q, %v", f.String(), err)
	}
	if err := f.Set("xml"); err == nil {
		t.Error("Set(xml) should fail")
	}
	if formatForPath("x.YAML") != "yaml" || formatForPath("x.json") != "json" || formatForPath("") != "json" {
		t.Error("formatForPath picked the wrong format")
	}
}
