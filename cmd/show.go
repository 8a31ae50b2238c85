package cmd

import (
	"fmt"

	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
)

var showWeeks int

var showCmd = &cobra.Command{
	Use:   "show <habit>",
	Short: "Show a habit's activity grid and streaks",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVarP(&showWeeks, "weeks", "w", 0, "Weeks to show (default: habits.grid_weeks, or fit the terminal)")
}

func runShow(_ *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	h, err := sess.resolve(args[0])
	if err != nil {
		return err
	}

	now := nowFunc()
	ui.Header(h.Icon + " " + h.Name)
	if h.Description != "" {
		ui.Puts("  " + ui.Subtitle.Render(h.Description))
	}
	fmt.Println()

	current := habit.Streak(h.Completions, now, sess.cfg.StreakCap())
	ui.Kv(ui.IconFire+" Streak", streakDays(current))
	ui.Kv("   Longest", ui.Days(habit.LongestStreak(h.Completions, now)))
	ui.Kv("   Total", ui.Days(h.Completions.Count()))
	if last := habit.LastCompletedLabel(h.Completions, now); last != "" {
		ui.Kv("   Last", last)
	}
	ui.Kv(ui.IconCalendar+" Since", h.CreatedAt.In(now.Location()).Format("Jan 2, 2006"))
	ui.Kv("   id", h.ID)
	fmt.Println()

	weeks := habit.TrimWeeks(habit.BuildGrid(h, now), gridWeeks(sess.cfg.Habits.GridWeeks))
	ui.Puts(ui.RenderGrid(weeks, h.Color))
	fmt.Println()
	return nil
}

// gridWeeks picks the number of week columns: --weeks, then config, then
// whatever fits the terminal.
func gridWeeks(configured int) int {
	switch {
	case showWeeks > 0:
		return showWeeks
	case configured > 0:
		return configured
	}
	return ui.GridWeeksFor(ui.TerminalWidth(80) - 2)
}
