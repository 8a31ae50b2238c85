package cmd

import (
	"fmt"

	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/tips"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var doneDate dateValue

var doneCmd = &cobra.Command{
	Use:     "done <habit>",
	Aliases: []string{"toggle"},
	Short:   "Check off a habit for today (run again to undo)",
	Long: `Toggle a habit's completion for today, or for --date.

<habit> is an id, an id prefix, or a name (matched fuzzily).`,
	Example: `  habitkit done read
  habitkit done read --date yesterday
  habitkit toggle 6f1c --date 2024-05-01`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().Var(&doneDate, "date", "Day to toggle (YYYY-MM-DD, today, yesterday)")
}

func runDone(_ *cobra.Command, args []string) error {
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
	today := habit.StartOfDay(now)
	day := habit.StartOfDay(doneDate.Or(now))
	if day.After(today) {
		return fmt.Errorf("can't check off %s, it hasn't happened yet", habit.DateKey(day))
	}
	if created := habit.StartOfDay(h.CreatedAt.In(now.Location())); day.Before(created) {
		return fmt.Errorf("can't check off %s, %q was created on %s",
			habit.DateKey(day), h.Name, habit.DateKey(created))
	}

	updated, err := sess.store.Toggle(h.ID, habit.DateKey(day))
	if err != nil {
		return err
	}
	zap.L().Info("habit toggled",
		zap.String("id", updated.ID),
		zap.String("day", habit.DateKey(day)),
		zap.Bool("done", updated.DoneOn(day)))

	when := "today"
	if !day.Equal(today) {
		when = day.Format("Mon Jan 2")
	}

	if !updated.DoneOn(day) {
		ui.Puts(ui.Muted.Render(fmt.Sprintf("  Unchecked %s %s for %s.", updated.Icon, updated.Name, when)))
		return nil
	}

	ui.Ok(fmt.Sprintf("%s %s done for %s", updated.Icon, ui.HabitStyle(updated.Color).Render(updated.Name), when))
	s := habit.Streak(updated.Completions, now, sess.cfg.StreakCap())
	if s.Days > 0 {
		ui.Kv(ui.IconFire+" Streak", streakDays(s))
	}
	if msg, ok := tips.Milestone(s.Days); ok && !s.Capped {
		fmt.Println()
		ui.Puts("  " + ui.Accent.Render(msg))
	}
	return nil
}
