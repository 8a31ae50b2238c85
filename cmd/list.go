package cmd

import (
	"fmt"

	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits with their ids and streaks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func runList(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	habits := sess.store.Habits()
	if len(habits) == 0 {
		ui.Puts(ui.Muted.Render("  No habits yet. Run `habitkit add` to start one."))
		return nil
	}

	now := nowFunc()
	for _, h := range habits {
		s := habit.Streak(h.Completions, now, sess.cfg.StreakCap())
		mark := " "
		if h.DoneOn(now) {
			mark = ui.Success.Render("✓")
		}
		fmt.Printf("  %s  %s %s %s  %s\n",
			ui.Muted.Render(habit.ShortID(h.ID)),
			mark,
			h.Icon,
			ui.HabitStyle(h.Color).Render(h.Name),
			ui.Warning.Render(ui.IconFire+" "+streakLabel(s)))
	}
	return nil
}
