package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rnwolfe/habitkit/internal/config"
	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/logging"
	"github.com/rnwolfe/habitkit/internal/tips"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

// closeLogger flushes the logger installed by setupRuntime.
var closeLogger = func() {}

var rootCmd = &cobra.Command{
	Use:               "habitkit",
	Short:             "Track daily habits and keep your streaks alive",
	Long:              `habitkit: check off your habits each day and watch the streaks grow.`,
	RunE:              runDashboard,
	PersistentPreRunE: setupRuntime,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(tipsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupRuntime configures color output and logging before any command runs.
// A logger that can't be opened is reported but never blocks the command.
func setupRuntime(cmd *cobra.Command, _ []string) error {
	ui.ConfigureColor()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	restore, err := logging.Install(logging.Options{
		Level:   cfg.Log.Level,
		File:    config.GetPaths().LogFile,
		Verbose: verbose,
	})
	if err != nil {
		ui.Warn(fmt.Sprintf("logging disabled: %v", err))
		return nil
	}
	closeLogger = restore
	zap.L().Debug("command started", zap.String("command", cmd.CommandPath()))
	return nil
}

// runDashboard shows the at-a-glance status when you just type `habitkit`.
func runDashboard(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	now := nowFunc()
	fmt.Println(ui.Greet(sess.cfg.User.Name))
	fmt.Println()

	habits := sess.store.Habits()
	if len(habits) == 0 {
		fmt.Println("  No habits yet. Let's start one!")
		fmt.Println()
		fmt.Printf("  Run %s or browse %s.\n",
			ui.Accent.Render("habitkit add"), ui.Accent.Render("habitkit presets"))
		fmt.Println()
		return nil
	}

	ui.Kv(ui.IconCalendar+" Today", now.Format("Monday, January 2"))
	fmt.Println()

	done := 0
	for _, h := range habits {
		if h.DoneOn(now) {
			done++
		}
		fmt.Println(dashboardLine(h, now, sess.cfg.StreakCap()))
	}
	fmt.Println()
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d/%d done today", done, len(habits))))

	ui.Tip(tips.Daily(now))
	fmt.Println()
	return nil
}

func dashboardLine(h habit.Habit, now time.Time, streakCap int) string {
	marker := ui.Muted.Render("○")
	if h.DoneOn(now) {
		marker = ui.Success.Render("●")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s %s", marker, h.Icon, ui.HabitStyle(h.Color).Render(h.Name))

	if s := habit.Streak(h.Completions, now, streakCap); s.Days > 0 {
		b.WriteString(ui.Warning.Render(fmt.Sprintf("  %s %s", ui.IconFire, streakLabel(s))))
	}
	if last := habit.LastCompletedLabel(h.Completions, now); last != "" {
		b.WriteString(ui.Muted.Render("  · last: " + last))
	}
	return b.String()
}

// streakLabel renders a streak count, marking capped streaks with a plus.
func streakLabel(s habit.StreakInfo) string {
	if s.Capped {
		return fmt.Sprintf("%d+", s.Days)
	}
	return fmt.Sprintf("%d", s.Days)
}

// streakDays renders a streak as "N days", or "N+ days" when capped.
func streakDays(s habit.StreakInfo) string {
	if s.Capped {
		return fmt.Sprintf("%d+ days", s.Days)
	}
	return ui.Days(s.Days)
}
