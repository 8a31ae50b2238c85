package cmd

import (
	"fmt"

	"github.com/rnwolfe/habitkit/internal/tui"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Check off habits from an interactive list",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	if !ui.Interactive() {
		return fmt.Errorf("board needs an interactive terminal (try %s)", ui.Accent.Render("habitkit list"))
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	actions, err := tui.RunBoard(sess.store.Habits(), nowFunc(), sess.cfg.StreakCap())
	if err != nil {
		return err
	}
	return applyBoardActions(sess, actions)
}

func applyBoardActions(sess *session, actions []tui.BoardAction) error {
	for _, a := range actions {
		switch a.Type {
		case "toggle":
			if _, err := sess.store.Toggle(a.ID, a.Key); err != nil {
				return fmt.Errorf("applying board toggle: %w", err)
			}
		default:
			zap.L().Warn("unknown board action", zap.String("type", a.Type))
		}
	}
	if len(actions) > 0 {
		ui.Ok(fmt.Sprintf("Applied %d change(s)", len(actions)))
	}
	return nil
}
