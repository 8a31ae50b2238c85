package cmd

import (
	"fmt"

	"github.com/rnwolfe/habitkit/internal/tips"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
)

var tipsShowAll bool

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Discover what habitkit can do",
	Long:  `Show the tip of the day, or every tip with --all.`,
	Args:  cobra.NoArgs,
	RunE:  runTips,
}

func init() {
	tipsCmd.Flags().BoolVarP(&tipsShowAll, "all", "a", false, "List all tips")
}

func runTips(_ *cobra.Command, _ []string) error {
	if !tipsShowAll {
		ui.Tip(tips.Daily(nowFunc()))
		ui.Puts(ui.Muted.Render("  Run `habitkit tips --all` to see them all."))
		fmt.Println()
		return nil
	}

	ui.Header("habitkit tips")
	fmt.Println()
	for i, tip := range tips.All() {
		ui.Putsf("  %s %s", ui.Accent.Render(fmt.Sprintf("%2d.", i+1)), ui.Muted.Render(tip))
	}
	fmt.Println()
	return nil
}
