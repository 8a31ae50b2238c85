package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List suggested habits and colors",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	ui.Header("Presets")
	fmt.Println()
	for i, p := range habit.Presets {
		fmt.Printf("  %s %s %s\n",
			ui.Muted.Render(fmt.Sprintf("%2d.", i+1)),
			p.Icon,
			ui.HabitStyle(p.Color).Render(p.Name))
		fmt.Printf("      %s\n", ui.Muted.Render(p.Description))
	}

	fmt.Println()
	var swatches string
	for _, c := range habit.Palette {
		swatches += lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("■") + " "
	}
	ui.Kv("Colors", swatches)

	ui.Tip("`habitkit add --preset 1` to start from a preset.")
	fmt.Println()
	return nil
}
