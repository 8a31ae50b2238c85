package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	addDesc   string
	addIcon   string
	addColor  string
	addPreset string
)

var errAddCanceled = errors.New("add canceled")

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Start tracking a new habit",
	Long: `Start tracking a new habit.

Run without a name in a terminal to pick a preset or fill in a form.`,
	Example: `  habitkit add "Read 10 pages" --icon 📖 --color "#8b5cf6"
  habitkit add --preset 2`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "Short description")
	addCmd.Flags().StringVarP(&addIcon, "icon", "i", "", "Emoji icon")
	addCmd.Flags().StringVarP(&addColor, "color", "c", "", "Hex color, e.g. #10b981")
	addCmd.Flags().StringVarP(&addPreset, "preset", "p", "", "Start from a preset (number or name, see `habitkit presets`)")
}

func runAdd(_ *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var d habit.Draft
	if addPreset != "" {
		p, ok := habit.FindPreset(addPreset)
		if !ok {
			return fmt.Errorf("unknown preset %q (run %s to see them)", addPreset, ui.Accent.Render("habitkit presets"))
		}
		d = p
	}
	if len(args) > 0 {
		d.Name = strings.Join(args, " ")
	}
	if addDesc != "" {
		d.Description = addDesc
	}
	if addIcon != "" {
		d.Icon = addIcon
	}
	if addColor != "" {
		d.Color = addColor
	}
	if d.Icon == "" {
		d.Icon = sess.cfg.Habits.DefaultIcon
	}
	if d.Color == "" {
		d.Color = sess.cfg.Habits.DefaultColor
	}

	if d.Name == "" && addPreset == "" && ui.Interactive() {
		d, err = promptDraft(d)
		if errors.Is(err, errAddCanceled) {
			ui.Puts(ui.Muted.Render("  Nothing added."))
			return nil
		}
		if err != nil {
			return err
		}
	}

	h, err := sess.store.Add(d)
	if err != nil {
		return err
	}
	zap.L().Info("habit added", zap.String("id", h.ID), zap.String("name", h.Name))

	ui.Ok(fmt.Sprintf("Tracking %s %s", h.Icon, ui.HabitStyle(h.Color).Render(h.Name)))
	ui.Kv("  id", habit.ShortID(h.ID))
	ui.Tip(fmt.Sprintf("`habitkit done %q` to check it off today.", h.Name))
	return nil
}

// promptDraft asks for a preset or a custom habit using huh forms. seed
// carries config defaults for icon and color.
func promptDraft(seed habit.Draft) (habit.Draft, error) {
	choice := "custom"
	presetOpts := []huh.Option[string]{huh.NewOption("✏️  Custom habit", "custom")}
	for i, p := range habit.Presets {
		presetOpts = append(presetOpts, huh.NewOption(p.Icon+"  "+p.Name, strconv.Itoa(i+1)))
	}

	pick := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Start from").
			Options(presetOpts...).
			Value(&choice),
	))
	if err := runForm(pick); err != nil {
		return habit.Draft{}, err
	}

	d := seed
	if choice != "custom" {
		p, _ := habit.FindPreset(choice)
		d = p
	}

	colorOpts := make([]huh.Option[string], 0, len(habit.Palette))
	for _, c := range habit.Palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("■■")
		colorOpts = append(colorOpts, huh.NewOption(swatch+" "+c, c))
	}

	details := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&d.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name can't be empty")
				}
				return nil
			}),
		huh.NewInput().
			Title("Description").
			Placeholder("optional").
			Value(&d.Description),
		huh.NewInput().
			Title("Icon").
			Value(&d.Icon),
		huh.NewSelect[string]().
			Title("Color").
			Options(colorOpts...).
			Value(&d.Color),
	))
	if err := runForm(details); err != nil {
		return habit.Draft{}, err
	}
	return d, nil
}

func runForm(f *huh.Form) error {
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errAddCanceled
		}
		return fmt.Errorf("add form: %w", err)
	}
	return nil
}
