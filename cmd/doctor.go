package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rnwolfe/habitkit/internal/config"
	"github.com/rnwolfe/habitkit/internal/store"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check your habitkit setup for problems",
	Long:  `Run a suite of health checks and report what's working (and what isn't).`,
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

// checkResult holds the outcome of a single health check.
type checkResult struct {
	name    string
	ok      bool
	detail  string
	fixHint string
}

func runDoctor(_ *cobra.Command, _ []string) error {
	cfg, cfgErr := config.Load()

	results := []checkResult{checkConfig(cfgErr)}
	if cfgErr == nil {
		results = append(results, checkStore(), checkHabits(cfg.StorageKey()))
	}
	results = append(results, checkLog())

	fmt.Println()

	allPassed := true
	for _, r := range results {
		printCheck(r)
		if !r.ok {
			allPassed = false
		}
	}

	fmt.Println()

	if !allPassed {
		return fmt.Errorf("one or more checks failed, see suggestions above")
	}
	return nil
}

func printCheck(r checkResult) {
	label := fmt.Sprintf("%-10s", r.name)
	if r.ok {
		icon := ui.Success.Render(ui.IconOk)
		fmt.Printf("  %s %s %s\n", icon, ui.KeyStyle.Render(label), ui.Muted.Render(r.detail))
		return
	}
	icon := ui.Error.Render(ui.IconError)
	fmt.Printf("  %s %s %s\n", icon, ui.KeyStyle.Render(label), r.detail)
	if r.fixHint != "" {
		fmt.Printf("      %s %s\n", "          ", ui.Muted.Render(ui.IconArrow+" "+r.fixHint))
	}
}

func checkConfig(loadErr error) checkResult {
	paths := config.GetPaths()
	if loadErr != nil {
		return checkResult{
			name:    "Config",
			detail:  fmt.Sprintf("parse error: %v", loadErr),
			fixHint: fmt.Sprintf("Check %s for syntax errors", paths.ConfigFile),
		}
	}
	if _, err := os.Stat(paths.ConfigFile); errors.Is(err, os.ErrNotExist) {
		return checkResult{name: "Config", ok: true, detail: "no config file, using defaults"}
	}
	return checkResult{name: "Config", ok: true, detail: paths.ConfigFile + " found and valid"}
}

func checkStore() checkResult {
	db, err := store.Open()
	if err != nil {
		return checkResult{
			name:    "Store",
			detail:  fmt.Sprintf("cannot open database: %v", err),
			fixHint: "Check permissions and free space under " + config.GetPaths().DataDir,
		}
	}
	db.Close()
	return checkResult{name: "Store", ok: true, detail: "SQLite database opens and responds"}
}

func checkHabits(key string) checkResult {
	db, err := store.Open()
	if err != nil {
		return checkResult{name: "Habits", detail: "skipped, database unavailable"}
	}
	defer db.Close()

	habits, err := store.LoadHabits(db, key)
	switch {
	case store.IsMalformed(err):
		return checkResult{
			name:    "Habits",
			detail:  fmt.Sprintf("stored habits under %q can't be read", key),
			fixHint: fmt.Sprintf("Restore a backup with %s", ui.Accent.Render("habitkit import <file>")),
		}
	case err != nil:
		return checkResult{name: "Habits", detail: err.Error()}
	}
	return checkResult{name: "Habits", ok: true, detail: fmt.Sprintf("%d habit(s) stored under %q", len(habits), key)}
}

func checkLog() checkResult {
	path := config.GetPaths().LogFile
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return checkResult{
			name:    "Log",
			detail:  fmt.Sprintf("can't create log dir: %v", err),
			fixHint: "Set XDG_STATE_HOME to a writable directory",
		}
	}
	return checkResult{name: "Log", ok: true, detail: path}
}
