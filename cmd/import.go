package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rnwolfe/habitkit/internal/archive"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add habits from an exported file",
	Long: `Add habits from a file written by ` + "`habitkit export`" + `.

JSON, YAML and encrypted archives are detected automatically. Habits whose id
is already tracked are skipped, so importing the same file twice is safe.
Use - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(_ *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}

	passphrase := ""
	if archive.IsEncrypted(data) {
		if passphrase, err = readPassphrase(false); err != nil {
			return err
		}
	}

	habits, err := archive.Import(data, passphrase)
	if err != nil {
		return archiveError(err)
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	added := sess.store.Import(habits)
	zap.L().Info("habits imported", zap.String("source", args[0]), zap.Int("read", len(habits)), zap.Int("added", added))

	ui.Ok(fmt.Sprintf("Imported %d habit(s)", added))
	if skipped := len(habits) - added; skipped > 0 {
		ui.Puts(ui.Info.Render(fmt.Sprintf("  Skipped %d already tracked.", skipped)))
	}
	return nil
}
