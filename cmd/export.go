package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rnwolfe/habitkit/internal/archive"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// formatValue is a pflag.Value restricted to the archive formats.
type formatValue struct {
	f archive.Format
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string { return string(v.f) }

func (v *formatValue) Set(s string) error {
	f, err := archive.ParseFormat(s)
	if err != nil {
		return err
	}
	v.f = f
	return nil
}

func (v *formatValue) Type() string { return "json|yaml" }

var (
	exportFormat  formatValue
	exportEncrypt bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all habits to a file (or stdout)",
	Long: `Write all habits to a file, or to stdout when no file is given.

The format follows the file extension (.yaml/.yml for YAML) unless --format is
set. --encrypt protects the archive with a passphrase (age, ASCII-armored).`,
	Example: `  habitkit export backup.json
  habitkit export --format yaml > habits.yaml
  habitkit export --encrypt backup.age`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().VarP(&exportFormat, "format", "f", "Archive format: json or yaml")
	exportCmd.Flags().BoolVarP(&exportEncrypt, "encrypt", "e", false, "Encrypt with a passphrase")
}

func runExport(_ *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	path := ""
	if len(args) > 0 && args[0] != "-" {
		path = args[0]
	}

	opts := archive.Options{Format: exportFormat.f}
	if opts.Format == "" {
		opts.Format = formatForPath(path)
	}
	if exportEncrypt {
		if opts.Passphrase, err = readPassphrase(true); err != nil {
			return err
		}
	}

	habits := sess.store.Habits()
	data, err := archive.Export(habits, opts)
	if err != nil {
		return err
	}

	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := archive.WriteFile(path, data); err != nil {
		return err
	}
	zap.L().Info("habits exported",
		zap.String("path", path),
		zap.String("format", string(opts.Format)),
		zap.Bool("encrypted", exportEncrypt),
		zap.Int("count", len(habits)))

	ui.Ok(fmt.Sprintf("Exported %d habit(s) to %s", len(habits), path))
	return nil
}

func formatForPath(path string) archive.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return archive.FormatYAML
	}
	return archive.FormatJSON
}
