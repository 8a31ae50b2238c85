package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rnwolfe/habitkit/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print habitkit version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(_ *cobra.Command, _ []string) error {
	switch {
	case versionShort:
		fmt.Println(version.Short())
	case versionJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(version.Get())
	default:
		fmt.Printf("habitkit %s\n", version.Full())
	}
	return nil
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build info as JSON")
}
