package cmd

import (
	"fmt"
	"strings"

	"github.com/rnwolfe/habitkit/internal/config"
	"github.com/rnwolfe/habitkit/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configListCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value. Run `habitkit config list` to see the keys.",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Reset a configuration value to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration keys with their values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func lookupConfigKey(key string) (*config.KeyEntry, error) {
	entry, ok := config.LookupKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown config key %q (valid keys: %s)",
			key, strings.Join(config.ValidKeyNames(), ", "))
	}
	return entry, nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	fmt.Println(config.GetPaths().ConfigFile)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	entry, err := lookupConfigKey(key)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := entry.Set(cfg, value); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, entry.Get(cfg)))
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	entry, err := lookupConfigKey(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(entry.Get(cfg))
	return nil
}

func runConfigUnset(_ *cobra.Command, args []string) error {
	key := args[0]
	entry, err := lookupConfigKey(key)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	entry.Unset(cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s reset to %q", key, entry.DefaultStr))
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	for _, name := range config.ValidKeyNames() {
		entry, _ := config.LookupKey(name)
		fmt.Printf("%s %s\n",
			ui.KeyStyle.Render(fmt.Sprintf("  %-22s", name)),
			ui.ValueStyle.Render(entry.Get(cfg)))
		fmt.Printf("  %s\n", ui.Muted.Render(fmt.Sprintf("  %s (%s, default %q)", entry.Desc, entry.Type, entry.DefaultStr)))
	}
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	paths := config.GetPaths()

	ui.Header("Configuration")
	fmt.Println()
	ui.Kv("Name", cfg.User.Name)
	ui.Kv("Streak cap", fmt.Sprintf("%d", cfg.StreakCap()))
	ui.Kv("Grid weeks", gridWeeksLabel(cfg.Habits.GridWeeks))
	ui.Kv("Log level", cfg.Log.Level)
	fmt.Println()
	ui.Kv("Config", paths.ConfigFile)
	ui.Kv("Data", paths.DBFile)
	ui.Kv("Log", paths.LogFile)
	fmt.Println()
	ui.Tip(fmt.Sprintf("Edit directly: %s", ui.Accent.Render("$EDITOR "+paths.ConfigFile)))
	fmt.Println()

	return nil
}

func gridWeeksLabel(n int) string {
	if n <= 0 {
		return "fit terminal"
	}
	return fmt.Sprintf("%d", n)
}
