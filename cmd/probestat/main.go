// Command probestat loads an open addressing table with random keys and reports fill percentage, probe length
// and clustering statistics.
package main

import (
	"fmt"
	"os"

	"github.com/edtbl76/openhash/internal/logutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "probestat",
		Short:         "Open addressing hash table statistics",
		Long:          "Load fixed capacity open addressing tables and inspect probe lengths, load and clustering",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "TOML config file")
	cmd.PersistentFlags().Int64("capacity", 0, "number of slots in the table")
	cmd.PersistentFlags().String("strategy", "", "linear, quadratic, double or ordered-double")
	cmd.PersistentFlags().Bool("prime", false, "round capacity up to the nearest prime")
	cmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	cmd.AddCommand(runCommand())
	cmd.AddCommand(probeCommand())

	return cmd
}

// resolveConfig - Builds the effective configuration: defaults, then the config file, then changed flags
func resolveConfig(flags *pflag.FlagSet) (cfg Config, err error) {
	cfg = defaultConfig()

	path, _ := flags.GetString("config")
	if path != "" {
		if err = loadConfig(path, &cfg); err != nil {
			return
		}
	}

	if flags.Changed("capacity") {
		cfg.Capacity, _ = flags.GetInt64("capacity")
	}
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("prime") {
		cfg.Prime, _ = flags.GetBool("prime")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Lookup("items") != nil && flags.Changed("items") {
		cfg.Items, _ = flags.GetInt64("items")
	}
	if flags.Lookup("min-key") != nil && flags.Changed("min-key") {
		cfg.MinKey, _ = flags.GetInt64("min-key")
	}
	if flags.Lookup("max-key") != nil && flags.Changed("max-key") {
		cfg.MaxKey, _ = flags.GetInt64("max-key")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Lookup("layout") != nil && flags.Changed("layout") {
		cfg.PrintLayout, _ = flags.GetBool("layout")
	}
	if flags.Lookup("items-out") != nil && flags.Changed("items-out") {
		cfg.PrintItems, _ = flags.GetBool("items-out")
	}
	if flags.Lookup("words") != nil && flags.Changed("words") {
		cfg.Words, _ = flags.GetString("words")
	}

	err = cfg.validate()

	return
}

// setup - Resolves configuration and creates the logger for a command
func setup(cmd *cobra.Command) (cfg Config, logger *zap.Logger, err error) {
	cfg, err = resolveConfig(cmd.Flags())
	if err != nil {
		return
	}

	logger, err = logutil.NewLogger(cfg.Log)

	return
}
