package main

import (
	"fmt"
	"strconv"

	"github.com/edtbl76/openhash"
	"github.com/edtbl76/openhash/crt"
	"github.com/spf13/cobra"
)

func probeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <key>",
		Short: "Print the probe sequence of a key",
		Long:  "Print every slot index examined for a key, in order, for the configured capacity and strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("key must be an integer: %w", err)
			}

			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			strategy, err := crt.ParseStrategy(cfg.Strategy)
			if err != nil {
				return err
			}

			table, _, err := openhash.NewTable[int64, struct{}](openhash.Conf{
				Capacity: cfg.tableCapacity(),
				Strategy: strategy,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, slot := range table.ProbeSequence(key) {
				_, _ = fmt.Fprintf(out, "%d: %d\n", i, slot)
			}

			return nil
		},
	}

	return cmd
}
