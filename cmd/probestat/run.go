package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/edtbl76/openhash"
	"github.com/edtbl76/openhash/crt"
	"github.com/edtbl76/openhash/hashfunc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadResult - Counters from loading a table
type loadResult struct {
	added      int64
	duplicates int64
	full       bool
}

func runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a table with random keys and print statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cfg, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().Int64("items", 0, "number of random keys to add, 0 means capacity - 1")
	cmd.Flags().Int64("min-key", 1, "lowest random key")
	cmd.Flags().Int64("max-key", 100000, "highest random key")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Bool("layout", false, "print the slot layout")
	cmd.Flags().Bool("items-out", false, "print the stored items")
	cmd.Flags().String("words", "", "file with one word per line to add instead of random keys")

	return cmd
}

// run - Builds the table described by cfg, loads it and writes the report to out
func run(cfg Config, out io.Writer, logger *zap.Logger) (err error) {
	strategy, err := crt.ParseStrategy(cfg.Strategy)
	if err != nil {
		return
	}

	table, info, err := openhash.NewTable[int64, string](openhash.Conf{
		Capacity: cfg.tableCapacity(),
		Strategy: strategy,
		Logger:   logger,
	})
	if err != nil {
		return
	}

	var result loadResult
	if cfg.Words != "" {
		result, err = loadWords(table, cfg.Words)
	} else {
		result = loadRandom(table, cfg)
	}
	if err != nil {
		return
	}

	logger.Info("table loaded",
		zap.Int64("added", result.added),
		zap.Int64("duplicates", result.duplicates),
		zap.Bool("full", result.full))

	report(out, cfg, table, info, result)

	return
}

// tableCapacity - Returns the capacity to build the table with, bumped to the nearest prime if asked to.
// Non-positive capacities are left as they are for the table to reject.
func (c Config) tableCapacity() int64 {
	if c.Prime && c.Capacity > 0 {
		return openhash.NearestPrime(c.Capacity)
	}

	return c.Capacity
}

// loadRandom - Adds random keys within [MinKey, MaxKey] with value v<key>, duplicates are counted and skipped
func loadRandom(table *openhash.Table[int64, string], cfg Config) (result loadResult) {
	items := cfg.Items
	if items == 0 {
		items = table.Capacity() - 1
	}

	rnd := rand.New(rand.NewSource(cfg.Seed))
	span := cfg.MaxKey - cfg.MinKey + 1

	for i := int64(0); i < items; i++ {
		key := cfg.MinKey + rnd.Int63n(span)
		if !result.add(table, key, fmt.Sprintf("v%d", key)) {
			break
		}
	}

	return
}

// loadWords - Adds every non-empty line of the file at path, keyed by its xxhash
func loadWords(table *openhash.Table[int64, string], path string) (result loadResult, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("error while opening words file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if !result.add(table, hashfunc.StringKey(word), word) {
			break
		}
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading words file: %w", err)
	}

	return
}

// add - Adds one entry and returns false once the table is full
func (r *loadResult) add(table *openhash.Table[int64, string], key int64, value string) bool {
	err := table.Add(key, value)
	switch {
	case err == nil:
		r.added++
	case errors.Is(err, crt.DuplicateKey{}):
		r.duplicates++
	case errors.Is(err, crt.TableFull{}):
		r.full = true
		return false
	}

	return true
}

// report - Writes statistics for the loaded table
func report(out io.Writer, cfg Config, table *openhash.Table[int64, string], info openhash.TableInfo, result loadResult) {
	stat := table.Stat()

	_, _ = fmt.Fprintf(out, "Strategy: %s\n", info.Strategy)
	_, _ = fmt.Fprintf(out, "Capacity: %d (prime %t, full cycle %t)\n", info.Capacity, info.PrimeCapacity, info.FullCycle)
	_, _ = fmt.Fprintf(out, "Added: %d, duplicates: %d, table full: %t\n", result.added, result.duplicates, result.full)
	_, _ = fmt.Fprintf(out, "Fill Percentage: %.4f\n", table.FillPercentage())
	if cfg.Words == "" {
		_, _ = fmt.Fprintf(out, "Max Length: %d\n", table.MaxLength(cfg.MinKey, cfg.MaxKey))
		_, _ = fmt.Fprintf(out, "Ave Length: %.4f\n", table.AveLength(cfg.MinKey, cfg.MaxKey))
	} else {
		_, _ = fmt.Fprintf(out, "Max Length: %d\n", stat.MaxProbeLength)
		_, _ = fmt.Fprintf(out, "Ave Length: %.4f\n", stat.AveProbeLength)
	}
	_, _ = fmt.Fprintf(out, "Clusters: %d, longest: %d, average: %.4f\n",
		stat.Clusters.Clusters, stat.Clusters.Longest, stat.Clusters.Average)

	if cfg.PrintLayout {
		_, _ = fmt.Fprint(out, table.String())
	}

	if cfg.PrintItems {
		for _, item := range table.GetItems() {
			_, _ = fmt.Fprintln(out, item.String())
		}
	}
}
