package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/edtbl76/openhash/internal/logutil"
)

// Config - Settings for a probestat run, read from a TOML file and overridden by command line flags
type Config struct {
	Capacity    int64             `toml:"capacity"`
	Strategy    string            `toml:"strategy"`
	Items       int64             `toml:"items"`
	MinKey      int64             `toml:"min-key"`
	MaxKey      int64             `toml:"max-key"`
	Seed        int64             `toml:"seed"`
	Prime       bool              `toml:"prime"`
	PrintLayout bool              `toml:"print-layout"`
	PrintItems  bool              `toml:"print-items"`
	Words       string            `toml:"words"`
	Log         logutil.LogConfig `toml:"log"`
}

func defaultConfig() Config {
	return Config{
		Capacity: 1009,
		Strategy: "ordered-double",
		MinKey:   1,
		MaxKey:   100000,
		Seed:     1,
		Prime:    true,
		Log:      logutil.LogConfig{Level: "info", Format: "console"},
	}
}

// loadConfig - Decodes the TOML file at path on top of cfg
func loadConfig(path string, cfg *Config) (err error) {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %w", path, err)
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = fmt.Errorf("unknown settings in config file %s: %v", path, undecoded)
		return
	}

	return
}

// validate - Checks settings that the table itself does not check
func (c Config) validate() error {
	if c.MinKey > c.MaxKey {
		return fmt.Errorf("min-key %d is higher than max-key %d", c.MinKey, c.MaxKey)
	}
	if uint64(c.MaxKey)-uint64(c.MinKey) >= math.MaxInt64 {
		return fmt.Errorf("key range [%d, %d] is too wide", c.MinKey, c.MaxKey)
	}
	if c.Items < 0 {
		return fmt.Errorf("items must not be negative")
	}

	return nil
}
