//go:build unit

package crt

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	t.Run("parses every strategy name", func(t *testing.T) {
		// Prepare
		tests := []Strategy{LinearProbing, QuadraticProbing, DoubleHashing, OrderedDoubleHashing}

		for _, strategy := range tests {
			// Execute
			parsed, err := ParseStrategy(" " + fmt.Sprint(strategy) + " ")

			// Check
			assert.NoErrorf(t, err, "parse %s", strategy)
			assert.Equalf(t, strategy, parsed, "round trip %s", strategy)
			assert.Truef(t, parsed.IsValid(), "%s is valid", strategy)
		}
		parsed, err := ParseStrategy("Ordered-Double")
		assert.NoError(t, err, "case is ignored")
		assert.Equal(t, OrderedDoubleHashing, parsed, "case is ignored")
	})

	t.Run("fails on unknown name", func(t *testing.T) {
		// Execute
		_, err := ParseStrategy("cuckoo")

		// Check
		assert.Error(t, err, "unknown strategy")
	})
}

func TestStrategy_IsDoubleHashing(t *testing.T) {
	t.Run("only double hashing strategies", func(t *testing.T) {
		// Execute and Check
		assert.False(t, LinearProbing.IsDoubleHashing(), "linear")
		assert.False(t, QuadraticProbing.IsDoubleHashing(), "quadratic")
		assert.True(t, DoubleHashing.IsDoubleHashing(), "double")
		assert.True(t, OrderedDoubleHashing.IsDoubleHashing(), "ordered double")
		assert.False(t, Strategy(0).IsValid(), "zero value is not a strategy")
		assert.Equal(t, "strategy(0)", Strategy(0).String(), "unknown strategy rendered")
	})
}

func TestErrors(t *testing.T) {
	t.Run("errors match with errors.Is through wrapping", func(t *testing.T) {
		// Prepare
		tests := []error{InvalidCapacity{}, DuplicateKey{}, TableFull{}, KeyNotFound{}}

		for _, e := range tests {
			// Execute
			wrapped := fmt.Errorf("operation failed: %w", e)

			// Check
			assert.Truef(t, errors.Is(wrapped, e), "wrapped %T matches", e)
			assert.NotEmptyf(t, e.Error(), "%T has a message", e)
		}
		assert.False(t, errors.Is(TableFull{}, KeyNotFound{}), "kinds do not match each other")
	})
}
