//go:build unit

package openhash

import (
	"errors"
	"fmt"
	"github.com/edtbl76/openhash/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

type TestCaseTable struct {
	crtName  string
	capacity int64
	strategy crt.Strategy
}

var allStrategies = []TestCaseTable{
	{crtName: "LinearProbing", capacity: 11, strategy: crt.LinearProbing},
	{crtName: "QuadraticProbing", capacity: 11, strategy: crt.QuadraticProbing},
	{crtName: "DoubleHashing", capacity: 11, strategy: crt.DoubleHashing},
	{crtName: "OrderedDoubleHashing", capacity: 11, strategy: crt.OrderedDoubleHashing},
}

func newTestTable(t *testing.T, capacity int64, strategy crt.Strategy) *Table[int, string] {
	t.Helper()
	table, err := New[int, string](capacity, strategy)
	require.NoError(t, err, "create new table")
	return table
}

func TestNewTable(t *testing.T) {
	t.Run("creates tables for all CRTs", func(t *testing.T) {
		for _, test := range allStrategies {
			t.Run(fmt.Sprintf("creates a new table for %s", test.crtName), func(t *testing.T) {
				// Execute
				table, info, err := NewTable[int, string](Conf{Capacity: test.capacity, Strategy: test.strategy})

				// Check
				assert.NoError(t, err, "create new table")
				assert.Equal(t, test.capacity, table.Capacity(), "capacity preserved")
				assert.Equal(t, test.strategy, table.Strategy(), "strategy preserved")
				assert.Equal(t, int64(0), table.Count(), "table is empty")
				assert.Equal(t, int64(0), table.Tombstones(), "no tombstones")
				assert.Equal(t, test.capacity, info.Capacity, "capacity in info")
				assert.Equal(t, test.strategy, info.Strategy, "strategy in info")
				assert.True(t, info.PrimeCapacity, "capacity is prime")
				assert.Equal(t, test.strategy == crt.OrderedDoubleHashing, info.Ordered, "ordered only for ordered double hashing")
				assert.Equal(t, test.strategy != crt.QuadraticProbing, info.FullCycle, "full cycle for all but quadratic probing")
			})
		}
	})

	t.Run("fails on invalid capacity", func(t *testing.T) {
		for _, capacity := range []int64{0, -1, -11} {
			// Execute
			table, _, err := NewTable[int, string](Conf{Capacity: capacity, Strategy: crt.LinearProbing})

			// Check
			assert.Nilf(t, table, "no table for capacity %d", capacity)
			assert.Truef(t, errors.Is(err, crt.InvalidCapacity{}), "InvalidCapacity for capacity %d", capacity)
		}
	})

	t.Run("fails on unknown strategy", func(t *testing.T) {
		// Execute
		table, _, err := NewTable[int, string](Conf{Capacity: 11, Strategy: crt.Strategy(0)})

		// Check
		assert.Nil(t, table, "no table")
		assert.Error(t, err, "unknown strategy")
	})

	t.Run("warns when double hashing capacity is not a prime", func(t *testing.T) {
		// Prepare
		core, logs := observer.New(zapcore.WarnLevel)

		// Execute
		_, info, err := NewTable[int, string](Conf{Capacity: 10, Strategy: crt.DoubleHashing, Logger: zap.New(core)})

		// Check
		assert.NoError(t, err, "non prime capacity is accepted")
		assert.False(t, info.PrimeCapacity, "capacity is not prime")
		assert.False(t, info.FullCycle, "no full cycle guarantee")
		require.Equal(t, 1, logs.Len(), "one warning logged")
		assert.Equal(t, int64(11), logs.All()[0].ContextMap()["nearestPrime"], "nearest prime suggested")
	})

	t.Run("does not warn for linear probing", func(t *testing.T) {
		// Prepare
		core, logs := observer.New(zapcore.WarnLevel)

		// Execute
		_, _, err := NewTable[int, string](Conf{Capacity: 10, Strategy: crt.LinearProbing, Logger: zap.New(core)})

		// Check
		assert.NoError(t, err, "create new table")
		assert.Equal(t, 0, logs.Len(), "nothing logged")
	})
}

func TestNearestPrime(t *testing.T) {
	t.Run("returns a prime capacity", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, int64(11), NearestPrime(10), "rounds up")
		assert.Equal(t, int64(11), NearestPrime(11), "keeps prime")
	})
}

func TestTable_Clear(t *testing.T) {
	t.Run("clears entries and tombstones for all CRTs", func(t *testing.T) {
		for _, test := range allStrategies {
			t.Run(fmt.Sprintf("clears table for %s", test.crtName), func(t *testing.T) {
				// Prepare
				table := newTestTable(t, test.capacity, test.strategy)
				for _, k := range []int{1, 2, 3} {
					require.NoError(t, table.Add(k, fmt.Sprintf("v%d", k)), "add key")
				}
				require.NoError(t, table.Remove(2), "remove key")

				// Execute
				table.Clear()

				// Check
				assert.Equal(t, int64(0), table.Count(), "no entries")
				assert.Equal(t, int64(0), table.Tombstones(), "no tombstones")
				assert.Empty(t, table.GetItems(), "no items")
				assert.False(t, table.Contains(1), "key gone")
				assert.NoError(t, table.Add(1, "again"), "table usable after clear")
				assert.NoError(t, table.Add(12, "collides"), "colliding key added after clear")
				assert.NotPanics(t, func() { table.Stat() }, "every key reachable after clear")
				assert.Equal(t, int64(2), table.MaxLength(0, 100), "colliding key on second attempt")
			})
		}
	})
}
