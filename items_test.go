//go:build unit

package openhash

import (
	"errors"
	"fmt"
	"github.com/edtbl76/openhash/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestTable_GetItems(t *testing.T) {
	t.Run("ordered double hashing enumerates in insertion order", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, 11, crt.OrderedDoubleHashing)
		for _, k := range []int{50, 3, 27, 14} {
			require.NoError(t, table.Add(k, fmt.Sprintf("v%d", k)), "add key")
		}

		// Execute
		items := table.GetItems()

		// Check
		assert.Equal(t, []Item[int, string]{
			{Key: 50, Value: "v50"},
			{Key: 3, Value: "v3"},
			{Key: 27, Value: "v27"},
			{Key: 14, Value: "v14"},
		}, items, "insertion order")
	})

	t.Run("ordered double hashing drops removed keys and appends re-added keys", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, 11, crt.OrderedDoubleHashing)
		for _, k := range []int{50, 3, 27, 14} {
			require.NoError(t, table.Add(k, fmt.Sprintf("v%d", k)), "add key")
		}

		// Execute
		require.NoError(t, table.Remove(3), "remove key")
		require.NoError(t, table.Add(3, "w3"), "re-add key")
		_, err := table.Pop(27)
		require.NoError(t, err, "pop key")

		// Check
		assert.Equal(t, []Item[int, string]{
			{Key: 50, Value: "v50"},
			{Key: 14, Value: "v14"},
			{Key: 3, Value: "w3"},
		}, table.GetItems(), "insertion order after removals")
	})

	t.Run("other strategies enumerate in slot order", func(t *testing.T) {
		tests := []TestCaseTable{
			{crtName: "LinearProbing", capacity: 11, strategy: crt.LinearProbing},
			{crtName: "QuadraticProbing", capacity: 11, strategy: crt.QuadraticProbing},
			{crtName: "DoubleHashing", capacity: 11, strategy: crt.DoubleHashing},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("slot order for %s", test.crtName), func(t *testing.T) {
				// Prepare
				table := newTestTable(t, test.capacity, test.strategy)
				for _, k := range []int{9, 1, 5} {
					require.NoError(t, table.Add(k, fmt.Sprintf("v%d", k)), "add key")
				}

				// Execute
				items := table.GetItems()

				// Check
				assert.Equal(t, []Item[int, string]{
					{Key: 1, Value: "v1"},
					{Key: 5, Value: "v5"},
					{Key: 9, Value: "v9"},
				}, items, "slot order")
			})
		}
	})

	t.Run("empty table has no items", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, 11, crt.LinearProbing)

		// Execute and Check
		assert.Empty(t, table.GetItems(), "no items")
	})
}

func TestItems_Next(t *testing.T) {
	t.Run("fails with KeyNotFound when exhausted for all CRTs", func(t *testing.T) {
		for _, test := range allStrategies {
			t.Run(fmt.Sprintf("exhausted iterator for %s", test.crtName), func(t *testing.T) {
				// Prepare
				table := newTestTable(t, test.capacity, test.strategy)
				require.NoError(t, table.Add(10, "v10"), "add key")
				iter := table.Iterator()

				// Execute
				require.True(t, iter.HasNext(), "one item")
				item, err := iter.Next()
				require.NoError(t, err, "next item")
				_, err = iter.Next()

				// Check
				assert.Equal(t, "10=v10", item.String(), "item rendered")
				assert.False(t, iter.HasNext(), "no more items")
				assert.True(t, errors.Is(err, crt.KeyNotFound{}), "KeyNotFound returned")
			})
		}
	})
}

func TestTable_String(t *testing.T) {
	t.Run("renders every slot", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, 5, crt.LinearProbing)
		require.NoError(t, table.Add(1, "v1"), "add key")
		require.NoError(t, table.Add(2, "v2"), "add key")
		require.NoError(t, table.Remove(2), "remove key")

		// Execute
		layout := table.String()

		// Check
		lines := strings.Split(strings.TrimRight(layout, "\n"), "\n")
		assert.Equal(t, []string{
			"linear table, capacity 5, count 1, tombstones 1",
			"0: <empty>",
			"1: 1=v1",
			"2: <tombstone>",
			"3: <empty>",
			"4: <empty>",
		}, lines, "layout rendered")
	})
}
