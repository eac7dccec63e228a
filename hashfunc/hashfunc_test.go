//go:build unit

package hashfunc

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestKey(t *testing.T) {
	t.Run("creates stable non-negative keys", func(t *testing.T) {
		// Prepare
		words := []string{"", "a", "nugget", "open addressing", "tombstone"}

		for _, w := range words {
			// Execute
			k1 := Key([]byte(w))
			k2 := StringKey(w)

			// Check
			assert.GreaterOrEqualf(t, k1, int64(0), "key for %q non-negative", w)
			assert.Equalf(t, k1, k2, "byte and string keys agree for %q", w)
			assert.Equalf(t, k1, Key([]byte(w)), "key for %q is stable", w)
		}
	})

	t.Run("different input gives different keys", func(t *testing.T) {
		// Execute and Check
		assert.NotEqual(t, StringKey("alpha"), StringKey("beta"), "keys differ")
	})
}
