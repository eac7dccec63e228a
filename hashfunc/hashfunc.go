// Package hashfunc derives the integer keys a table is addressed by from arbitrary byte keys.
package hashfunc

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Key - Returns a non-negative integer key for b using xxhash. Distinct byte keys may collide on the same integer
// key, in which case the table rejects the second one as a duplicate.
func Key(b []byte) int64 {
	return int64(xxhash.Sum64(b) & math.MaxInt64)
}

// StringKey - Returns Key for the bytes of s
func StringKey(s string) int64 {
	return int64(xxhash.Sum64String(s) & math.MaxInt64)
}
