package hash

// doubleHashFunc2 - Returns the probing offset 1 + (key mod (M - 1)), which always lies in [1, M - 1].
// A table of size 1 has only one slot to offer so the offset is 1.
func doubleHashFunc2(key, tableSize int64) int64 {
	if tableSize <= 1 {
		return 1
	}

	return 1 + mod(key, tableSize-1)
}

// doubleProbe - Implements Double Hashing as (hf1 + i*hf2) mod M.
// With M prime, gcd(hf2, M) = 1 for every key and the first M iterations are a permutation of [0, M).
func doubleProbe(hf1Value, hf2Value, iteration, tableSize int64) int64 {
	step := ((iteration % tableSize) * hf2Value) % tableSize
	return (hf1Value + step) % tableSize
}
