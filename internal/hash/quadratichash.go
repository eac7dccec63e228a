package hash

// quadraticProbe - Implements Quadratic Probing as (hf1 + i^2) mod M.
// The sequence does not in general visit every slot, so a table using it can report full while
// slots that the key never reaches are still free.
func quadraticProbe(hf1Value, iteration, tableSize int64) int64 {
	i := iteration % tableSize
	return (hf1Value + (i*i)%tableSize) % tableSize
}
