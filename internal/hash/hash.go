package hash

import "github.com/edtbl76/openhash/crt"

// Sequence - The probe sequence generator for one table. It is a small value holding the collision resolution
// technique and the table size, and all probe arithmetic is dispatched from here so that insertion, lookup and
// statistics always walk the exact same sequence for a key.
type Sequence struct {
	strategy  crt.Strategy
	tableSize int64
}

// NewSequence - Returns a new Sequence for the given strategy and table size.
// The table size is taken as is, for the double hashing strategies it should be a prime to make every probe
// sequence a full permutation of the table's slots.
func NewSequence(strategy crt.Strategy, tableSize int64) Sequence {
	return Sequence{strategy: strategy, tableSize: tableSize}
}

// GetTableSize - Returns the table size the sequence is addressing
func (S Sequence) GetTableSize() int64 {
	return S.tableSize
}

// GetStrategy - Returns the collision resolution technique the sequence implements
func (S Sequence) GetStrategy() crt.Strategy {
	return S.strategy
}

// Attempts - Returns the number of probe attempts permitted before a table must be considered full
func (S Sequence) Attempts() int64 {
	return S.tableSize
}

// HashFunc1 - Given key it generates the ideal index between 0 and table size - 1
func (S Sequence) HashFunc1(key int64) int64 {
	return mod(key, S.tableSize)
}

// HashFunc2 - Given key it generates the probing offset for the double hashing strategies, other strategies
// get a dummy value of 0.
func (S Sequence) HashFunc2(key int64) int64 {
	if !S.strategy.IsDoubleHashing() {
		return 0
	}

	return doubleHashFunc2(key, S.tableSize)
}

// ProbeIteration - Returns the slot index to examine in iteration given values from HashFunc1 and HashFunc2.
// Since this function is called repeatedly while resolving a collision, and the hash values are the same
// throughout iterations for one key, the function takes those values rather than the key.
func (S Sequence) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	switch S.strategy {
	case crt.LinearProbing:
		return linearProbe(hf1Value, iteration, S.tableSize)
	case crt.QuadraticProbing:
		return quadraticProbe(hf1Value, iteration, S.tableSize)
	case crt.DoubleHashing, crt.OrderedDoubleHashing:
		return doubleProbe(hf1Value, hf2Value, iteration, S.tableSize)
	}

	panic("hash: probe sequence with unknown collision resolution technique " + S.strategy.String())
}

// Probe - Returns the slot index to examine in iteration for key
func (S Sequence) Probe(key, iteration int64) int64 {
	return S.ProbeIteration(S.HashFunc1(key), S.HashFunc2(key), iteration)
}

// mod - Returns the non-negative remainder of a divided by m
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
