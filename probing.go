package openhash

import (
	"math"

	"github.com/edtbl76/openhash/crt"
	"github.com/edtbl76/openhash/internal/model"
	"golang.org/x/exp/constraints"
)

// probingForSet - Is the collision resolution algorithm for finding the slot to add key to.
// The first empty or tombstone slot in the probe sequence is the candidate, but probing goes on past tombstones
// until an empty slot is met or all attempts are spent, so that the key is not added twice when an earlier copy
// was displaced past a slot that has since been deleted.
//
// It returns:
//   - slot is the index to place the key in
//   - err is crt.DuplicateKey if the key is already occupying a slot, or crt.TableFull if no free slot was found
func (T *Table[K, V]) probingForSet(key K) (slot int64, err error) {
	var hasCandidate bool
	var s model.Slot[K, V]

	hf1Value, hf2Value := T.hashValues(key)

	for i := int64(0); i < T.sequence.Attempts(); i++ {
		probe := T.sequence.ProbeIteration(hf1Value, hf2Value, i)
		s = T.store.Get(probe)

		switch s.State {
		case model.SlotEmpty:
			if !hasCandidate {
				slot = probe
			}
			return

		case model.SlotOccupied:
			if s.Key == key {
				err = crt.DuplicateKey{}
				return
			}

		case model.SlotTombstone:
			if !hasCandidate {
				slot = probe
				hasCandidate = true
			}
		}
	}

	if !hasCandidate {
		err = crt.TableFull{}
	}

	return
}

// probingForGet - Is the collision resolution algorithm for locating key.
// Tombstones are skipped, an empty slot or having spent all attempts ends the search.
//
// It returns:
//   - slot is the index holding the key
//   - attempts is the 1-based number of probes it took to reach the slot
//   - err is crt.KeyNotFound if the key is not in the table
func (T *Table[K, V]) probingForGet(key K) (slot, attempts int64, err error) {
	var s model.Slot[K, V]

	hf1Value, hf2Value := T.hashValues(key)

	for i := int64(0); i < T.sequence.Attempts(); i++ {
		probe := T.sequence.ProbeIteration(hf1Value, hf2Value, i)
		s = T.store.Get(probe)

		switch s.State {
		case model.SlotEmpty:
			err = crt.KeyNotFound{}
			return

		case model.SlotOccupied:
			if s.Key == key {
				slot = probe
				attempts = i + 1
				return
			}
		}
	}

	err = crt.KeyNotFound{}
	return
}

// hashValues - Returns the values of both hash functions for key.
// Keys of unsigned 64-bit types above math.MaxInt64 do not fit an int64, they are reduced modulo the
// divisor of each hash function first so that the ideal index stays key mod table size.
func (T *Table[K, V]) hashValues(key K) (hf1Value, hf2Value int64) {
	tableSize := T.sequence.GetTableSize()

	hf1Value = T.sequence.HashFunc1(reduceKey(key, tableSize))
	if tableSize > 1 {
		hf2Value = T.sequence.HashFunc2(reduceKey(key, tableSize-1))
	} else {
		hf2Value = T.sequence.HashFunc2(0)
	}

	return
}

// reduceKey - Returns key as an int64 that is congruent to key modulo m
func reduceKey[K constraints.Integer](key K, m int64) int64 {
	if key < 0 || uint64(key) <= math.MaxInt64 {
		return int64(key)
	}

	return int64(uint64(key) % uint64(m))
}
