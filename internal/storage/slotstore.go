package storage

import (
	"github.com/edtbl76/openhash/internal/model"
	"golang.org/x/exp/constraints"
)

// SlotStore - Fixed capacity backing array of slots. It holds no probing logic, indices are always supplied by
// the caller and an index outside [0, capacity) is a programming error that panics.
type SlotStore[K constraints.Integer, V any] struct {
	slots      []model.Slot[K, V]
	nEmpty     int64
	nOccupied  int64
	nTombstone int64
}

// NewSlotStore - Returns a pointer to a new SlotStore with all slots empty
func NewSlotStore[K constraints.Integer, V any](capacity int64) *SlotStore[K, V] {
	return &SlotStore[K, V]{
		slots:  make([]model.Slot[K, V], capacity),
		nEmpty: capacity,
	}
}

// Capacity - Returns the fixed number of slots
func (S *SlotStore[K, V]) Capacity() int64 {
	return int64(len(S.slots))
}

// Count - Returns the number of occupied slots
func (S *SlotStore[K, V]) Count() int64 {
	return S.nOccupied
}

// Tombstones - Returns the number of slots marked as tombstone
func (S *SlotStore[K, V]) Tombstones() int64 {
	return S.nTombstone
}

// Empty - Returns the number of slots that have never been used, or were reset with MarkEmpty
func (S *SlotStore[K, V]) Empty() int64 {
	return S.nEmpty
}

// Get - Returns a copy of the slot at index i
func (S *SlotStore[K, V]) Get(i int64) model.Slot[K, V] {
	return S.slots[i]
}

// Set - Occupies the slot at index i with key and value
func (S *SlotStore[K, V]) Set(i int64, key K, value V) {
	fromState := S.slots[i].State
	S.slots[i] = model.Slot[K, V]{State: model.SlotOccupied, Key: key, Value: value}
	S.updateUtilizationInfo(fromState, model.SlotOccupied)
}

// MarkEmpty - Resets the slot at index i to the never used state.
// Lookups stop at an empty slot, so resetting a slot while keys whose probe sequence passes it remain in the store
// makes those keys unreachable. Callers must reset every slot of the store together, as Table.Clear does.
func (S *SlotStore[K, V]) MarkEmpty(i int64) {
	fromState := S.slots[i].State
	S.slots[i] = model.Slot[K, V]{}
	S.updateUtilizationInfo(fromState, model.SlotEmpty)
}

// MarkTombstone - Marks the slot at index i as deleted, key and value are cleared
func (S *SlotStore[K, V]) MarkTombstone(i int64) {
	fromState := S.slots[i].State
	S.slots[i] = model.Slot[K, V]{State: model.SlotTombstone}
	S.updateUtilizationInfo(fromState, model.SlotTombstone)
}

// updateUtilizationInfo - Moves one slot from the fromState counter to the toState counter
func (S *SlotStore[K, V]) updateUtilizationInfo(fromState, toState model.SlotState) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotEmpty:
		S.nEmpty--
	case model.SlotOccupied:
		S.nOccupied--
	case model.SlotTombstone:
		S.nTombstone--
	}

	switch toState {
	case model.SlotEmpty:
		S.nEmpty++
	case model.SlotOccupied:
		S.nOccupied++
	case model.SlotTombstone:
		S.nTombstone++
	}
}
