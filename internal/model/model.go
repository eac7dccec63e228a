package model

import "golang.org/x/exp/constraints"

// SlotState - State of a slot in the table
type SlotState uint8

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied SlotState = 1

// SlotTombstone - State indicating a slot that has been in use but was deleted
const SlotTombstone SlotState = 2

// Slot - Represents one slot in the table
type Slot[K constraints.Integer, V any] struct {
	State SlotState
	Key   K
	Value V
}

// IsOccupied - Returns true if the slot holds a live entry
func (S Slot[K, V]) IsOccupied() bool {
	return S.State == SlotOccupied
}

// IsFree - Returns true if the slot can take a new entry, that is it is either empty or a tombstone
func (S Slot[K, V]) IsFree() bool {
	return S.State != SlotOccupied
}
