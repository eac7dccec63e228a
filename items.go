package openhash

import (
	"fmt"
	"strings"

	"github.com/edtbl76/openhash/crt"
	"github.com/edtbl76/openhash/internal/model"
	"github.com/edtbl76/openhash/internal/ordered"
	"golang.org/x/exp/constraints"
)

// Item - A key and value pair stored in a table
type Item[K constraints.Integer, V any] struct {
	Key   K
	Value V
}

// String - Renders the item as key=value
func (I Item[K, V]) String() string {
	return fmt.Sprintf("%v=%v", I.Key, I.Value)
}

// Items - Is used to iterate over stored entries one by one. Tables using OrderedDoubleHashing are iterated in
// insertion order, all others in slot order. The table must not be modified while iterating.
type Items[K constraints.Integer, V any] struct {
	table *Table[K, V]
	order *ordered.Iterator
	slot  int64
}

// Iterator - Returns an Items iterator positioned at the first entry
func (T *Table[K, V]) Iterator() *Items[K, V] {
	items := &Items[K, V]{table: T}
	if T.order != nil {
		items.order = T.order.Iterator()
	}
	items.skipFree()

	return items
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (O *Items[K, V]) HasNext() bool {
	if O.order != nil {
		return O.order.HasNext()
	}

	return O.slot < O.table.store.Capacity()
}

// Next - Returns next entry.
// It returns:
//   - item is the next entry.
//   - err is of type crt.KeyNotFound if there are no more entries when calling this function.
func (O *Items[K, V]) Next() (item Item[K, V], err error) {
	var slot int64
	if O.order != nil {
		slot, err = O.order.Next()
		if err != nil {
			return
		}
	} else {
		if O.slot >= O.table.store.Capacity() {
			err = crt.KeyNotFound{}
			return
		}
		slot = O.slot
		O.slot++
		O.skipFree()
	}

	s := O.table.store.Get(slot)
	item = Item[K, V]{Key: s.Key, Value: s.Value}

	return
}

// skipFree - Moves the slot cursor forward to the next occupied slot
func (O *Items[K, V]) skipFree() {
	if O.order != nil {
		return
	}
	for O.slot < O.table.store.Capacity() && !O.table.store.Get(O.slot).IsOccupied() {
		O.slot++
	}
}

// GetItems - Returns all stored entries, in insertion order for OrderedDoubleHashing and slot order otherwise
func (T *Table[K, V]) GetItems() (items []Item[K, V]) {
	items = make([]Item[K, V], 0, T.store.Count())

	iter := T.Iterator()
	for iter.HasNext() {
		item, err := iter.Next()
		if err != nil {
			break
		}
		items = append(items, item)
	}

	return
}

// String - Renders the physical slot layout, one slot per line. The format is meant for diagnostics and is not stable.
func (T *Table[K, V]) String() string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "%s table, capacity %d, count %d, tombstones %d\n",
		T.Strategy(), T.store.Capacity(), T.store.Count(), T.store.Tombstones())

	for i := int64(0); i < T.store.Capacity(); i++ {
		s := T.store.Get(i)
		switch s.State {
		case model.SlotEmpty:
			_, _ = fmt.Fprintf(&sb, "%d: <empty>\n", i)
		case model.SlotTombstone:
			_, _ = fmt.Fprintf(&sb, "%d: <tombstone>\n", i)
		default:
			_, _ = fmt.Fprintf(&sb, "%d: %v=%v\n", i, s.Key, s.Value)
		}
	}

	return sb.String()
}
