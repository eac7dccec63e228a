package openhash

import (
	"github.com/edtbl76/openhash/crt"
	"go.uber.org/zap"
)

// Add - Adds a new entry to the table.
//   - key is the identifier of the entry, it must not already be in the table
//   - value is the value to store along with the key
//
// It returns:
//   - err is crt.DuplicateKey if key already exists or crt.TableFull if no free slot could be reached. In both cases the table is left unchanged.
//     A table where every slot is occupied always returns crt.TableFull, also for a key it holds.
func (T *Table[K, V]) Add(key K, value V) (err error) {
	var slot int64
	if T.store.Count() == T.store.Capacity() {
		err = crt.TableFull{}
	} else {
		slot, err = T.probingForSet(key)
	}
	if err != nil {
		T.logger.Debug("add rejected", zap.Any("key", key), zap.Error(err))
		return
	}

	T.store.Set(slot, key, value)
	if T.order != nil {
		T.order.Append(slot)
	}

	return
}

// Find - Returns the value stored for key, ok is false if the key is not in the table
func (T *Table[K, V]) Find(key K) (value V, ok bool) {
	slot, _, err := T.probingForGet(key)
	if err != nil {
		return
	}

	value = T.store.Get(slot).Value
	ok = true

	return
}

// Get - Returns the value stored for key.
// It returns:
//   - value is the value of the matching entry if found
//   - err is crt.KeyNotFound if the key is not in the table
func (T *Table[K, V]) Get(key K) (value V, err error) {
	slot, _, err := T.probingForGet(key)
	if err != nil {
		return
	}

	value = T.store.Get(slot).Value

	return
}

// Contains - Returns true if key is in the table
func (T *Table[K, V]) Contains(key K) bool {
	_, _, err := T.probingForGet(key)
	return err == nil
}

// Remove - Removes the entry for key, leaving a tombstone in its slot.
// It returns:
//   - err is crt.KeyNotFound if the key is not in the table
func (T *Table[K, V]) Remove(key K) (err error) {
	_, err = T.Pop(key)
	return
}

// Pop - Returns the value stored for key and removes the entry from the table.
// It returns:
//   - value is the value of the removed entry
//   - err is crt.KeyNotFound if the key is not in the table
func (T *Table[K, V]) Pop(key K) (value V, err error) {
	slot, _, err := T.probingForGet(key)
	if err != nil {
		T.logger.Debug("remove rejected", zap.Any("key", key), zap.Error(err))
		return
	}

	value = T.store.Get(slot).Value
	T.store.MarkTombstone(slot)
	if T.order != nil {
		T.order.Remove(slot)
	}

	return
}
