// Package openhash implements a fixed capacity open addressing hash table with linear probing, quadratic
// probing, double hashing and an insertion ordered double hashing flavor, together with load and probe length
// statistics.
//
// A table never grows. An insert that can not find a free slot within capacity probe attempts fails with
// crt.TableFull and leaves the table untouched; any rehash policy belongs to the caller.
package openhash

import (
	"fmt"

	"github.com/edtbl76/openhash/crt"
	"github.com/edtbl76/openhash/internal/hash"
	"github.com/edtbl76/openhash/internal/ordered"
	"github.com/edtbl76/openhash/internal/storage"
	"github.com/edtbl76/openhash/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Conf - Is a struct to be passed in the call to NewTable
//   - Capacity is the fixed number of slots, it must be higher than 0 (zero). For DoubleHashing and OrderedDoubleHashing it should be a prime, see NearestPrime.
//   - Strategy is the collision resolution technique to use
//   - Logger is an optional zap logger, nil disables logging
type Conf struct {
	Capacity int64
	Strategy crt.Strategy
	Logger   *zap.Logger
}

// TableInfo - Information structure containing some information about the table created
//   - Capacity is the number of slots
//   - Strategy is the collision resolution technique in use
//   - PrimeCapacity tells whether the capacity is a prime number
//   - FullCycle tells whether every probe sequence is guaranteed to visit all slots
//   - Ordered tells whether GetItems returns entries in insertion order
type TableInfo struct {
	Capacity      int64
	Strategy      crt.Strategy
	PrimeCapacity bool
	FullCycle     bool
	Ordered       bool
}

// Table - The main implementation struct. A Table is not safe for concurrent use.
type Table[K constraints.Integer, V any] struct {
	store    *storage.SlotStore[K, V]
	sequence hash.Sequence
	order    *ordered.Index
	logger   *zap.Logger
}

// NewTable - Returns a new table with a fixed number of slots.
//   - conf is a Conf struct with capacity, collision resolution technique and an optional logger
//
// It returns:
//   - table is a pointer to a Table struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created.
//   - err is of type crt.InvalidCapacity if capacity is less than 1, or a standard error if the strategy is unknown
func NewTable[K constraints.Integer, V any](conf Conf) (table *Table[K, V], tableInfo TableInfo, err error) {
	// Check if capacity is valid
	if conf.Capacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	// Check if strategy is valid
	if !conf.Strategy.IsValid() {
		err = fmt.Errorf("unknown collision resolution technique: %s", conf.Strategy)
		return
	}

	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	table = &Table[K, V]{
		store:    storage.NewSlotStore[K, V](conf.Capacity),
		sequence: hash.NewSequence(conf.Strategy, conf.Capacity),
		logger:   logger.With(zap.Stringer("strategy", conf.Strategy), zap.Int64("capacity", conf.Capacity)),
	}
	if conf.Strategy == crt.OrderedDoubleHashing {
		table.order = ordered.NewIndex(conf.Capacity)
	}

	isPrime := utils.IsPrime(conf.Capacity)
	tableInfo = TableInfo{
		Capacity:      conf.Capacity,
		Strategy:      conf.Strategy,
		PrimeCapacity: isPrime,
		FullCycle:     conf.Strategy == crt.LinearProbing || (conf.Strategy.IsDoubleHashing() && (isPrime || conf.Capacity == 1)),
		Ordered:       table.order != nil,
	}

	if conf.Strategy.IsDoubleHashing() && !tableInfo.FullCycle {
		table.logger.Warn("capacity is not a prime, double hashing may not reach every slot",
			zap.Int64("nearestPrime", utils.NearestPrime(conf.Capacity)))
	}

	return
}

// New - Returns a new table given capacity and collision resolution technique, see NewTable
func New[K constraints.Integer, V any](capacity int64, strategy crt.Strategy) (table *Table[K, V], err error) {
	table, _, err = NewTable[K, V](Conf{Capacity: capacity, Strategy: strategy})
	return
}

// NearestPrime - Returns capacity if it is a prime, otherwise the nearest higher prime.
// Use it to pick a capacity for DoubleHashing and OrderedDoubleHashing.
func NearestPrime(capacity int64) int64 {
	return utils.NearestPrime(capacity)
}

// Capacity - Returns the fixed number of slots
func (T *Table[K, V]) Capacity() int64 {
	return T.store.Capacity()
}

// Count - Returns the number of stored entries
func (T *Table[K, V]) Count() int64 {
	return T.store.Count()
}

// Tombstones - Returns the number of slots marked as deleted
func (T *Table[K, V]) Tombstones() int64 {
	return T.store.Tombstones()
}

// Strategy - Returns the collision resolution technique chosen at construction
func (T *Table[K, V]) Strategy() crt.Strategy {
	return T.sequence.GetStrategy()
}

// Clear - Removes all entries and tombstones, leaving every slot empty
func (T *Table[K, V]) Clear() {
	for i := int64(0); i < T.store.Capacity(); i++ {
		T.store.MarkEmpty(i)
		if T.order != nil {
			T.order.Remove(i)
		}
	}
}
