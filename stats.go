package openhash

import (
	"github.com/RoaringBitmap/roaring/roaring64"
)

// TableStat - Statistics on the overall usage and probe lengths of a table
//   - Capacity is the number of slots
//   - Count is the number of stored entries
//   - Tombstones is the number of slots marked as deleted
//   - Empty is the number of slots never used
//   - FillPercentage is Count / Capacity
//   - MaxProbeLength is the longest probe length over all stored keys
//   - AveProbeLength is the average probe length over all stored keys
//   - Clusters describes runs of consecutive occupied slots
type TableStat struct {
	Capacity       int64
	Count          int64
	Tombstones     int64
	Empty          int64
	FillPercentage float64
	MaxProbeLength int64
	AveProbeLength float64
	Clusters       ClusterStat
}

// ClusterStat - Primary clustering metrics over the physical slot layout. A cluster is a maximal run of
// consecutive occupied slots, a run crossing the end of the table continues at slot 0.
//   - Clusters is the number of runs
//   - Longest is the length of the longest run
//   - Average is the average run length
type ClusterStat struct {
	Clusters int64
	Longest  int64
	Average  float64
}

// FillPercentage - Returns the fraction of slots holding an entry, always within [0, 1]
func (T *Table[K, V]) FillPercentage() float64 {
	return float64(T.store.Count()) / float64(T.store.Capacity())
}

// ProbeLength - Returns the number of probe attempts, starting at 1, needed to reach the slot of key.
// It walks the very same probe sequence as Add and Find do.
// It returns:
//   - length is the probe length
//   - err is crt.KeyNotFound if the key is not in the table
func (T *Table[K, V]) ProbeLength(key K) (length int64, err error) {
	_, length, err = T.probingForGet(key)
	return
}

// MaxLength - Returns the longest probe length over stored keys within [lowBound, highBound], 0 if there are none
func (T *Table[K, V]) MaxLength(lowBound, highBound K) (maxLength int64) {
	T.walkProbeLengths(lowBound, highBound, func(length int64) {
		if length > maxLength {
			maxLength = length
		}
	})

	return
}

// AveLength - Returns the average probe length over stored keys within [lowBound, highBound], 0 if there are none
func (T *Table[K, V]) AveLength(lowBound, highBound K) float64 {
	var total, n int64
	T.walkProbeLengths(lowBound, highBound, func(length int64) {
		total += length
		n++
	})

	if n == 0 {
		return 0
	}

	return float64(total) / float64(n)
}

// Stat - Walks through the entire table and produce a TableStat struct with information
func (T *Table[K, V]) Stat() (tableStat TableStat) {
	var total, n int64

	tableStat = TableStat{
		Capacity:       T.store.Capacity(),
		Count:          T.store.Count(),
		Tombstones:     T.store.Tombstones(),
		Empty:          T.store.Empty(),
		FillPercentage: T.FillPercentage(),
		Clusters:       T.clusters(),
	}

	for i := int64(0); i < T.store.Capacity(); i++ {
		s := T.store.Get(i)
		if !s.IsOccupied() {
			continue
		}
		length := T.mustProbeLength(s.Key)
		if length > tableStat.MaxProbeLength {
			tableStat.MaxProbeLength = length
		}
		total += length
		n++
	}

	if n > 0 {
		tableStat.AveProbeLength = float64(total) / float64(n)
	}

	return
}

// OccupiedSlots - Returns a bitmap with the index of every occupied slot
func (T *Table[K, V]) OccupiedSlots() *roaring64.Bitmap {
	bm := roaring64.New()
	for i := int64(0); i < T.store.Capacity(); i++ {
		if T.store.Get(i).IsOccupied() {
			bm.Add(uint64(i))
		}
	}

	return bm
}

// walkProbeLengths - Calls fn with the probe length of every stored key within [lowBound, highBound]
func (T *Table[K, V]) walkProbeLengths(lowBound, highBound K, fn func(length int64)) {
	if lowBound > highBound {
		return
	}

	for i := int64(0); i < T.store.Capacity(); i++ {
		s := T.store.Get(i)
		if !s.IsOccupied() || s.Key < lowBound || s.Key > highBound {
			continue
		}
		fn(T.mustProbeLength(s.Key))
	}
}

// mustProbeLength - Returns the probe length of a key known to occupy a slot.
// Slots only go back to empty all at once through Clear, so an occupied key is always reachable.
func (T *Table[K, V]) mustProbeLength(key K) int64 {
	length, err := T.ProbeLength(key)
	if err != nil {
		panic("openhash: occupied key not reachable through its probe sequence: " + err.Error())
	}

	return length
}

// clusters - Computes runs of consecutive occupied slots from the occupied slot bitmap
func (T *Table[K, V]) clusters() (cs ClusterStat) {
	bm := T.OccupiedSlots()
	occupied := int64(bm.GetCardinality())
	if occupied == 0 {
		return
	}

	capacity := T.store.Capacity()
	if occupied == capacity {
		cs = ClusterStat{Clusters: 1, Longest: capacity, Average: float64(capacity)}
		return
	}

	var runs []int64
	var prev, run int64 = -2, 0
	it := bm.Iterator()
	for it.HasNext() {
		i := int64(it.Next())
		if i == prev+1 {
			run++
		} else {
			if run > 0 {
				runs = append(runs, run)
			}
			run = 1
		}
		prev = i
	}
	runs = append(runs, run)

	// A run ending in the last slot continues in slot 0
	if len(runs) > 1 && bm.Contains(0) && bm.Contains(uint64(capacity-1)) {
		runs[0] += runs[len(runs)-1]
		runs = runs[:len(runs)-1]
	}

	cs.Clusters = int64(len(runs))
	for _, r := range runs {
		if r > cs.Longest {
			cs.Longest = r
		}
	}
	cs.Average = float64(occupied) / float64(cs.Clusters)

	return
}

// ProbeSequence - Returns the slot indices the table examines for key, in order, one per permitted attempt
func (T *Table[K, V]) ProbeSequence(key K) (slots []int64) {
	hf1Value, hf2Value := T.hashValues(key)

	slots = make([]int64, T.sequence.Attempts())
	for i := range slots {
		slots[i] = T.sequence.ProbeIteration(hf1Value, hf2Value, int64(i))
	}

	return
}
