package ordered

import "github.com/edtbl76/openhash/crt"

// none - Link value marking the absence of a neighbour
const none int64 = -1

// node - Links of one slot in the insertion order list
type node struct {
	prev   int64
	next   int64
	linked bool
}

// Index - Insertion order index over slot indices. It is an arena of list nodes with one node per slot, so the
// back reference from a slot to its node is the slot index itself. Append and Remove are both O(1).
type Index struct {
	nodes []node
	head  int64
	tail  int64
	n     int64
}

// NewIndex - Returns a pointer to a new, empty Index for a table with capacity slots
func NewIndex(capacity int64) *Index {
	nodes := make([]node, capacity)
	for i := range nodes {
		nodes[i] = node{prev: none, next: none}
	}

	return &Index{nodes: nodes, head: none, tail: none}
}

// Len - Returns the number of slots in the index
func (I *Index) Len() int64 {
	return I.n
}

// Contains - Returns true if slot is linked into the index
func (I *Index) Contains(slot int64) bool {
	return I.nodes[slot].linked
}

// Append - Links slot last in insertion order. Appending a slot that is already linked is a no-op.
func (I *Index) Append(slot int64) {
	nd := &I.nodes[slot]
	if nd.linked {
		return
	}

	nd.prev = I.tail
	nd.next = none
	nd.linked = true

	if I.tail == none {
		I.head = slot
	} else {
		I.nodes[I.tail].next = slot
	}
	I.tail = slot
	I.n++
}

// Remove - Unlinks slot from the index. Removing a slot that is not linked is a no-op.
func (I *Index) Remove(slot int64) {
	nd := &I.nodes[slot]
	if !nd.linked {
		return
	}

	if nd.prev == none {
		I.head = nd.next
	} else {
		I.nodes[nd.prev].next = nd.next
	}
	if nd.next == none {
		I.tail = nd.prev
	} else {
		I.nodes[nd.next].prev = nd.prev
	}

	*nd = node{prev: none, next: none}
	I.n--
}

// Slots - Returns all linked slot indices in insertion order
func (I *Index) Slots() (slots []int64) {
	slots = make([]int64, 0, I.n)
	for s := I.head; s != none; s = I.nodes[s].next {
		slots = append(slots, s)
	}

	return
}

// Iterator - Returns an iterator positioned at the oldest slot
func (I *Index) Iterator() *Iterator {
	return &Iterator{index: I, slot: I.head}
}

// Iterator - Is used to iterate over linked slots one by one in insertion order.
type Iterator struct {
	index *Index
	slot  int64
}

// HasNext - Returns true if there are more slots to be fetched from a call to Next.
func (O *Iterator) HasNext() bool {
	return O.slot != none
}

// Next - Returns next slot index.
// It returns:
//   - slot is the next slot index in insertion order.
//   - err is of type crt.KeyNotFound if there are no more slots when calling this function.
func (O *Iterator) Next() (slot int64, err error) {
	if O.slot == none {
		err = crt.KeyNotFound{}
		return
	}

	slot = O.slot
	O.slot = O.index.nodes[slot].next

	return
}
