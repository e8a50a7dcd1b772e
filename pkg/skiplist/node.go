package skiplist

import "cmp"

type ref int32

const nilRef ref = -1

// node is one level of a key's tower. head and tail sentinels have real == false.
//
// span counts the level 0 elements between this node (exclusive) and right (inclusive).
// The tail of a level sits at position Len(), so a head's span to its tail is Len()+1.
type node[K cmp.Ordered, V any] struct {
	down  ref
	right ref
	span  int
	real  bool
	key   K
	// value is only set on the level 0 node of a tower
	value V
}

// arena owns every node of an index. right/down are indexes into nodes,
// so unlinking a tower is a few slot writes and the slots are recycled.
type arena[K cmp.Ordered, V any] struct {
	nodes []node[K, V]
	free  []ref
}

// alloc may grow nodes, pointers returned by at() before the call are stale after it.
func (a *arena[K, V]) alloc(n node[K, V]) ref {
	if l := len(a.free); l > 0 {
		r := a.free[l-1]
		a.free = a.free[:l-1]
		a.nodes[r] = n
		return r
	}
	a.nodes = append(a.nodes, n)
	return ref(len(a.nodes) - 1)
}

func (a *arena[K, V]) release(r ref) {
	a.nodes[r] = node[K, V]{down: nilRef, right: nilRef}
	a.free = append(a.free, r)
}

func (a *arena[K, V]) at(r ref) *node[K, V] {
	return &a.nodes[r]
}

// live returns the number of occupied slots, sentinels included.
func (a *arena[K, V]) live() int {
	return len(a.nodes) - len(a.free)
}
