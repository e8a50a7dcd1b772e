package skiplist

import "cmp"

// Iterator walks level 0 in ascending key order.
// It is invalidated by Insert and Delete on the same index.
type Iterator[K cmp.Ordered, V any] struct {
	s   *Index[K, V]
	cur ref
}

// return false if cur is a head or a tail
func (it *Iterator[K, V]) Valid() bool {
	return it.cur != nilRef && it.s.arena.at(it.cur).real
}

func (it *Iterator[K, V]) Key() (key K) {
	if !it.Valid() {
		return key
	}
	return it.s.arena.at(it.cur).key
}

func (it *Iterator[K, V]) Value() (value V) {
	if !it.Valid() {
		return value
	}
	return it.s.arena.at(it.cur).value
}

func (it *Iterator[K, V]) Next() {
	if !it.Valid() {
		panic("Iterator is not valid")
	}
	it.cur = it.s.arena.at(it.cur).right
}

// seek to first node that >= target
func (it *Iterator[K, V]) Seek(target K) {
	a := it.s.descend(target, nil)
	it.cur = it.s.arena.at(a.node).right
}

// seek to the node at rank, invalid if rank is out of range
func (it *Iterator[K, V]) SeekToRank(rank int) {
	r, ok := it.s.walk(rank)
	if !ok {
		it.cur = it.s.tails[0]
		return
	}
	it.cur = r
}

func (it *Iterator[K, V]) SeekToFirst() {
	it.cur = it.s.arena.at(it.s.heads[0]).right
}

func (it *Iterator[K, V]) SeekToLast() {
	it.SeekToRank(it.s.size - 1)
}
