// Package ranklist provides Board, a ranked key/value table safe for
// concurrent use, on top of the order-statistics skip list in pkg/skiplist.
package ranklist

import (
	"cmp"
	"ranklist/pkg/skiplist"
	"sync"

	"github.com/sirupsen/logrus"
)

// Board serializes writers against each other and against readers.
// Readers share the lock.
type Board[K cmp.Ordered, V any] struct {
	mu  sync.RWMutex
	idx *skiplist.Index[K, V]
}

func NewBoard[K cmp.Ordered, V any](opt skiplist.Options) *Board[K, V] {
	return &Board[K, V]{
		idx: skiplist.NewWithOptions[K, V](opt),
	}
}

// Put stores value under key, replacing any previous value.
func (b *Board[K, V]) Put(key K, value V) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.idx.Insert(key, value)
	logrus.Debugf("board put %v, len %d", key, b.idx.Len())
}

func (b *Board[K, V]) Get(key K) (V, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.idx.Find(key)
}

// Delete reports whether key was present.
func (b *Board[K, V]) Delete(key K) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	ok := b.idx.Delete(key)
	if ok {
		logrus.Debugf("board delete %v, len %d", key, b.idx.Len())
	}
	return ok
}

// Rank returns the 0-based position of key in ascending key order.
func (b *Board[K, V]) Rank(key K) (int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.idx.RankOf(key)
}

// At returns the entry at rank.
func (b *Board[K, V]) At(rank int) (key K, value V, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	it := b.idx.Iterator()
	it.SeekToRank(rank)
	if !it.Valid() {
		return key, value, false
	}
	return it.Key(), it.Value(), true
}

func (b *Board[K, V]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.idx.Len()
}

// Range calls fn for ranks in [from, to) in order until fn returns false.
// fn must not call back into the board.
func (b *Board[K, V]) Range(from, to int, fn func(key K, value V) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	from = max(from, 0)
	to = min(to, b.idx.Len())
	it := b.idx.Iterator()
	it.SeekToRank(from)
	for r := from; r < to && it.Valid(); r++ {
		if !fn(it.Key(), it.Value()) {
			return
		}
		it.Next()
	}
}
