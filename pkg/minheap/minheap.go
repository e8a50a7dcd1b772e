// Package minheap is a binary min-heap keyed by a float64 score.
// Equal scores are allowed and pop in the order they were pushed.
package minheap

import "container/heap"

type Heap[T any] struct {
	hp  hp[T]
	seq uint64
}

func New[T any]() *Heap[T] {
	return &Heap[T]{
		hp: make(hp[T], 0),
	}
}

func (h *Heap[T]) Push(score float64, item T) {
	heap.Push(&h.hp, info[T]{
		score: score,
		seq:   h.seq,
		item:  item,
	})
	h.seq++
}

// Pop removes the item with the smallest score.
func (h *Heap[T]) Pop() (score float64, item T, ok bool) {
	if h.hp.Len() == 0 {
		return 0, item, false
	}
	top := heap.Pop(&h.hp).(info[T])
	return top.score, top.item, true
}

func (h *Heap[T]) Peek() (score float64, item T, ok bool) {
	if h.hp.Len() == 0 {
		return 0, item, false
	}
	return h.hp[0].score, h.hp[0].item, true
}

func (h *Heap[T]) Len() int {
	return h.hp.Len()
}

type info[T any] struct {
	score float64
	// push order, breaks ties between equal scores
	seq  uint64
	item T
}

type hp[T any] []info[T]

func (h hp[T]) Len() int { return len(h) }
func (h hp[T]) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}
func (h hp[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *hp[T]) Push(x any) {
	*h = append(*h, x.(info[T]))
}
func (h *hp[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = info[T]{}
	*h = old[0 : n-1]
	return x
}
