// Package skiplist implements an order-statistics skip list: a sorted
// key/value index that also answers rank queries in both directions.
//
// Every horizontal edge carries a span, the number of level 0 elements it
// skips. Summing spans while descending gives the rank of a key, and
// following spans from the top gives the key at a rank.
//
// An Index is not safe for concurrent use. Readers may run in parallel
// with each other but not with Insert or Delete.
package skiplist

import (
	"cmp"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	maxLevel = 32
	p        = 0.5
)

type Index[K cmp.Ordered, V any] struct {
	arena arena[K, V]
	// heads[i] and tails[i] bound level i, both stacked through down
	heads []ref
	tails []ref
	size  int
	seed  *rand.Rand

	// scratch for Insert/Delete
	path []approach
}

func New[K cmp.Ordered, V any]() *Index[K, V] {
	return NewWithOptions[K, V](DefaultOptions)
}

func NewWithOptions[K cmp.Ordered, V any](opt Options) *Index[K, V] {
	seed := opt.Rand
	if seed == nil {
		s := opt.Seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		seed = rand.New(rand.NewSource(s))
	}

	s := &Index[K, V]{
		seed: seed,
		path: make([]approach, 1, maxLevel),
	}
	tail := s.arena.alloc(node[K, V]{down: nilRef, right: nilRef})
	head := s.arena.alloc(node[K, V]{down: nilRef, right: tail, span: 1})
	s.heads = append(s.heads, head)
	s.tails = append(s.tails, tail)
	return s
}

// Find returns the value stored under key.
func (s *Index[K, V]) Find(key K) (value V, ok bool) {
	r, ok := s.matches(s.descend(key, nil), key)
	if !ok {
		return value, false
	}
	return s.arena.at(r).value, true
}

// RankOf returns the 0-based position of key among all stored keys.
func (s *Index[K, V]) RankOf(key K) (int, bool) {
	a := s.descend(key, nil)
	if _, ok := s.matches(a, key); !ok {
		return -1, false
	}
	return a.rank + 1, true
}

// ByRank returns the value of the rank-th smallest key.
func (s *Index[K, V]) ByRank(rank int) (value V, ok bool) {
	r, ok := s.walk(rank)
	if !ok {
		return value, false
	}
	return s.arena.at(r).value, true
}

// KeyByRank returns the rank-th smallest key.
func (s *Index[K, V]) KeyByRank(rank int) (key K, ok bool) {
	r, ok := s.walk(rank)
	if !ok {
		return key, false
	}
	return s.arena.at(r).key, true
}

// Insert stores value under key, replacing the value of an existing key.
func (s *Index[K, V]) Insert(key K, value V) {
	height := s.randomLevel()
	if height > len(s.heads) {
		s.grow(height)
	}

	path := s.trace(key)
	if r, ok := s.matches(path[0], key); ok {
		s.arena.at(r).value = value
		return
	}

	rank := path[0].rank + 1
	down := nilRef
	for l, a := range path {
		if l >= height {
			s.arena.at(a.node).span++
			continue
		}

		prev := s.arena.at(a.node)
		right, span := prev.right, prev.span+1-(rank-a.rank)
		n := node[K, V]{down: down, right: right, span: span, real: true, key: key}
		if l == 0 {
			n.value = value
		}
		r := s.arena.alloc(n)

		prev = s.arena.at(a.node)
		prev.span = prev.span + 1 - span
		prev.right = r
		down = r
	}
	s.size++
}

// Delete removes key and its whole tower. It reports false, leaving the
// index untouched, when key is absent.
func (s *Index[K, V]) Delete(key K) bool {
	path := s.trace(key)
	if _, ok := s.matches(path[0], key); !ok {
		return false
	}

	for _, a := range path {
		prev := s.arena.at(a.node)
		r, ok := s.matches(a, key)
		if !ok {
			prev.span--
			continue
		}
		n := s.arena.at(r)
		prev.right = n.right
		prev.span += n.span - 1
		s.arena.release(r)
	}
	s.size--
	return true
}

func (s *Index[K, V]) Len() int {
	return s.size
}

// Level returns the number of levels, it never shrinks.
func (s *Index[K, V]) Level() int {
	return len(s.heads)
}

func (s *Index[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		s:   s,
		cur: s.heads[0],
	}
}

// grow stacks new empty levels until there are height of them.
func (s *Index[K, V]) grow(height int) {
	logrus.Debugf("skiplist grow level %d -> %d, size %d", len(s.heads), height, s.size)
	for len(s.heads) < height {
		top := len(s.heads) - 1
		tail := s.arena.alloc(node[K, V]{down: s.tails[top], right: nilRef})
		head := s.arena.alloc(node[K, V]{down: s.heads[top], right: tail, span: s.size + 1})
		s.heads = append(s.heads, head)
		s.tails = append(s.tails, tail)
	}
}

func (s *Index[K, V]) randomLevel() int {
	level := 1
	for level < maxLevel && s.seed.Float64() < p {
		level++
	}
	return level
}

func (s *Index[K, V]) printLevel(i int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("level %d: head(%d)", i, s.arena.at(s.heads[i]).span))
	for n := s.arena.at(s.arena.at(s.heads[i]).right); n.real; n = s.arena.at(n.right) {
		sb.WriteString(fmt.Sprintf(" -> %v(%d)", n.key, n.span))
	}
	sb.WriteString(" -> nil")
	return sb.String()
}

func (s *Index[K, V]) String() string {
	var ss strings.Builder
	ss.WriteString(fmt.Sprintf("[level=%d,size=%d]\n", len(s.heads), s.size))

	for i := len(s.heads) - 1; i >= 0; i-- {
		ss.WriteString(s.printLevel(i))
		ss.WriteByte('\n')
	}
	return ss.String()
}
