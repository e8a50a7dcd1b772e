package skiplist

import "cmp"

// approach is the rightmost node of a level whose key is < target,
// together with that node's rank (-1 for the head).
type approach struct {
	node ref
	rank int
}

// descend walks from the top-left head towards key and returns the approach
// point at level 0. When path is non-nil it must have Level() entries and
// receives the approach point of every level, path[0] being the bottom.
func (s *Index[K, V]) descend(key K, path []approach) approach {
	top := len(s.heads) - 1
	cur := s.heads[top]
	rank := -1
	for l := top; ; l-- {
		for {
			n := s.arena.at(cur)
			r := s.arena.at(n.right)
			if !r.real || cmp.Compare(r.key, key) >= 0 {
				break
			}
			rank += n.span
			cur = n.right
		}
		if path != nil {
			path[l] = approach{node: cur, rank: rank}
		}
		if l == 0 {
			return approach{node: cur, rank: rank}
		}
		cur = s.arena.at(cur).down
	}
}

// trace fills the index scratch buffer with one approach point per level.
// The returned slice is only valid until the next mutation.
func (s *Index[K, V]) trace(key K) []approach {
	level := len(s.heads)
	if cap(s.path) < level {
		s.path = make([]approach, level, maxLevel)
	}
	path := s.path[:level]
	s.descend(key, path)
	return path
}

// matches reports whether the right neighbor of a holds key.
func (s *Index[K, V]) matches(a approach, key K) (ref, bool) {
	r := s.arena.at(a.node).right
	n := s.arena.at(r)
	return r, n.real && cmp.Compare(n.key, key) == 0
}

// walk stops on the node right before the element at rank. It returns the
// element ref, or false when rank is outside [0, Len()).
func (s *Index[K, V]) walk(rank int) (ref, bool) {
	if rank < 0 || rank >= s.size {
		return nilRef, false
	}
	cur := s.heads[len(s.heads)-1]
	counter := -1
	for counter < rank {
		n := s.arena.at(cur)
		if s.arena.at(n.right).real && counter+n.span < rank {
			counter += n.span
			cur = n.right
			continue
		}
		if n.down == nilRef {
			break
		}
		cur = n.down
	}
	r := s.arena.at(cur).right
	if !s.arena.at(r).real {
		return nilRef, false
	}
	return r, true
}
