// Package hashset provides row scoped hash sets for the dedup kernels. Sets
// are cleared once per row and reused, Clear stamps a new generation instead
// of touching slots so it is O(1) and never frees memory.
package hashset

// Sized for typical small rows, growth beyond this reallocates normally.
const defaultCapacity = 512

type slot[K comparable] struct {
	gen uint32
	key K
}

// Set is an open addressing set with caller supplied hashing. The zero value
// is not usable, construct with New.
type Set[K comparable] struct {
	hash  func(K) uint64
	slots []slot[K]
	mask  uint64
	gen   uint32
	live  int
}

func New[K comparable](hash func(K) uint64) *Set[K] {
	return NewSize[K](defaultCapacity, hash)
}

func NewSize[K comparable](capacity int, hash func(K) uint64) *Set[K] {
	n := uint64(8)
	// Slots stay at most half full.
	for n < uint64(capacity)*2 {
		n <<= 1
	}
	return &Set[K]{
		hash:  hash,
		slots: make([]slot[K], n),
		mask:  n - 1,
		gen:   1,
	}
}

// Len reports the number of keys inserted since the last Clear.
func (s *Set[K]) Len() int { return s.live }

// Clear empties the set, keeping the slot storage.
func (s *Set[K]) Clear() {
	s.live = 0
	s.gen++
	if s.gen == 0 {
		// Generation counter wrapped, stamp everything dead.
		for i := range s.slots {
			s.slots[i].gen = 0
		}
		s.gen = 1
	}
}

// Insert adds k and reports whether it was absent, first seen wins.
func (s *Set[K]) Insert(k K) bool {
	if s.live*2 >= len(s.slots) {
		s.grow()
	}
	i := s.hash(k) & s.mask
	for {
		sl := &s.slots[i]
		if sl.gen != s.gen {
			sl.gen = s.gen
			sl.key = k
			s.live++
			return true
		}
		if sl.key == k {
			return false
		}
		i = (i + 1) & s.mask
	}
}

func (s *Set[K]) grow() {
	old := s.slots
	gen := s.gen
	s.slots = make([]slot[K], len(old)*2)
	s.mask = uint64(len(s.slots)) - 1
	s.gen = 1
	for i := range old {
		if old[i].gen != gen {
			continue
		}
		j := s.hash(old[i].key) & s.mask
		for s.slots[j].gen == 1 {
			j = (j + 1) & s.mask
		}
		s.slots[j] = slot[K]{gen: 1, key: old[i].key}
	}
}
