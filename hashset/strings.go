package hashset

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

type strslot struct {
	gen  uint32
	hash uint64
	// ref points into the source buffer, nothing is copied on lookup. Refs
	// are only valid until the source buffer is released, which the dedup
	// loop bounds to one row's processing.
	ref string
}

// Strings is a clearable set of byte content. Two references with identical
// bytes are equal regardless of where they point.
type Strings struct {
	slots []strslot
	mask  uint64
	gen   uint32
	live  int
}

func NewStrings() *Strings {
	n := uint64(defaultCapacity) * 2
	return &Strings{
		slots: make([]strslot, n),
		mask:  n - 1,
		gen:   1,
	}
}

func (s *Strings) Len() int { return s.live }

func (s *Strings) Clear() {
	s.live = 0
	s.gen++
	if s.gen == 0 {
		for i := range s.slots {
			s.slots[i] = strslot{}
		}
		s.gen = 1
	}
}

// Insert adds v and reports whether its content was absent.
func (s *Strings) Insert(v string) bool {
	return s.insert(v, xxhash.Sum64String(v))
}

// InsertBytes is Insert for raw buffers. The slice is reinterpreted, not
// copied, so it must not be mutated while the set is live.
func (s *Strings) InsertBytes(b []byte) bool {
	var v string
	if len(b) > 0 {
		v = unsafe.String(unsafe.SliceData(b), len(b))
	}
	return s.insert(v, xxhash.Sum64(b))
}

func (s *Strings) insert(v string, h uint64) bool {
	if s.live*2 >= len(s.slots) {
		s.grow()
	}
	i := h & s.mask
	for {
		sl := &s.slots[i]
		if sl.gen != s.gen {
			sl.gen = s.gen
			sl.hash = h
			sl.ref = v
			s.live++
			return true
		}
		if sl.hash == h && sl.ref == v {
			return false
		}
		i = (i + 1) & s.mask
	}
}

func (s *Strings) grow() {
	old := s.slots
	gen := s.gen
	s.slots = make([]strslot, len(old)*2)
	s.mask = uint64(len(s.slots)) - 1
	s.gen = 1
	for i := range old {
		if old[i].gen != gen {
			continue
		}
		j := old[i].hash & s.mask
		for s.slots[j].gen == 1 {
			j = (j + 1) & s.mask
		}
		s.slots[j] = strslot{gen: 1, hash: old[i].hash, ref: old[i].ref}
	}
}
