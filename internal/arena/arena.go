// SPDX-License-Identifier: Unlicense OR MIT

// Package arena implements a generational slot arena. Slot indices are
// reused; generation stamps invalidate handles to reclaimed slots so a
// stale handle misses instead of aliasing the slot's new occupant.
package arena

// ID is a handle to one arena slot. The zero ID refers to the first
// slot ever allocated; use Valid results from Get rather than comparing
// against zero.
type ID struct {
	index      int32
	generation uint32
}

// Index returns the slot index, for display purposes.
func (id ID) Index() int {
	return int(id.index)
}

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Arena is a generational slot collection. The zero value is ready to
// use.
type Arena[T any] struct {
	slots []slot[T]
	free  []int32
	count int
}

// Alloc stores value in a free slot and returns its handle.
func (a *Arena[T]) Alloc(value T) ID {
	a.count++
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[i]
		s.value = value
		s.live = true
		return ID{index: i, generation: s.generation}
	}
	a.slots = append(a.slots, slot[T]{value: value, live: true})
	return ID{index: int32(len(a.slots) - 1)}
}

// Get returns a pointer to the value for id, nil if id was freed or its
// slot reclaimed. The pointer is valid until the next Alloc.
func (a *Arena[T]) Get(id ID) *T {
	if id.index < 0 || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if !s.live || s.generation != id.generation {
		return nil
	}
	return &s.value
}

// Free releases id's slot for reuse, bumping its generation so stale
// handles miss. It reports whether id was live.
func (a *Arena[T]) Free(id ID) bool {
	if a.Get(id) == nil {
		return false
	}
	s := &a.slots[id.index]
	var zero T
	s.value = zero
	s.live = false
	s.generation++
	a.free = append(a.free, id.index)
	a.count--
	return true
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.count
}

// Each calls fn for every live slot. Slots freed by fn are skipped;
// slots allocated by fn may or may not be visited.
func (a *Arena[T]) Each(fn func(ID, *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			fn(ID{index: int32(i), generation: s.generation}, &s.value)
		}
	}
}
