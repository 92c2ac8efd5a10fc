package engine

// slotIndex names a live arena entry. The generation makes an index taken
// before a removal stop resolving once its slot has been reused.
type slotIndex struct {
	slot       uint32
	generation uint32
}

type arenaSlot[T any] struct {
	value      T
	generation uint32
	occupied   bool
	// nextFree is the following free slot plus one; zero ends the list.
	nextFree int
}

// arena is a slot store backed by a free list. Removing an entry leaves
// every other entry where it is, so indices handed out stay valid until
// their own entry goes away. The zero value is an empty arena.
type arena[T any] struct {
	slots []arenaSlot[T]
	free  int // first free slot plus one
	live  int
}

func (a *arena[T]) insert(v T) slotIndex {
	a.live++
	if a.free != 0 {
		i := a.free - 1
		s := &a.slots[i]
		a.free = s.nextFree
		s.value = v
		s.occupied = true
		s.nextFree = 0
		return slotIndex{slot: uint32(i), generation: s.generation}
	}
	a.slots = append(a.slots, arenaSlot[T]{value: v, occupied: true})
	return slotIndex{slot: uint32(len(a.slots) - 1)}
}

func (a *arena[T]) get(idx slotIndex) (*T, bool) {
	if int(idx.slot) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[idx.slot]
	if !s.occupied || s.generation != idx.generation {
		return nil, false
	}
	return &s.value, true
}

func (a *arena[T]) remove(idx slotIndex) (T, bool) {
	var zero T
	if _, ok := a.get(idx); !ok {
		return zero, false
	}
	s := &a.slots[idx.slot]
	v := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	s.nextFree = a.free
	a.free = int(idx.slot) + 1
	a.live--
	return v, true
}

func (a *arena[T]) len() int { return a.live }

// each visits live entries in slot order until fn returns false.
func (a *arena[T]) each(fn func(slotIndex, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		if !fn(slotIndex{slot: uint32(i), generation: s.generation}, &s.value) {
			return
		}
	}
}

// drain empties the arena and returns its live values in slot order.
func (a *arena[T]) drain() []T {
	out := make([]T, 0, a.live)
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		v, _ := a.remove(slotIndex{slot: uint32(i), generation: s.generation})
		out = append(out, v)
	}
	return out
}
