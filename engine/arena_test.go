package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaRemoveKeepsOtherIndices(t *testing.T) {
	var a arena[string]
	x := a.insert("x")
	y := a.insert("y")
	z := a.insert("z")
	assert.Equal(t, 3, a.len())

	v, ok := a.remove(y)
	assert.True(t, ok)
	assert.Equal(t, "y", v)
	assert.Equal(t, 2, a.len())

	got, ok := a.get(x)
	assert.True(t, ok)
	assert.Equal(t, "x", *got)
	got, ok = a.get(z)
	assert.True(t, ok)
	assert.Equal(t, "z", *got)

	_, ok = a.get(y)
	assert.False(t, ok)
	_, ok = a.remove(y)
	assert.False(t, ok) // removing twice fails
}

func TestArenaReusesSlotsWithNewGeneration(t *testing.T) {
	var a arena[int]
	first := a.insert(1)
	a.remove(first)
	second := a.insert(2)

	assert.Equal(t, first.slot, second.slot)
	assert.NotEqual(t, first.generation, second.generation)

	_, ok := a.get(first)
	assert.False(t, ok) // stale index must not see the new value
	got, ok := a.get(second)
	assert.True(t, ok)
	assert.Equal(t, 2, *got)
}

func TestArenaEachAndDrain(t *testing.T) {
	var a arena[int]
	idx := make([]slotIndex, 0, 5)
	for i := 0; i < 5; i++ {
		idx = append(idx, a.insert(i))
	}
	a.remove(idx[1])
	a.remove(idx[3])

	var seen []int
	a.each(func(_ slotIndex, v *int) bool {
		seen = append(seen, *v)
		return true
	})
	assert.Equal(t, []int{0, 2, 4}, seen)

	var firstOnly []int
	a.each(func(_ slotIndex, v *int) bool {
		firstOnly = append(firstOnly, *v)
		return false
	})
	assert.Equal(t, []int{0}, firstOnly)

	assert.Equal(t, []int{0, 2, 4}, a.drain())
	assert.Equal(t, 0, a.len())
	_, ok := a.get(idx[0])
	assert.False(t, ok)

	a.insert(7)
	assert.Equal(t, 1, a.len())
	for _, old := range idx {
		_, ok := a.get(old)
		assert.False(t, ok) // indices from before the drain stay dead
	}
}
