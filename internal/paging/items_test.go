package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexItems(from, to int) []Item {
	out := make([]Item, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, IndexItem(i))
	}
	return out
}

func TestItemsIndexOf(t *testing.T) {
	w := NewItems(indexItems(0, 2), false, false)

	idx, ok := w.IndexOf(IndexItem(0))
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = w.IndexOf(IndexItem(9))
	assert.False(t, ok)

	assert.Equal(t, IndexItem(0), w.At(0))
}

func TestItemsIndexOfPrefersCenter(t *testing.T) {
	dup := IndexItem(1)
	w := NewItems([]Item{dup, IndexItem(2), IndexItem(3), dup, IndexItem(4)}, false, false)

	idx, ok := w.IndexOf(dup)
	require.True(t, ok)
	assert.Equal(t, 3, idx, "closest to center index 2 is 3")

	idx, ok = w.IndexNear(dup, IndexItem(2))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestItemsDirection(t *testing.T) {
	w := NewItems(indexItems(0, 9), true, true)

	tests := []struct {
		name string
		from Item
		to   Item
		want Direction
	}{
		{name: "forward sibling", from: IndexItem(0), to: IndexItem(1), want: Forward(true)},
		{name: "reverse sibling", from: IndexItem(1), to: IndexItem(0), want: Reverse(true)},
		{name: "forward non sibling", from: IndexItem(2), to: IndexItem(4), want: Forward(false)},
		{name: "reverse non sibling", from: IndexItem(7), to: IndexItem(3), want: Reverse(false)},
		{name: "same item", from: IndexItem(3), to: IndexItem(3), want: None()},
		{name: "outside window uses ordering", from: IndexItem(9), to: IndexItem(10), want: Forward(false)},
		{name: "both outside window", from: IndexItem(30), to: IndexItem(20), want: Reverse(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Direction(tt.from, tt.to))
		})
	}
}

func TestItemsDirectionSiblingConsistency(t *testing.T) {
	for n := 3; n <= 12; n++ {
		w := NewItems(indexItems(100, 100+n-1), true, true)
		for i := 0; i+1 < n; i++ {
			assert.Equal(t, Forward(true), w.Direction(w.At(i), w.At(i+1)))
		}
		for i := 0; i+2 < n; i++ {
			assert.Equal(t, Forward(false), w.Direction(w.At(i), w.At(i+2)))
		}
	}
}

func TestItemsFlagsAndCopy(t *testing.T) {
	src := indexItems(0, 2)
	w := NewItems(src, true, false)
	src[0] = IndexItem(42)

	assert.True(t, w.HasItemsBefore())
	assert.False(t, w.HasItemsAfter())
	assert.Equal(t, IndexItem(0), w.At(0))
	first, ok := w.First()
	require.True(t, ok)
	assert.Equal(t, IndexItem(0), first)
	last, ok := w.Last()
	require.True(t, ok)
	assert.Equal(t, IndexItem(2), last)

	_, ok = NewItems(nil, false, false).First()
	assert.False(t, ok)
}

func TestUnion(t *testing.T) {
	got := Union(indexItems(6, 8), indexItems(0, 2))
	assert.Equal(t, []Item{
		IndexItem(0), IndexItem(1), IndexItem(2),
		IndexItem(6), IndexItem(7), IndexItem(8),
	}, got)

	got = Union(indexItems(0, 3), indexItems(2, 5))
	assert.Equal(t, indexItems(0, 5), got)
}

func TestItemBefore(t *testing.T) {
	assert.True(t, IndexItem(1).Before(IndexItem(2)))
	assert.False(t, IndexItem(2).Before(IndexItem(1)))
	a := Item{ID: "a", Order: 1}
	b := Item{ID: "b", Order: 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, "Item 3", IndexItem(3).Label())
	assert.Equal(t, "x", Item{ID: "x"}.Label())
}
