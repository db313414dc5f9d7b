package paging

import (
	"math"
	"sort"
)

// Items is the window of materialized menu items. The items are kept in
// logical order. HasItemsBefore and HasItemsAfter report whether the window
// stops short of the logical edges of the data source.
type Items struct {
	items     []Item
	ids       map[string]struct{}
	hasBefore bool
	hasAfter  bool
}

// NewItems builds a window. The slice is copied.
func NewItems(items []Item, hasItemsBefore, hasItemsAfter bool) Items {
	cp := make([]Item, len(items))
	copy(cp, items)
	ids := make(map[string]struct{}, len(cp))
	for _, it := range cp {
		ids[it.ID] = struct{}{}
	}
	return Items{items: cp, ids: ids, hasBefore: hasItemsBefore, hasAfter: hasItemsAfter}
}

// Len returns the number of materialized items.
func (w Items) Len() int { return len(w.items) }

// At returns the item at index i.
func (w Items) At(i int) Item { return w.items[i] }

// Items returns a copy of the materialized items.
func (w Items) Items() []Item {
	cp := make([]Item, len(w.items))
	copy(cp, w.items)
	return cp
}

// HasItemsBefore reports whether the data source has items before the window.
func (w Items) HasItemsBefore() bool { return w.hasBefore }

// HasItemsAfter reports whether the data source has items after the window.
func (w Items) HasItemsAfter() bool { return w.hasAfter }

// Contains reports whether an item with the same identity is materialized.
func (w Items) Contains(item Item) bool {
	_, ok := w.ids[item.ID]
	return ok
}

// First returns the first item of the window.
func (w Items) First() (Item, bool) {
	if len(w.items) == 0 {
		return Item{}, false
	}
	return w.items[0], true
}

// Last returns the last item of the window.
func (w Items) Last() (Item, bool) {
	if len(w.items) == 0 {
		return Item{}, false
	}
	return w.items[len(w.items)-1], true
}

// IndexOf returns the index of item. When several entries match, the one
// closest to the center of the window wins.
func (w Items) IndexOf(item Item) (int, bool) {
	center := float64(len(w.items)-1) / 2
	return w.indexNearest(item, center)
}

// IndexNear returns the index of item closest to the position of base.
func (w Items) IndexNear(item, base Item) (int, bool) {
	b, ok := w.IndexOf(base)
	if !ok {
		return 0, false
	}
	return w.indexNearest(item, float64(b))
}

func (w Items) indexNearest(item Item, pos float64) (int, bool) {
	best, bestDiff := -1, math.MaxFloat64
	for i, it := range w.items {
		if !it.Equal(item) {
			continue
		}
		if d := math.Abs(pos - float64(i)); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best, best >= 0
}

// IsBefore compares two items by their positions in the window, falling back
// to the items' own ordering when either one is not materialized.
func (w Items) IsBefore(a, b Item) bool {
	ai, ok := w.IndexOf(a)
	if !ok {
		return a.Before(b)
	}
	bi, ok := w.indexNearest(b, float64(ai))
	if !ok {
		return a.Before(b)
	}
	return ai < bi
}

// IsSibling reports whether both items are materialized next to each other.
func (w Items) IsSibling(from, to Item) bool {
	fi, ok := w.IndexOf(from)
	if !ok {
		return false
	}
	ti, ok := w.indexNearest(to, float64(fi))
	if !ok {
		return false
	}
	return fi == ti-1 || fi-1 == ti
}

// Direction returns the direction from one item to another.
func (w Items) Direction(from, to Item) Direction {
	switch {
	case w.IsBefore(from, to):
		return Forward(w.IsSibling(from, to))
	case w.IsBefore(to, from):
		return Reverse(w.IsSibling(from, to))
	default:
		return None()
	}
}

// Union returns the sorted, de-duplicated union of both windows. The edge
// flags are not carried over.
func Union(a, b []Item) []Item {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]Item, 0, len(a)+len(b))
	for _, list := range [][]Item{a, b} {
		for _, it := range list {
			if _, ok := seen[it.ID]; ok {
				continue
			}
			seen[it.ID] = struct{}{}
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
