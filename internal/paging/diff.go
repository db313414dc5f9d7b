package paging

// Diff describes the incremental change between two windows. Changes are
// only reported between the old window's stable center and the near edge of
// the new window; anything past that is left to a full reload.
//
// The stable center is the old position of the last item of the new window
// that the old window still holds.
type Diff struct {
	from    Items
	to      Items
	removed []int
	added   []int
	overlap bool
}

// NewDiff compares two windows.
func NewDiff(from, to Items) Diff {
	d := Diff{from: from, to: to}

	center, ok := d.stableCenter()
	if !ok {
		return d
	}
	d.overlap = true

	for i, it := range from.items {
		if !to.Contains(it) && i < center {
			d.removed = append(d.removed, i)
		}
	}
	for i, it := range to.items {
		if !from.Contains(it) && i+len(d.removed) <= center {
			d.added = append(d.added, i)
		}
	}
	return d
}

func (d Diff) stableCenter() (int, bool) {
	for i := len(d.to.items) - 1; i >= 0; i-- {
		if d.from.Contains(d.to.items[i]) {
			return d.from.IndexOf(d.to.items[i])
		}
	}
	return 0, false
}

// Removed returns indices in the old window.
func (d Diff) Removed() []int { return d.removed }

// Added returns indices in the new window.
func (d Diff) Added() []int { return d.added }

// Overlaps reports whether the windows share at least one item. When they
// do not, both index lists are empty and the caller should reload fully.
func (d Diff) Overlaps() bool { return d.overlap }

// From returns the old window.
func (d Diff) From() Items { return d.from }

// To returns the new window.
func (d Diff) To() Items { return d.to }
