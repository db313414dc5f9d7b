package source

import (
	"strconv"
	"strings"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// Index is the integer sequence of paging.IndexItem values, optionally
// bounded on either side.
type Index struct {
	min, max       int
	hasMin, hasMax bool
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithMin stops the sequence before n.
func WithMin(n int) IndexOption {
	return func(x *Index) {
		x.min, x.hasMin = n, true
	}
}

// WithMax stops the sequence after n.
func WithMax(n int) IndexOption {
	return func(x *Index) {
		x.max, x.hasMax = n, true
	}
}

func NewIndex(opts ...IndexOption) *Index {
	x := &Index{}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

func (x *Index) contains(i int) bool {
	return (!x.hasMin || i >= x.min) && (!x.hasMax || i <= x.max)
}

// Clamp moves i into the bounds.
func (x *Index) Clamp(i int) int {
	if x.hasMin && i < x.min {
		i = x.min
	}
	if x.hasMax && i > x.max {
		i = x.max
	}
	return i
}

func (x *Index) ItemBefore(item paging.Item) (paging.Item, bool) {
	i := item.Order - 1
	if !x.contains(i) {
		return paging.Item{}, false
	}
	return paging.IndexItem(i), true
}

func (x *Index) ItemAfter(item paging.Item) (paging.Item, bool) {
	i := item.Order + 1
	if !x.contains(i) {
		return paging.Item{}, false
	}
	return paging.IndexItem(i), true
}

// Lookup accepts "12" or "item-12".
func (x *Index) Lookup(ref string) (paging.Item, bool) {
	i, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(ref), "item-"))
	if err != nil || !x.contains(i) {
		return paging.Item{}, false
	}
	return paging.IndexItem(i), true
}
