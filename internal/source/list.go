package source

import (
	"sort"
	"strings"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
	"github.com/oakwood-commons/pagingmenu/pkg/loader"
)

// List is a finite, ordered set of items with optional page bodies.
type List struct {
	items  []paging.Item
	bodies map[string]string
	index  map[string]int
}

// NewList builds a list sorted by item order. Later duplicates of an id
// are dropped.
func NewList(items []paging.Item) *List {
	l := &List{
		items:  make([]paging.Item, 0, len(items)),
		bodies: map[string]string{},
		index:  make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := l.index[it.ID]; dup {
			continue
		}
		l.index[it.ID] = len(l.items)
		l.items = append(l.items, it)
	}
	sort.SliceStable(l.items, func(a, b int) bool { return l.items[a].Before(l.items[b]) })
	l.reindex()
	return l
}

// FromRecords converts loaded records, keeping their bodies.
func FromRecords(records []loader.Record) *List {
	items := make([]paging.Item, 0, len(records))
	for i, r := range records {
		order := i
		if r.Order != nil {
			order = *r.Order
		}
		items = append(items, paging.Item{ID: r.ID, Order: order, Title: r.Title})
	}
	l := NewList(items)
	for _, r := range records {
		if r.Body != "" {
			l.bodies[r.ID] = r.Body
		}
	}
	return l
}

func (l *List) reindex() {
	clear(l.index)
	for i, it := range l.items {
		l.index[it.ID] = i
	}
}

func (l *List) Len() int             { return len(l.items) }
func (l *List) At(i int) paging.Item { return l.items[i] }
func (l *List) Items() []paging.Item { return append([]paging.Item(nil), l.items...) }

// Contains reports whether an item with id is in the list.
func (l *List) Contains(id string) bool {
	_, ok := l.index[id]
	return ok
}

// IndexOf returns the position of item in the list.
func (l *List) IndexOf(item paging.Item) (int, bool) {
	i, ok := l.index[item.ID]
	return i, ok
}

func (l *List) ItemBefore(item paging.Item) (paging.Item, bool) {
	i, ok := l.index[item.ID]
	if !ok || i == 0 {
		return paging.Item{}, false
	}
	return l.items[i-1], true
}

func (l *List) ItemAfter(item paging.Item) (paging.Item, bool) {
	i, ok := l.index[item.ID]
	if !ok || i+1 >= len(l.items) {
		return paging.Item{}, false
	}
	return l.items[i+1], true
}

// Lookup matches ref against ids, then case-insensitively against titles.
func (l *List) Lookup(ref string) (paging.Item, bool) {
	if i, ok := l.index[ref]; ok {
		return l.items[i], true
	}
	for _, it := range l.items {
		if strings.EqualFold(it.Title, ref) {
			return it, true
		}
	}
	return paging.Item{}, false
}

func (l *List) Body(item paging.Item) (string, bool) {
	b, ok := l.bodies[item.ID]
	return b, ok
}

// SetBody stores content for the item with the given id.
func (l *List) SetBody(id, body string) {
	l.bodies[id] = body
}

// Retain returns a new list holding the items keep accepts, with their
// bodies. The first error from keep aborts.
func (l *List) Retain(keep func(paging.Item) (bool, error)) (*List, error) {
	kept := make([]paging.Item, 0, len(l.items))
	for _, it := range l.items {
		ok, err := keep(it)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, it)
		}
	}
	return l.derive(kept), nil
}

// Slice returns the items in [start, end) as a new list.
func (l *List) Slice(start, end int) *List {
	return l.derive(l.items[start:end])
}

func (l *List) derive(items []paging.Item) *List {
	out := NewList(items)
	for _, it := range out.items {
		if b, ok := l.bodies[it.ID]; ok {
			out.bodies[it.ID] = b
		}
	}
	return out
}
