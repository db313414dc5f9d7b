package source

import (
	"fmt"

	"github.com/oakwood-commons/pagingmenu/internal/cel"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// DefaultScanLimit bounds how far a filtered infinite source searches for
// the next match.
const DefaultScanLimit = 1000

// Filter keeps the items a CEL expression accepts. The expression sees
// item.id, item.order and item.title (also as _.id and so on).
type Filter struct {
	pred *cel.Predicate
}

// NewFilter compiles expr.
func NewFilter(expr string) (*Filter, error) {
	ev, err := cel.NewEvaluator()
	if err != nil {
		return nil, err
	}
	pred, err := ev.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return &Filter{pred: pred}, nil
}

func (f *Filter) String() string { return f.pred.String() }

// Match evaluates the filter against one item.
func (f *Filter) Match(item paging.Item) (bool, error) {
	return f.pred.Match(map[string]any{
		"id":    item.ID,
		"order": int64(item.Order),
		"title": item.Title,
	})
}

// List returns the matching part of l.
func (f *Filter) List(l *List) (*List, error) {
	out, err := l.Retain(f.Match)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", f, err)
	}
	return out, nil
}

// Infinite wraps src so that only matching items are produced. Each step
// gives up after scan candidates; scan <= 0 uses DefaultScanLimit.
func (f *Filter) Infinite(src Infinite, scan int) *Filtered {
	if scan <= 0 {
		scan = DefaultScanLimit
	}
	return &Filtered{src: src, filter: f, scan: scan}
}

// Filtered is an infinite source restricted by a Filter.
type Filtered struct {
	src    Infinite
	filter *Filter
	scan   int
	err    error
}

// Err reports the first evaluation error. Items that fail to evaluate are
// treated as non-matching.
func (s *Filtered) Err() error { return s.err }

func (s *Filtered) match(item paging.Item) bool {
	ok, err := s.filter.Match(item)
	if err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("filter %q on %s: %w", s.filter, item.ID, err)
		}
		return false
	}
	return ok
}

func (s *Filtered) step(item paging.Item, next func(paging.Item) (paging.Item, bool)) (paging.Item, bool) {
	cur := item
	for range s.scan {
		var ok bool
		if cur, ok = next(cur); !ok {
			return paging.Item{}, false
		}
		if s.match(cur) {
			return cur, true
		}
	}
	return paging.Item{}, false
}

func (s *Filtered) ItemBefore(item paging.Item) (paging.Item, bool) {
	return s.step(item, s.src.ItemBefore)
}

func (s *Filtered) ItemAfter(item paging.Item) (paging.Item, bool) {
	return s.step(item, s.src.ItemAfter)
}

// Anchor returns item when it matches, otherwise the nearest match after it
// and then before it.
func (s *Filtered) Anchor(item paging.Item) (paging.Item, bool) {
	if s.match(item) {
		return item, true
	}
	if next, ok := s.ItemAfter(item); ok {
		return next, true
	}
	return s.ItemBefore(item)
}

// Lookup resolves through the wrapped source and rejects filtered items.
func (s *Filtered) Lookup(ref string) (paging.Item, bool) {
	l, ok := s.src.(Lookuper)
	if !ok {
		return paging.Item{}, false
	}
	item, ok := l.Lookup(ref)
	if !ok || !s.match(item) {
		return paging.Item{}, false
	}
	return item, true
}

func (s *Filtered) Body(item paging.Item) (string, bool) {
	if b, ok := s.src.(Bodied); ok {
		return b.Body(item)
	}
	return "", false
}
