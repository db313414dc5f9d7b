// Package source supplies the items a pager pages through. A Provider is
// either a finite list known up front or an infinite sequence that produces
// neighbours on demand.
package source

import (
	"fmt"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// Kind tells finite providers from infinite ones.
type Kind int

const (
	KindFinite Kind = iota
	KindInfinite
)

func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "finite"
	case KindInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Infinite produces the neighbours of an item. Either side may end.
type Infinite interface {
	ItemBefore(item paging.Item) (paging.Item, bool)
	ItemAfter(item paging.Item) (paging.Item, bool)
}

// Lookuper resolves a user supplied reference (an id, an index, a date) to
// an item.
type Lookuper interface {
	Lookup(ref string) (paging.Item, bool)
}

// Bodied sources carry page content for their items.
type Bodied interface {
	Body(item paging.Item) (string, bool)
}

// Provider is the tagged union over the two source kinds. The zero value is
// an empty finite provider.
type Provider struct {
	kind  Kind
	list  *List
	inf   Infinite
	start paging.Item
}

// FromList wraps a finite list. The first item is the start item.
func FromList(l *List) Provider {
	if l == nil {
		l = NewList(nil)
	}
	return Provider{kind: KindFinite, list: l}
}

// FromInfinite wraps an infinite source anchored at start.
func FromInfinite(src Infinite, start paging.Item) Provider {
	return Provider{kind: KindInfinite, inf: src, start: start}
}

func (p Provider) Kind() Kind { return p.kind }

// List returns the underlying list of a finite provider.
func (p Provider) List() (*List, bool) {
	if p.kind != KindFinite || p.list == nil {
		return nil, false
	}
	return p.list, true
}

// Start returns the item shown first. An empty list has none.
func (p Provider) Start() (paging.Item, bool) {
	if p.kind == KindInfinite {
		return p.start, true
	}
	if p.list == nil || p.list.Len() == 0 {
		return paging.Item{}, false
	}
	return p.list.At(0), true
}

func (p Provider) ItemBefore(item paging.Item) (paging.Item, bool) {
	switch {
	case p.kind == KindInfinite && p.inf != nil:
		return p.inf.ItemBefore(item)
	case p.list != nil:
		return p.list.ItemBefore(item)
	default:
		return paging.Item{}, false
	}
}

func (p Provider) ItemAfter(item paging.Item) (paging.Item, bool) {
	switch {
	case p.kind == KindInfinite && p.inf != nil:
		return p.inf.ItemAfter(item)
	case p.list != nil:
		return p.list.ItemAfter(item)
	default:
		return paging.Item{}, false
	}
}

// Lookup resolves ref against the provider. Lists match ids and then
// titles; infinite sources resolve only when they implement Lookuper.
func (p Provider) Lookup(ref string) (paging.Item, bool) {
	if p.kind == KindFinite {
		if p.list == nil {
			return paging.Item{}, false
		}
		return p.list.Lookup(ref)
	}
	if l, ok := p.inf.(Lookuper); ok {
		return l.Lookup(ref)
	}
	return paging.Item{}, false
}

// Body returns the page content stored for item, if any.
func (p Provider) Body(item paging.Item) (string, bool) {
	if p.kind == KindFinite {
		if p.list == nil {
			return "", false
		}
		return p.list.Body(item)
	}
	if b, ok := p.inf.(Bodied); ok {
		return b.Body(item)
	}
	return "", false
}

// Candidates returns items a fuzzy search may choose from: the whole list
// of a finite provider, or the given fallback for an infinite one.
func (p Provider) Candidates(fallback []paging.Item) []paging.Item {
	if l, ok := p.List(); ok {
		return l.Items()
	}
	return fallback
}
