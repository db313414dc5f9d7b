// Package paging holds the value types shared by the menu layout engine, the
// content page manager and the paging controller: items, directions, the
// paging state, the materialized item window and its diff.
package paging

import "strconv"

// Item is one menu entry and the page it stands for.
//
// ID is the identity used for equality and diffing. Order places the item in
// the logical sequence so that two items can be compared even when only one
// of them is materialized in the window.
type Item struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Order int    `json:"order" yaml:"order" toml:"order"`
	Title string `json:"title" yaml:"title" toml:"title"`
}

// IndexItem returns the item for position i of an index based sequence.
func IndexItem(i int) Item {
	return Item{
		ID:    "item-" + strconv.Itoa(i),
		Order: i,
		Title: "Item " + strconv.Itoa(i),
	}
}

// Equal reports whether both items share the same identity.
func (i Item) Equal(other Item) bool {
	return i.ID == other.ID
}

// Before reports whether i comes before other in the logical order.
// Items with the same Order are ordered by ID so the relation stays total.
func (i Item) Before(other Item) bool {
	if i.Order != other.Order {
		return i.Order < other.Order
	}
	return i.ID < other.ID
}

// Label returns the text shown in the menu cell.
func (i Item) Label() string {
	if i.Title != "" {
		return i.Title
	}
	return i.ID
}

func (i Item) String() string {
	return i.ID
}

// ptr returns a pointer to a copy of the item.
func ptr(i Item) *Item {
	return &i
}
