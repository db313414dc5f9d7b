package paging

import "math"

// StateKind enumerates the paging state variants.
type StateKind int

const (
	// StateEmpty is the state before anything has been selected.
	StateEmpty StateKind = iota
	// StateSelected is the steady state.
	StateSelected
	// StateScrolling is a transition from Item towards Upcoming.
	StateScrolling
)

func (k StateKind) String() string {
	switch k {
	case StateSelected:
		return "selected"
	case StateScrolling:
		return "scrolling"
	default:
		return "empty"
	}
}

// State is the single source of truth for the paging menu. A State is a
// value: every transition builds a new one so callers can compare old and new.
//
// Progress is unclamped. Upcoming may be nil while scrolling when there is no
// item past the edge. InitialOffset and Distance describe the menu scroll that
// accompanies the transition; they are fixed for the whole gesture.
type State struct {
	Kind          StateKind
	Item          Item
	Upcoming      *Item
	Progress      float64
	InitialOffset float64
	Distance      float64
}

// Empty returns the initial state.
func Empty() State { return State{} }

// Selected returns the steady state for item.
func Selected(item Item) State {
	return State{Kind: StateSelected, Item: item}
}

// Scrolling returns a transient state from item towards upcoming.
func Scrolling(item Item, upcoming *Item, progress, initialOffset, distance float64) State {
	var up *Item
	if upcoming != nil {
		up = ptr(*upcoming)
	}
	return State{
		Kind:          StateScrolling,
		Item:          item,
		Upcoming:      up,
		Progress:      progress,
		InitialOffset: initialOffset,
		Distance:      distance,
	}
}

// Current returns the anchor item, or false when the state is empty.
func (s State) Current() (Item, bool) {
	if s.Kind == StateEmpty {
		return Item{}, false
	}
	return s.Item, true
}

// UpcomingItem returns the item being scrolled towards, if any.
func (s State) UpcomingItem() (Item, bool) {
	if s.Kind != StateScrolling || s.Upcoming == nil {
		return Item{}, false
	}
	return *s.Upcoming, true
}

// VisuallySelected returns the item that should be styled as selected:
// the upcoming item once the transition is past its midpoint.
func (s State) VisuallySelected() (Item, bool) {
	if up, ok := s.UpcomingItem(); ok && math.Abs(s.Progress) > 0.5 {
		return up, true
	}
	return s.Current()
}

// Equal compares two states by value.
func (s State) Equal(other State) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case StateEmpty:
		return true
	case StateSelected:
		return s.Item.Equal(other.Item)
	}
	if (s.Upcoming == nil) != (other.Upcoming == nil) {
		return false
	}
	if s.Upcoming != nil && !s.Upcoming.Equal(*other.Upcoming) {
		return false
	}
	return s.Item.Equal(other.Item) &&
		s.Progress == other.Progress &&
		s.InitialOffset == other.InitialOffset &&
		s.Distance == other.Distance
}
