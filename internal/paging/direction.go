package paging

// DirectionKind enumerates the three direction variants.
type DirectionKind int

const (
	DirectionNone DirectionKind = iota
	DirectionForward
	DirectionReverse
)

// Direction describes how one item relates to another. Sibling is set when
// the two items are adjacent, which lets the content transition slide
// instead of jumping.
type Direction struct {
	Kind    DirectionKind
	Sibling bool
}

// None returns the direction between equal items.
func None() Direction { return Direction{Kind: DirectionNone} }

// Forward returns a forward direction.
func Forward(sibling bool) Direction { return Direction{Kind: DirectionForward, Sibling: sibling} }

// Reverse returns a reverse direction.
func Reverse(sibling bool) Direction { return Direction{Kind: DirectionReverse, Sibling: sibling} }

func (d Direction) String() string {
	switch d.Kind {
	case DirectionForward:
		if d.Sibling {
			return "forward(sibling)"
		}
		return "forward"
	case DirectionReverse:
		if d.Sibling {
			return "reverse(sibling)"
		}
		return "reverse"
	default:
		return "none"
	}
}
