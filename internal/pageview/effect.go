package pageview

import "fmt"

// EffectKind enumerates the side effects the manager asks its host to carry
// out.
type EffectKind int

const (
	EffectAdd EffectKind = iota
	EffectRemove
	EffectLayout
	EffectBeginAppearance
	EffectEndAppearance
	EffectScrollForward
	EffectScrollReverse
	EffectWillScroll
	EffectIsScrolling
	EffectDidFinishScrolling
)

var effectNames = map[EffectKind]string{
	EffectAdd:                "add",
	EffectRemove:             "remove",
	EffectLayout:             "layout",
	EffectBeginAppearance:    "beginAppearance",
	EffectEndAppearance:      "endAppearance",
	EffectScrollForward:      "scrollForward",
	EffectScrollReverse:      "scrollReverse",
	EffectWillScroll:         "willScroll",
	EffectIsScrolling:        "isScrolling",
	EffectDidFinishScrolling: "didFinishScrolling",
}

func (k EffectKind) String() string {
	if s, ok := effectNames[k]; ok {
		return s
	}
	return fmt.Sprintf("effect(%d)", int(k))
}

// Effect is one instruction for the host. Which fields are meaningful
// depends on Kind.
type Effect[V comparable] struct {
	Kind EffectKind

	// View is the subject of add, remove and the appearance effects.
	View V
	// Views is the ordered list handed to layout.
	Views []V

	Appearing bool
	Animated  bool

	From     V
	To       V
	HasTo    bool
	Progress float64
	Success  bool
}

func (e Effect[V]) String() string {
	switch e.Kind {
	case EffectAdd, EffectRemove, EffectEndAppearance:
		return fmt.Sprintf("%s(%v)", e.Kind, e.View)
	case EffectLayout:
		return fmt.Sprintf("%s(%v)", e.Kind, e.Views)
	case EffectBeginAppearance:
		return fmt.Sprintf("%s(%t, %v, %t)", e.Kind, e.Appearing, e.View, e.Animated)
	case EffectWillScroll:
		return fmt.Sprintf("%s(%v, %v)", e.Kind, e.From, e.To)
	case EffectIsScrolling:
		if !e.HasTo {
			return fmt.Sprintf("%s(%v, nil, %v)", e.Kind, e.From, e.Progress)
		}
		return fmt.Sprintf("%s(%v, %v, %v)", e.Kind, e.From, e.To, e.Progress)
	case EffectDidFinishScrolling:
		return fmt.Sprintf("%s(%v, %v, %t)", e.Kind, e.From, e.To, e.Success)
	default:
		return e.Kind.String()
	}
}

// Add asks the host to insert v into the content container.
func Add[V comparable](v V) Effect[V] { return Effect[V]{Kind: EffectAdd, View: v} }

// Remove asks the host to take v out of the content container.
func Remove[V comparable](v V) Effect[V] { return Effect[V]{Kind: EffectRemove, View: v} }

// Layout asks the host to lay out the held views in order.
func Layout[V comparable](views ...V) Effect[V] {
	return Effect[V]{Kind: EffectLayout, Views: append([]V(nil), views...)}
}

// BeginAppearance starts an appearance transition on v.
func BeginAppearance[V comparable](appearing bool, v V, animated bool) Effect[V] {
	return Effect[V]{Kind: EffectBeginAppearance, Appearing: appearing, View: v, Animated: animated}
}

// EndAppearance ends the appearance transition on v.
func EndAppearance[V comparable](v V) Effect[V] { return Effect[V]{Kind: EffectEndAppearance, View: v} }

// ScrollForward asks the host to animate the content to the next view.
func ScrollForward[V comparable]() Effect[V] { return Effect[V]{Kind: EffectScrollForward} }

// ScrollReverse asks the host to animate the content to the previous view.
func ScrollReverse[V comparable]() Effect[V] { return Effect[V]{Kind: EffectScrollReverse} }

// WillScroll notifies that a transition from one view to another begins.
func WillScroll[V comparable](from, to V) Effect[V] {
	return Effect[V]{Kind: EffectWillScroll, From: from, To: to, HasTo: true}
}

// IsScrolling reports transition progress towards to.
func IsScrolling[V comparable](from, to V, progress float64) Effect[V] {
	return Effect[V]{Kind: EffectIsScrolling, From: from, To: to, HasTo: true, Progress: progress}
}

// IsScrollingToEdge reports progress while there is no view to scroll to.
func IsScrollingToEdge[V comparable](from V, progress float64) Effect[V] {
	return Effect[V]{Kind: EffectIsScrolling, From: from, Progress: progress}
}

// DidFinishScrolling reports a completed or cancelled transition.
func DidFinishScrolling[V comparable](from, to V, success bool) Effect[V] {
	return Effect[V]{Kind: EffectDidFinishScrolling, From: from, To: to, HasTo: true, Success: success}
}

// Applier carries out effects.
type Applier[V comparable] interface {
	AddView(v V)
	RemoveView(v V)
	LayoutViews(views []V)
	BeginAppearance(appearing bool, v V, animated bool)
	EndAppearance(v V)
	ScrollForward()
	ScrollReverse()
	WillScroll(from, to V)
	// IsScrolling reports progress; hasTo is false at an edge.
	IsScrolling(from V, to V, hasTo bool, progress float64)
	DidFinishScrolling(from, to V, success bool)
}

// Apply hands every effect to a in order.
func Apply[V comparable](a Applier[V], effects []Effect[V]) {
	for _, e := range effects {
		switch e.Kind {
		case EffectAdd:
			a.AddView(e.View)
		case EffectRemove:
			a.RemoveView(e.View)
		case EffectLayout:
			a.LayoutViews(e.Views)
		case EffectBeginAppearance:
			a.BeginAppearance(e.Appearing, e.View, e.Animated)
		case EffectEndAppearance:
			a.EndAppearance(e.View)
		case EffectScrollForward:
			a.ScrollForward()
		case EffectScrollReverse:
			a.ScrollReverse()
		case EffectWillScroll:
			a.WillScroll(e.From, e.To)
		case EffectIsScrolling:
			a.IsScrolling(e.From, e.To, e.HasTo, e.Progress)
		case EffectDidFinishScrolling:
			a.DidFinishScrolling(e.From, e.To, e.Success)
		}
	}
}
