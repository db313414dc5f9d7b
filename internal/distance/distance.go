// Package distance computes how far the menu has to scroll so that an item
// being selected ends up at the configured scroll position.
package distance

import "github.com/oakwood-commons/pagingmenu/internal/paging"

// Input is everything Calculate needs. FromFrame and ToFrame are nil when
// the item is not materialized in the menu. Sizes may be nil.
type Input struct {
	From          paging.Item
	To            paging.Item
	FromFrame     *paging.Rect
	ToFrame       *paging.Rect
	ContentOffset float64
	ViewWidth     float64
	ContentWidth  float64

	HasItemsBefore bool
	HasItemsAfter  bool

	Position paging.ScrollPosition
	Sizes    *paging.SizeCache
}

// Calculate returns the signed distance from the current content offset to
// the offset that aligns To. It is a pure function of its input.
func Calculate(in Input) float64 {
	if in.ToFrame == nil {
		return 0
	}

	var d float64
	switch in.Position {
	case paging.ScrollLeft:
		d = distanceLeft(in)
	case paging.ScrollRight:
		d = distanceRight(in)
	default:
		d = distanceCentered(in)
	}

	// The centered position pads the content so every item can reach the
	// middle; there is no edge to clamp against.
	if in.Position == paging.ScrollCenter {
		return d
	}
	return clamp(in, d)
}

func hasSizes(in Input) bool {
	return in.Sizes.HasSource()
}

// growth is how much wider the destination gets once selected.
func growth(in Input) float64 {
	if !hasSizes(in) {
		return 0
	}
	return in.Sizes.Width(in.To, true) - in.ToFrame.Width
}

// shrink is how much narrower the current item gets once deselected. It only
// shifts the destination when the current item sits before it.
func shrink(in Input) float64 {
	if !hasSizes(in) || in.FromFrame == nil {
		return 0
	}
	return in.FromFrame.Width - in.Sizes.Width(in.From, false)
}

func forward(in Input) bool {
	return in.From.Before(in.To)
}

func distanceLeft(in Input) float64 {
	d := in.ToFrame.MinX() - in.ContentOffset
	if forward(in) {
		d -= shrink(in)
	}
	return d
}

func distanceRight(in Input) float64 {
	d := in.ToFrame.MaxX() - (in.ContentOffset + in.ViewWidth)
	d += growth(in)
	if forward(in) {
		d -= shrink(in)
	}
	return d
}

func distanceCentered(in Input) float64 {
	d := in.ToFrame.MidX() - (in.ContentOffset + in.ViewWidth/2)
	d += growth(in) / 2
	if forward(in) {
		d -= shrink(in)
	}
	return d
}

// clamp keeps the target offset inside the content once the window reaches
// a logical edge. The content width is adjusted for the cells that change
// size during the transition.
func clamp(in Input, d float64) float64 {
	contentWidth := in.ContentWidth + growth(in) - shrink(in)
	target := in.ContentOffset + d

	if !in.HasItemsAfter && target > contentWidth-in.ViewWidth {
		target = contentWidth - in.ViewWidth
	}
	if !in.HasItemsBefore && target < 0 {
		target = 0
	}
	return target - in.ContentOffset
}
