// Package layout computes the geometry of the menu strip: cell frames, the
// selection indicator and the border. Everything is derived from the paging
// state and the item window on each call; nothing is retained.
package layout

import "github.com/oakwood-commons/pagingmenu/internal/paging"

// DefaultIndicatorHeight is used when the indicator is visible but has no
// height configured.
const DefaultIndicatorHeight = 40

// Input is a read-only snapshot of everything the layout depends on.
type Input struct {
	Options   paging.Options
	State     paging.State
	Items     paging.Items
	ViewWidth float64
	Sizes     *paging.SizeCache
}

// Cell is the geometry of one menu cell.
type Cell struct {
	Item     paging.Item
	Index    int
	Frame    paging.Rect
	Selected bool
}

// Layout is the computed menu geometry.
type Layout struct {
	Cells         []Cell
	Indicator     paging.Rect
	ShowIndicator bool
	Border        paging.Rect
	ShowBorder    bool
	ContentWidth  float64
	ContentInsets paging.Insets
	Height        float64
}

// Frame returns the frame of the cell at index i. Indices one step past
// either end of the window resolve to a virtual cell next to the edge cell.
func (l Layout) Frame(i int) (paging.Rect, bool) {
	n := len(l.Cells)
	switch {
	case n == 0:
		return paging.Rect{}, false
	case i < 0:
		f := l.Cells[0].Frame
		return f.Offset(-f.Width), true
	case i >= n:
		f := l.Cells[n-1].Frame
		return f.Offset(f.Width), true
	default:
		return l.Cells[i].Frame, true
	}
}

// FrameOf returns the frame of item when it is materialized.
func (l Layout) FrameOf(item paging.Item) (paging.Rect, bool) {
	for _, c := range l.Cells {
		if c.Item.Equal(item) {
			return c.Frame, true
		}
	}
	return paging.Rect{}, false
}

// Compute lays out the menu.
func Compute(in Input) Layout {
	opts := in.Options
	l := Layout{Height: opts.MenuHeight()}

	widths := cellWidths(in)
	n := len(widths)
	l.ContentWidth = contentWidth(opts, widths)

	if n > 0 && l.ContentWidth < in.ViewWidth && opts.ScrollPosition != paging.ScrollCenter {
		if opts.ItemSize.Kind == paging.SizeToFit && !in.Sizes.HasSource() {
			w := (in.ViewWidth - opts.Insets.Left - opts.Insets.Right - opts.ItemSpacing*float64(n-1)) / float64(n)
			for i := range widths {
				widths[i] = w
			}
			l.ContentWidth = contentWidth(opts, widths)
		}
	}

	x := opts.Insets.Left
	l.Cells = make([]Cell, n)
	visual, hasVisual := in.State.VisuallySelected()
	for i, w := range widths {
		item := in.Items.At(i)
		l.Cells[i] = Cell{
			Item:     item,
			Index:    i,
			Frame:    paging.Rect{X: x, Y: opts.Insets.Top, Width: w, Height: opts.ItemSize.Height},
			Selected: hasVisual && visual.Equal(item),
		}
		x += w + opts.ItemSpacing
	}

	switch {
	case n > 0 && opts.ScrollPosition == paging.ScrollCenter:
		first, last := widths[0], widths[n-1]
		shift := in.ViewWidth/2 - first/2
		l.ContentInsets = paging.Insets{Left: shift, Right: in.ViewWidth/2 - last/2}
		l.ContentWidth += l.ContentInsets.Left + l.ContentInsets.Right
		l.shift(shift)
	case n > 0 && opts.Alignment == paging.AlignCenter && l.ContentWidth < in.ViewWidth:
		shift := (in.ViewWidth - l.ContentWidth) / 2
		l.ContentInsets = paging.Insets{Left: shift, Right: shift}
		l.shift(shift)
	}

	if opts.Indicator.Visible {
		l.ShowIndicator = n > 0
		l.Indicator = indicatorFrame(in, l)
	}
	if opts.Border.Visible {
		l.ShowBorder = true
		b := opts.Border
		l.Border = paging.Rect{
			X:      b.Insets.Left,
			Y:      l.Height - b.Height,
			Width:  max(l.ContentWidth, in.ViewWidth) - b.Insets.Left - b.Insets.Right,
			Height: b.Height,
		}
	}
	return l
}

func (l *Layout) shift(dx float64) {
	for i := range l.Cells {
		l.Cells[i].Frame = l.Cells[i].Frame.Offset(dx)
	}
}

func contentWidth(opts paging.Options, widths []float64) float64 {
	if len(widths) == 0 {
		return 0
	}
	w := opts.Insets.Left + opts.Insets.Right + opts.ItemSpacing*float64(len(widths)-1)
	for _, cw := range widths {
		w += cw
	}
	return w
}

func cellWidths(in Input) []float64 {
	n := in.Items.Len()
	widths := make([]float64, n)
	if in.Sizes.HasSource() {
		cur, _ := in.State.Current()
		up, hasUp := in.State.UpcomingItem()
		p := fraction(in.State.Progress)
		hasCur := in.State.Kind != paging.StateEmpty
		for i := 0; i < n; i++ {
			item := in.Items.At(i)
			sel := in.Sizes.Width(item, true)
			unsel := in.Sizes.Width(item, false)
			switch {
			case hasCur && item.Equal(cur):
				widths[i] = tween(sel, unsel, p)
			case hasUp && item.Equal(up):
				widths[i] = tween(unsel, sel, p)
			default:
				widths[i] = unsel
			}
		}
		return widths
	}
	for i := 0; i < n; i++ {
		widths[i] = policyWidth(in.Options.ItemSize, in.Sizes, in.Items.At(i))
	}
	return widths
}

// policyWidth is the width of a cell when no size source is present.
func policyWidth(size paging.ItemSize, sizes *paging.SizeCache, item paging.Item) float64 {
	if size.Kind == paging.SizeSelfSizing {
		if w, ok := sizes.Preferred(item); ok {
			return w
		}
	}
	return size.BaseWidth()
}

// ItemWidth is the width the controller assumes for an item when it builds a
// window, before any layout pass.
func ItemWidth(opts paging.Options, sizes *paging.SizeCache, item paging.Item, selected bool) float64 {
	if sizes.HasSource() {
		return sizes.Width(item, selected)
	}
	return policyWidth(opts.ItemSize, sizes, item)
}

func indicatorFrame(in Input, l Layout) paging.Rect {
	opts := in.Options.Indicator
	height := opts.Height
	if height == 0 {
		height = DefaultIndicatorHeight
	}
	y := l.Height - height - opts.Insets.Bottom

	n := len(l.Cells)
	cur, ok := in.State.Current()
	if n == 0 || !ok {
		return paging.Rect{Y: y, Height: height}
	}

	curIdx, ok := in.Items.IndexOf(cur)
	if !ok {
		curIdx = outsideIndex(in.Items, cur)
	}
	upIdx := upcomingIndex(in, curIdx)

	from := metric(in, l, curIdx)
	to := metric(in, l, upIdx)
	x, w := Tween(from, to, fraction(in.State.Progress))
	return paging.Rect{X: x, Y: y, Width: w, Height: height}
}

// outsideIndex places an item that is not materialized one step past the
// nearest edge of the window.
func outsideIndex(items paging.Items, item paging.Item) int {
	if first, ok := items.First(); ok && item.Before(first) {
		return -1
	}
	return items.Len()
}

func upcomingIndex(in Input, curIdx int) int {
	if up, ok := in.State.UpcomingItem(); ok {
		if i, ok := in.Items.IndexOf(up); ok {
			return i
		}
	}
	n := in.Items.Len()
	p := in.State.Progress
	switch {
	case curIdx == 0 && p < 0:
		return -1
	case curIdx == n-1 && p > 0:
		return n
	default:
		return curIdx
	}
}

func metric(in Input, l Layout, i int) IndicatorMetric {
	frame, _ := l.Frame(i)
	opts := in.Options.Indicator
	n := len(l.Cells)

	var inset Inset
	switch {
	case i == 0 && !in.Items.HasItemsBefore():
		inset = Inset{Kind: InsetLeft, Value: opts.Insets.Left}
	case i >= n-1 && !in.Items.HasItemsAfter():
		inset = Inset{Kind: InsetRight, Value: opts.Insets.Right}
	}
	return IndicatorMetric{Frame: frame, Inset: inset, Spacing: opts.Spacing}
}
