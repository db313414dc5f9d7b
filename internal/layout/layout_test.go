package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

const viewWidth = 1000

func window(n int, before, after bool) paging.Items {
	items := make([]paging.Item, n)
	for i := range items {
		items[i] = paging.IndexItem(i)
	}
	return paging.NewItems(items, before, after)
}

func fixedOptions() paging.Options {
	opts := paging.Options{ItemSize: paging.Fixed(100, 50)}
	return opts
}

func xs(l Layout) []float64 {
	out := make([]float64, len(l.Cells))
	for i, c := range l.Cells {
		out[i] = c.Frame.X
	}
	return out
}

func widths(l Layout) []float64 {
	out := make([]float64, len(l.Cells))
	for i, c := range l.Cells {
		out[i] = c.Frame.Width
	}
	return out
}

func TestComputeFixedCells(t *testing.T) {
	l := Compute(Input{
		Options:   fixedOptions(),
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})

	require.Len(t, l.Cells, 3)
	assert.Equal(t, []float64{0, 100, 200}, xs(l))
	assert.Equal(t, []float64{100, 100, 100}, widths(l))
	assert.InDelta(t, 50, l.Cells[0].Frame.Height, 1e-9)
	assert.True(t, l.Cells[0].Selected)
	assert.False(t, l.Cells[1].Selected)
	assert.InDelta(t, 300, l.ContentWidth, 1e-9)
}

func TestComputeSpacingAndInsets(t *testing.T) {
	opts := fixedOptions()
	opts.ItemSpacing = 10
	opts.Insets = paging.Insets{Left: 20, Right: 20, Top: 5}
	l := Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})

	assert.Equal(t, []float64{20, 130, 240}, xs(l))
	assert.InDelta(t, 5, l.Cells[0].Frame.Y, 1e-9)
	assert.InDelta(t, 360, l.ContentWidth, 1e-9)
	assert.InDelta(t, 55, l.Height, 1e-9)
}

func TestComputeSizeToFit(t *testing.T) {
	tests := []struct {
		name      string
		minWidth  float64
		alignment paging.Alignment
		wantX     []float64
		wantW     []float64
	}{
		{
			name:      "stretches to fill the viewport",
			minWidth:  10,
			alignment: paging.AlignCenter,
			wantX:     []float64{0, viewWidth / 3.0, 2 * viewWidth / 3.0},
			wantW:     []float64{viewWidth / 3.0, viewWidth / 3.0, viewWidth / 3.0},
		},
		{
			name:      "wider than the viewport is not stretched or centered",
			minWidth:  viewWidth,
			alignment: paging.AlignCenter,
			wantX:     []float64{0, viewWidth, 2 * viewWidth},
			wantW:     []float64{viewWidth, viewWidth, viewWidth},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := paging.Options{
				ItemSize:  paging.SizeToFitWidth(tt.minWidth, 50),
				Alignment: tt.alignment,
			}
			l := Compute(Input{
				Options:   opts,
				State:     paging.Selected(paging.IndexItem(0)),
				Items:     window(3, false, false),
				ViewWidth: viewWidth,
			})
			assert.InDeltaSlice(t, tt.wantX, xs(l), 1e-9)
			assert.InDeltaSlice(t, tt.wantW, widths(l), 1e-9)
		})
	}
}

func TestComputeSizeToFitWithSizeSource(t *testing.T) {
	l := Compute(Input{
		Options:   paging.Options{ItemSize: paging.SizeToFitWidth(10, 50)},
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
		Sizes: paging.NewSizeCache(paging.SizeFunc(func(paging.Item, bool) float64 {
			return 50
		})),
	})
	assert.Equal(t, []float64{50, 50, 50}, widths(l))
}

func TestComputeSelfSizing(t *testing.T) {
	items := window(3, false, false)
	sizes := paging.NewSizeCache(nil)
	Measure(items, sizes, MeasureFunc(func(item paging.Item) float64 {
		return float64(item.Order+1) * 50
	}))

	l := Compute(Input{
		Options:   paging.Options{ItemSize: paging.SelfSizing(80, 50)},
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     items,
		ViewWidth: viewWidth,
		Sizes:     sizes,
	})
	assert.Equal(t, []float64{0, 50, 150}, xs(l))
	assert.Equal(t, []float64{50, 100, 150}, widths(l))
}

func TestComputeSelfSizingUsesEstimate(t *testing.T) {
	l := Compute(Input{
		Options:   paging.Options{ItemSize: paging.SelfSizing(80, 50)},
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(2, false, false),
		ViewWidth: viewWidth,
	})
	assert.Equal(t, []float64{80, 80}, widths(l))
}

func selectedSizes() *paging.SizeCache {
	return paging.NewSizeCache(paging.SizeFunc(func(_ paging.Item, selected bool) float64 {
		if selected {
			return 100
		}
		return 50
	}))
}

func TestComputeSizeSourceSelected(t *testing.T) {
	l := Compute(Input{
		Options:   fixedOptions(),
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
		Sizes:     selectedSizes(),
	})
	assert.Equal(t, []float64{0, 100, 150}, xs(l))
	assert.Equal(t, []float64{100, 50, 50}, widths(l))
}

func TestComputeSizeSourceScrolling(t *testing.T) {
	up := paging.IndexItem(1)
	l := Compute(Input{
		Options:   fixedOptions(),
		State:     paging.Scrolling(paging.IndexItem(0), &up, 0.5, 0, 0),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
		Sizes:     selectedSizes(),
	})
	assert.Equal(t, []float64{75, 75, 50}, widths(l))
	assert.Equal(t, []float64{0, 75, 150}, xs(l))
}

func TestComputeCenterAlignment(t *testing.T) {
	opts := paging.Options{ItemSize: paging.Fixed(10, 50), Alignment: paging.AlignCenter}
	l := Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	offset := (viewWidth - 30) / 2.0
	assert.InDeltaSlice(t, []float64{offset, offset + 10, offset + 20}, xs(l), 1e-9)
	assert.InDelta(t, offset, l.ContentInsets.Left, 1e-9)
}

func TestComputeScrollCenter(t *testing.T) {
	w := viewWidth / 2.0
	opts := paging.Options{ItemSize: paging.Fixed(w, 50), ScrollPosition: paging.ScrollCenter}
	l := Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	offset := viewWidth/2.0 - w/2
	assert.InDelta(t, offset, l.Cells[0].Frame.X, 1e-9)
	assert.InDelta(t, offset, l.ContentInsets.Left, 1e-9)
	assert.InDelta(t, offset, l.ContentInsets.Right, 1e-9)
	assert.InDelta(t, 3*w+2*offset, l.ContentWidth, 1e-9)
}

func indicatorOptions() paging.Options {
	opts := fixedOptions()
	opts.Indicator = paging.IndicatorOptions{Visible: true, Height: 10}
	return opts
}

func TestIndicatorSelectedItem(t *testing.T) {
	l := Compute(Input{
		Options:   indicatorOptions(),
		State:     paging.Selected(paging.IndexItem(1)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	require.True(t, l.ShowIndicator)
	assert.Equal(t, paging.Rect{X: 100, Y: 40, Width: 100, Height: 10}, l.Indicator)
}

func TestIndicatorInsets(t *testing.T) {
	opts := indicatorOptions()
	opts.Indicator.Insets = paging.Insets{Left: 20, Bottom: 20, Right: 20}
	l := Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	assert.Equal(t, paging.Rect{X: 20, Y: 20, Width: 80, Height: 10}, l.Indicator)
}

func TestIndicatorSpacing(t *testing.T) {
	opts := indicatorOptions()
	opts.Indicator.Spacing = paging.Spacing{Left: 20, Right: 20}
	l := Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	assert.Equal(t, paging.Rect{X: 20, Y: 40, Width: 60, Height: 10}, l.Indicator)
}

func TestIndicatorDefaultHeight(t *testing.T) {
	opts := fixedOptions()
	opts.ItemSize.Height = 100
	opts.Indicator = paging.IndicatorOptions{Visible: true}
	l := Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	assert.InDelta(t, DefaultIndicatorHeight, l.Indicator.Height, 1e-9)
	assert.InDelta(t, 100-DefaultIndicatorHeight, l.Indicator.Y, 1e-9)
}

func TestIndicatorScrolling(t *testing.T) {
	up := paging.IndexItem(1)
	l := Compute(Input{
		Options:   indicatorOptions(),
		State:     paging.Scrolling(paging.IndexItem(0), &up, 0.25, 0, 0),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	assert.InDelta(t, 25, l.Indicator.X, 1e-9)
	assert.InDelta(t, 100, l.Indicator.Width, 1e-9)

	l = Compute(Input{
		Options:   indicatorOptions(),
		State:     paging.Scrolling(paging.IndexItem(0), &up, -0.25, 0, 0),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	assert.InDelta(t, 25, l.Indicator.X, 1e-9, "fraction uses the magnitude of the progress")
}

func TestIndicatorOvershoot(t *testing.T) {
	tests := []struct {
		name  string
		state paging.State
		items paging.Items
		wantX float64
	}{
		{
			name:  "before the first item",
			state: paging.Scrolling(paging.IndexItem(0), nil, -1, 0, 0),
			items: window(4, false, false),
			wantX: -100,
		},
		{
			name:  "past the last item of a four item window",
			state: paging.Scrolling(paging.IndexItem(3), nil, 1, 0, 0),
			items: window(4, false, false),
			wantX: 400,
		},
		{
			// item 3 is one past a three item window, so the indicator
			// anchors one cell after item 2's frame.
			name:  "past the last item when it lies outside a three item window",
			state: paging.Scrolling(paging.IndexItem(3), nil, 1, 0, 0),
			items: window(3, false, false),
			wantX: 300,
		},
		{
			name:  "progress beyond one is clamped for the fraction",
			state: paging.Scrolling(paging.IndexItem(0), nil, -3, 0, 0),
			items: window(4, false, false),
			wantX: -100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Compute(Input{
				Options:   indicatorOptions(),
				State:     tt.state,
				Items:     tt.items,
				ViewWidth: viewWidth,
			})
			assert.InDelta(t, tt.wantX, l.Indicator.X, 1e-9)
			assert.InDelta(t, 100, l.Indicator.Width, 1e-9)
		})
	}
}

func TestBorder(t *testing.T) {
	opts := fixedOptions()
	opts.Border = paging.BorderOptions{Visible: true, Height: 10}
	l := Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	require.True(t, l.ShowBorder)
	assert.Equal(t, paging.Rect{X: 0, Y: 40, Width: viewWidth, Height: 10}, l.Border)

	opts.Border.Insets = paging.Insets{Left: 20, Right: 20}
	l = Compute(Input{
		Options:   opts,
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	assert.Equal(t, paging.Rect{X: 20, Y: 40, Width: viewWidth - 40, Height: 10}, l.Border)
}

func TestHiddenDecorations(t *testing.T) {
	l := Compute(Input{
		Options:   fixedOptions(),
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(3, false, false),
		ViewWidth: viewWidth,
	})
	assert.False(t, l.ShowIndicator)
	assert.False(t, l.ShowBorder)
}

func TestTweenMetric(t *testing.T) {
	from := IndicatorMetric{
		Frame: paging.Rect{X: 0, Width: 200},
		Inset: Inset{Kind: InsetLeft, Value: 50},
	}
	to := IndicatorMetric{
		Frame: paging.Rect{X: 200, Width: 100},
		Inset: Inset{Kind: InsetRight, Value: 50},
	}

	x, w := Tween(from, to, 0)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 150, w, 1e-9)

	x, w = Tween(from, to, 1)
	assert.InDelta(t, 200, x, 1e-9)
	assert.InDelta(t, 50, w, 1e-9)

	x, w = Tween(from, to, 0.5)
	assert.InDelta(t, 125, x, 1e-9)
	assert.InDelta(t, 100, w, 1e-9)
}

func TestFrameVirtualIndices(t *testing.T) {
	l := Compute(Input{
		Options:   fixedOptions(),
		State:     paging.Selected(paging.IndexItem(0)),
		Items:     window(2, false, false),
		ViewWidth: viewWidth,
	})
	f, ok := l.Frame(-1)
	require.True(t, ok)
	assert.InDelta(t, -100, f.X, 1e-9)
	f, ok = l.Frame(2)
	require.True(t, ok)
	assert.InDelta(t, 200, f.X, 1e-9)

	f, ok = l.FrameOf(paging.IndexItem(1))
	require.True(t, ok)
	assert.InDelta(t, 100, f.X, 1e-9)
	_, ok = l.FrameOf(paging.IndexItem(5))
	assert.False(t, ok)

	_, ok = Layout{}.Frame(0)
	assert.False(t, ok)
}
