package layout

import "github.com/oakwood-commons/pagingmenu/internal/paging"

// InsetKind tells which indicator edge is constrained by an inset.
type InsetKind int

const (
	InsetNone InsetKind = iota
	InsetLeft
	InsetRight
)

// Inset constrains one edge of the indicator.
type Inset struct {
	Kind  InsetKind
	Value float64
}

// IndicatorMetric is the indicator geometry anchored to one cell.
type IndicatorMetric struct {
	Frame   paging.Rect
	Inset   Inset
	Spacing paging.Spacing
}

// X returns the leading edge of the indicator.
func (m IndicatorMetric) X() float64 {
	if m.Inset.Kind == InsetLeft {
		return m.Frame.X + max(m.Inset.Value, m.Spacing.Left)
	}
	return m.Frame.X + m.Spacing.Left
}

// Width returns the indicator width.
func (m IndicatorMetric) Width() float64 {
	switch m.Inset.Kind {
	case InsetLeft:
		return m.Frame.Width - max(m.Inset.Value, m.Spacing.Left) - m.Spacing.Right
	case InsetRight:
		return m.Frame.Width - m.Spacing.Left - max(m.Inset.Value, m.Spacing.Right)
	default:
		return m.Frame.Width - m.Spacing.Left - m.Spacing.Right
	}
}

// Tween interpolates x and width independently between two metrics.
func Tween(from, to IndicatorMetric, progress float64) (x, width float64) {
	return tween(from.X(), to.X(), progress), tween(from.Width(), to.Width(), progress)
}

func tween(from, to, progress float64) float64 {
	return from + (to-from)*progress
}

// fraction turns a state progress into an interpolation fraction.
func fraction(progress float64) float64 {
	if progress < 0 {
		progress = -progress
	}
	return min(progress, 1)
}
