package layout

import "github.com/oakwood-commons/pagingmenu/internal/paging"

// Measurer reports the intrinsic width of a self-sizing cell.
type Measurer interface {
	Measure(item paging.Item) float64
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(item paging.Item) float64

// Measure implements Measurer.
func (f MeasureFunc) Measure(item paging.Item) float64 { return f(item) }

// Measure records the preferred width of every materialized item that has
// not been measured yet.
func Measure(items paging.Items, sizes *paging.SizeCache, m Measurer) {
	if m == nil || sizes == nil {
		return
	}
	for i := 0; i < items.Len(); i++ {
		item := items.At(i)
		if _, ok := sizes.Preferred(item); ok {
			continue
		}
		sizes.SetPreferred(item, m.Measure(item))
	}
}
