package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/pagingmenu/internal/layout"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// cellPadding is the blank space on each side of a menu label.
const cellPadding = 1

// LabelMeasurer sizes self-sizing menu cells by the display width of their
// label, so wide runes take two columns.
var LabelMeasurer layout.Measurer = layout.MeasureFunc(func(item paging.Item) float64 {
	return float64(runewidth.StringWidth(item.Label()) + 2*cellPadding)
})
