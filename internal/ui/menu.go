package ui

import (
	"math"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/pagingmenu/internal/layout"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// menuStrip is the terminal rendition of the menu: one row of cells, an
// optional indicator row and an optional border row. It is the menu the
// controller drives.
type menuStrip struct {
	width    float64
	offset   float64
	attached bool
	dragging bool
	layout   layout.Layout

	reloads     int
	invalidates int
}

func (s *menuStrip) Width() float64         { return s.width }
func (s *menuStrip) ContentOffset() float64 { return s.offset }
func (s *menuStrip) IsDragging() bool       { return s.dragging }
func (s *menuStrip) IsAttached() bool       { return s.attached }

func (s *menuStrip) SetContentOffset(x float64, _ bool) {
	s.offset = x
}

func (s *menuStrip) Reload(l layout.Layout, _ *paging.Diff) {
	s.layout = l
	s.reloads++
}

func (s *menuStrip) Invalidate(l layout.Layout, _ bool) {
	s.layout = l
	s.invalidates++
}

// maxOffset is the furthest the strip can scroll.
func (s *menuStrip) maxOffset() float64 {
	return max(0, s.layout.ContentWidth-s.width)
}

// scrollBy moves the strip as a user scroll would, clamped to the content.
func (s *menuStrip) scrollBy(dx float64) bool {
	next := min(max(s.offset+dx, 0), s.maxOffset())
	if next == s.offset {
		return false
	}
	s.offset = next
	return true
}

// rows renders the strip at the current offset.
func (s *menuStrip) rows(st Styles) []string {
	w := int(s.width)
	if w <= 0 {
		return nil
	}
	off := int(math.Round(s.offset))

	out := []string{s.cellRow(st, off, w)}
	if s.layout.ShowIndicator {
		out = append(out, s.barRow(st.Indicator, s.layout.Indicator, "━", off, w))
	}
	if s.layout.ShowBorder {
		out = append(out, s.barRow(st.Border, s.layout.Border, "─", off, w))
	}
	return out
}

// cellRow lays the labels out in content coordinates and cuts the visible
// part.
func (s *menuStrip) cellRow(st Styles, off, w int) string {
	cells := append([]layout.Cell(nil), s.layout.Cells...)
	sort.Slice(cells, func(a, b int) bool { return cells[a].Frame.X < cells[b].Frame.X })

	var b strings.Builder
	col := 0
	for _, c := range cells {
		x := int(math.Round(c.Frame.X))
		cw := int(math.Round(c.Frame.MaxX())) - x
		if cw <= 0 || x < col {
			continue
		}
		b.WriteString(strings.Repeat(" ", x-col))
		style := st.Item
		if c.Selected {
			style = st.Selected
		}
		b.WriteString(style.Render(cellLabel(c.Item.Label(), cw)))
		col = x + cw
	}
	end := max(col, off+w)
	b.WriteString(strings.Repeat(" ", end-col))
	return ansi.Cut(b.String(), off, off+w)
}

// cellLabel centers label in width columns, truncating with an ellipsis.
func cellLabel(label string, width int) string {
	inner := width - 2*cellPadding
	if inner <= 0 {
		return strings.Repeat(" ", width)
	}
	label = runewidth.Truncate(label, inner, "…")
	gap := inner - runewidth.StringWidth(label)
	left := cellPadding + gap/2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-left-runewidth.StringWidth(label))
}

func (s *menuStrip) barRow(style lipgloss.Style, r paging.Rect, glyph string, off, w int) string {
	lo := max(int(math.Round(r.X))-off, 0)
	hi := min(int(math.Round(r.MaxX()))-off, w)
	if hi <= lo {
		return strings.Repeat(" ", w)
	}
	return strings.Repeat(" ", lo) + style.Render(strings.Repeat(glyph, hi-lo)) + strings.Repeat(" ", w-hi)
}
