package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// Page is the content view for one item. It keeps its rendered lines and
// its own vertical scroll position.
type Page struct {
	ID   string
	Item paging.Item

	body    string
	lines   []string
	width   int
	top     int
	visible bool
}

func newPage(item paging.Item, body string) *Page {
	return &Page{ID: uuid.NewString(), Item: item, body: body}
}

// Visible reports whether the page is on screen or appearing.
func (p *Page) Visible() bool { return p.visible }

// render lays the body out for width columns, reusing the previous result
// when the width has not changed.
func (p *Page) render(r *markdownRenderer, width int) {
	if p.lines != nil && p.width == width {
		return
	}
	p.width = width
	out := strings.TrimRight(r.Render(p.body, width), "\n")
	p.lines = strings.Split(out, "\n")
	p.top = min(p.top, p.maxTop(0))
}

func (p *Page) maxTop(height int) int {
	return max(len(p.lines)-height, 0)
}

// scroll moves the page by dy lines within height visible rows.
func (p *Page) scroll(dy, height int) bool {
	next := min(max(p.top+dy, 0), p.maxTop(height))
	if next == p.top {
		return false
	}
	p.top = next
	return true
}

// view returns exactly height rows of exactly width columns.
func (p *Page) view(width, height int) []string {
	out := make([]string, height)
	for i := range out {
		line := ""
		if n := p.top + i; n < len(p.lines) {
			line = p.lines[n]
		}
		out[i] = fit(line, width)
	}
	return out
}

// fit truncates or pads an ANSI string to width columns.
func fit(s string, width int) string {
	if w := ansi.StringWidth(s); w > width {
		return ansi.Truncate(s, width, "")
	} else if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// markdownRenderer renders page bodies through glamour, rebuilding the
// term renderer only when the wrap width changes.
type markdownRenderer struct {
	style string
	wrap  int

	width int
	tr    *glamour.TermRenderer
}

func newMarkdownRenderer(style string, wrap int) *markdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &markdownRenderer{style: style, wrap: wrap}
}

// Render returns md rendered for a terminal of width columns. Glamour
// failures fall back to the raw text so a page is never empty.
func (r *markdownRenderer) Render(md string, width int) string {
	wrap := width
	if r.wrap > 0 {
		wrap = min(r.wrap, width)
	}
	if r.tr == nil || r.width != wrap {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return md
		}
		r.tr, r.width = tr, wrap
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md
	}
	return out
}
