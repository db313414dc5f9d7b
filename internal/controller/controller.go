// Package controller drives the paging menu. It owns the paging state, the
// window of materialized items and the size cache, and reacts to content
// scroll progress, menu scrolling and explicit selection by updating the
// state and telling the menu what to reload and where to scroll.
package controller

import (
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/pagingmenu/internal/distance"
	"github.com/oakwood-commons/pagingmenu/internal/layout"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// Menu is the scrollable strip the controller drives.
type Menu interface {
	// Width is the visible width of the menu.
	Width() float64
	ContentOffset() float64
	SetContentOffset(x float64, animated bool)
	// IsDragging reports whether the user is currently scrolling the menu.
	IsDragging() bool
	// IsAttached reports whether the menu is on screen. Until it is, only
	// the state is tracked.
	IsAttached() bool
	// Reload replaces the menu's cells. A nil diff asks for a full reload.
	Reload(l layout.Layout, diff *paging.Diff)
	// Invalidate asks for a redraw of the existing cells. sizes is set when
	// cell widths changed.
	Invalidate(l layout.Layout, sizes bool)
}

// Content is told which page to show.
type Content interface {
	SelectContent(item paging.Item, direction paging.Direction, animated bool)
	RemoveContent()
}

// Source answers neighbor queries for the items shown in the menu.
type Source interface {
	ItemBefore(item paging.Item) (paging.Item, bool)
	ItemAfter(item paging.Item) (paging.Item, bool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSizeSource makes cell widths depend on the item and its selection.
func WithSizeSource(src paging.SizeSource) Option {
	return func(c *Controller) { c.sizes = paging.NewSizeCache(src) }
}

// WithMeasurer measures self-sizing cells when they enter the window.
func WithMeasurer(m layout.Measurer) Option {
	return func(c *Controller) { c.measurer = m }
}

// WithLogger sets the logger for state transitions.
func WithLogger(log logr.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// Controller is the paging state machine. It is not safe for concurrent
// use; every call is expected on the UI goroutine.
type Controller struct {
	opts     paging.Options
	menu     Menu
	content  Content
	source   Source
	sizes    *paging.SizeCache
	measurer layout.Measurer
	log      logr.Logger

	state  paging.State
	items  paging.Items
	layout layout.Layout
}

// New creates a controller in the empty state.
func New(opts paging.Options, menu Menu, content Content, source Source, options ...Option) *Controller {
	c := &Controller{
		opts:    opts,
		menu:    menu,
		content: content,
		source:  source,
		log:     logr.Discard(),
	}
	for _, o := range options {
		o(c)
	}
	if c.sizes == nil {
		c.sizes = paging.NewSizeCache(nil)
	}
	c.relayout()
	return c
}

// State returns the current paging state.
func (c *Controller) State() paging.State { return c.state }

// Items returns the materialized window.
func (c *Controller) Items() paging.Items { return c.items }

// Layout returns the last computed menu geometry.
func (c *Controller) Layout() layout.Layout { return c.layout }

// Options returns the layout options the controller was built with.
func (c *Controller) Options() paging.Options { return c.opts }

// Select moves the selection to item. It reports whether the request was
// accepted; selecting while a transition is running, or selecting the
// current item, is ignored.
func (c *Controller) Select(item paging.Item, animated bool) bool {
	switch c.state.Kind {
	case paging.StateEmpty:
		c.setState(paging.Selected(item))
		if !c.menu.IsAttached() {
			return true
		}
		c.reloadItems(item, false)
		c.content.SelectContent(item, paging.None(), false)
		c.scrollTo(item, false)
		return true

	case paging.StateSelected:
		current := c.state.Item
		if current.Equal(item) {
			return false
		}
		if !animated {
			dir := c.items.Direction(current, item)
			c.setState(paging.Selected(item))
			if c.menu.IsAttached() {
				c.reloadItems(item, false)
				c.scrollTo(item, false)
			}
			c.content.SelectContent(item, dir, false)
			return true
		}

		c.appendIfNeeded(item)
		offset, d := c.transition(current, item)
		c.setState(paging.Scrolling(current, &item, 0, offset, d))
		c.relayout()
		c.content.SelectContent(item, c.items.Direction(current, item), true)
		return true

	default:
		c.log.V(1).Info("selection ignored while scrolling", "item", item.ID)
		return false
	}
}

// SelectNext selects the item after the current one.
func (c *Controller) SelectNext(animated bool) bool {
	cur, ok := c.current()
	if !ok {
		return false
	}
	next, ok := c.source.ItemAfter(cur)
	if !ok {
		return false
	}
	return c.Select(next, animated)
}

// SelectPrevious selects the item before the current one.
func (c *Controller) SelectPrevious(animated bool) bool {
	cur, ok := c.current()
	if !ok {
		return false
	}
	prev, ok := c.source.ItemBefore(cur)
	if !ok {
		return false
	}
	return c.Select(prev, animated)
}

// ContentScrolled feeds the content's transition progress into the menu.
// Positive progress moves towards the next item, negative towards the
// previous one.
func (c *Controller) ContentScrolled(progress float64) {
	switch c.state.Kind {
	case paging.StateSelected:
		current := c.state.Item
		var (
			upcoming paging.Item
			ok       bool
		)
		switch {
		case progress > 0:
			upcoming, ok = c.source.ItemAfter(current)
		case progress < 0:
			upcoming, ok = c.source.ItemBefore(current)
		default:
			return
		}
		if !ok {
			c.updateScrolling(current, nil, progress, c.menu.ContentOffset(), 0)
			return
		}
		c.appendIfNeeded(upcoming)
		offset, d := c.transition(current, upcoming)
		c.updateScrolling(current, &upcoming, progress, offset, d)

	case paging.StateScrolling:
		s := c.state
		old := s.Progress
		if progress == 0 || (old < 0 && progress > 0) || (old > 0 && progress < 0) {
			c.setState(paging.Selected(s.Item))
			c.relayout()
			return
		}
		c.updateScrolling(s.Item, s.Upcoming, progress, s.InitialOffset, s.Distance)
	}
}

// ContentFinishedScrolling commits a finished content transition.
func (c *Controller) ContentFinishedScrolling() {
	if c.state.Kind != paging.StateScrolling {
		return
	}
	s := c.state
	if s.Upcoming == nil {
		c.setState(paging.Selected(s.Item))
		c.relayout()
		return
	}
	item := *s.Upcoming
	c.setState(paging.Selected(item))
	if c.menu.IsDragging() {
		c.relayout()
		return
	}
	c.reloadItems(item, false)
	c.scrollTo(item, c.opts.Transition == paging.TransitionAnimateAfter)
}

// TransitionSize rebuilds the window after the viewport changed size.
func (c *Controller) TransitionSize() {
	item, ok := c.current()
	if !ok {
		return
	}
	c.sizes.Clear()
	c.setState(paging.Selected(item))
	c.reloadItems(item, false)
	c.scrollTo(item, false)
}

// ReloadData rebuilds the menu around item and replaces the content.
func (c *Controller) ReloadData(item paging.Item) {
	c.ReloadMenu(item)
	c.content.RemoveContent()
	c.content.SelectContent(item, paging.None(), false)
	c.setState(paging.Selected(item))
	c.menu.Invalidate(c.layout, false)
}

// ReloadMenu rebuilds only the menu around item.
func (c *Controller) ReloadMenu(item paging.Item) {
	c.sizes.Clear()
	c.setState(paging.Selected(item))
	c.items = c.window(c.generate(item))
	c.measure()
	c.relayout()
	c.menu.Reload(c.layout, nil)
	c.scrollTo(item, false)
}

// RemoveAll empties the menu and the content.
func (c *Controller) RemoveAll() {
	c.setState(paging.Empty())
	c.sizes.Clear()
	c.items = paging.NewItems(nil, false, false)
	c.relayout()
	c.menu.Reload(c.layout, nil)
	c.content.RemoveContent()
}

// ViewAppeared lays the menu out once it is attached, selecting whatever was
// selected before it could be drawn.
func (c *Controller) ViewAppeared() {
	item, ok := c.current()
	if !ok {
		return
	}
	c.setState(paging.Selected(item))
	c.reloadItems(item, false)
	c.content.SelectContent(item, paging.None(), false)
	c.scrollTo(item, false)
}

// MenuScrolled shifts the window when the menu is scrolled close to an edge
// that has more items behind it.
func (c *Controller) MenuScrolled() {
	if c.items.Len() == 0 {
		return
	}
	offset := c.menu.ContentOffset()
	width := c.menu.Width()
	insets := c.layout.ContentInsets

	if offset <= insets.Left && c.items.HasItemsBefore() {
		first, _ := c.items.First()
		c.reloadItems(first, false)
	} else if offset+width+insets.Right >= c.layout.ContentWidth && c.items.HasItemsAfter() {
		last, _ := c.items.Last()
		c.reloadItems(last, false)
	}
}

func (c *Controller) current() (paging.Item, bool) {
	return c.state.Current()
}

func (c *Controller) setState(s paging.State) {
	if !c.state.Equal(s) {
		c.log.V(2).Info("state changed", "from", c.state.Kind.String(), "to", s.Kind.String())
	}
	c.state = s
}

func (c *Controller) updateScrolling(item paging.Item, upcoming *paging.Item, progress, initial, d float64) {
	c.setState(paging.Scrolling(item, upcoming, progress, initial, d))
	c.relayout()
	if upcoming == nil {
		c.menu.Invalidate(c.layout, false)
		return
	}
	if c.opts.Transition == paging.TransitionScrollAlongside &&
		c.layout.ContentWidth >= c.menu.Width() && progress != 0 {
		c.menu.SetContentOffset(initial+d*abs(progress), false)
	}
	c.menu.Invalidate(c.layout, c.sizes.HasSource())
}

// transition returns the current offset and the distance the menu has to
// travel to bring to into position.
func (c *Controller) transition(from, to paging.Item) (float64, float64) {
	in := distance.Input{
		From:           from,
		To:             to,
		ContentOffset:  c.menu.ContentOffset(),
		ViewWidth:      c.menu.Width(),
		ContentWidth:   c.layout.ContentWidth,
		HasItemsBefore: c.items.HasItemsBefore(),
		HasItemsAfter:  c.items.HasItemsAfter(),
		Position:       c.opts.ScrollPosition,
		Sizes:          c.sizes,
	}
	if f, ok := c.layout.FrameOf(from); ok {
		in.FromFrame = &f
	}
	if f, ok := c.layout.FrameOf(to); ok {
		in.ToFrame = &f
	}
	return in.ContentOffset, distance.Calculate(in)
}

func (c *Controller) appendIfNeeded(upcoming paging.Item) {
	if !c.items.Contains(upcoming) {
		c.reloadItems(upcoming, true)
	}
}

// reloadItems regenerates the window around item and keeps the items that
// stay on screen where they are by compensating the content offset.
func (c *Controller) reloadItems(item paging.Item, keepExisting bool) {
	generated := c.generate(item)
	if keepExisting {
		generated = paging.Union(c.items.Items(), generated)
	}

	old, oldLayout := c.items, c.layout
	c.items = c.window(generated)
	c.measure()
	c.relayout()

	diff := paging.NewDiff(old, c.items)
	var adjust float64
	for _, i := range diff.Removed() {
		adjust += oldLayout.Cells[i].Frame.Width + c.opts.ItemSpacing
	}
	for _, i := range diff.Added() {
		adjust -= c.layout.Cells[i].Frame.Width + c.opts.ItemSpacing
	}

	c.log.V(1).Info("window reloaded",
		"around", item.ID,
		"items", c.items.Len(),
		"added", len(diff.Added()),
		"removed", len(diff.Removed()),
	)

	c.menu.Reload(c.layout, &diff)
	offset := c.menu.ContentOffset() - adjust
	c.menu.SetContentOffset(offset, false)

	if c.state.Kind == paging.StateScrolling {
		s := c.state
		up := s.Item
		if s.Upcoming != nil {
			up = *s.Upcoming
		}
		_, d := c.transition(s.Item, up)
		initial := offset - (s.Distance - d)
		c.state = paging.Scrolling(s.Item, s.Upcoming, s.Progress, initial, s.Distance)
	}
}

func (c *Controller) window(items []paging.Item) paging.Items {
	var before, after bool
	if len(items) > 0 {
		_, before = c.source.ItemBefore(items[0])
		_, after = c.source.ItemAfter(items[len(items)-1])
	}
	return paging.NewItems(items, before, after)
}

// generate walks the source outwards from anchor. With a window radius the
// walk is a fixed number of steps each way; otherwise it fills the menu
// width on both sides and hands leftover width back to the leading side.
func (c *Controller) generate(anchor paging.Item) []paging.Item {
	before := []paging.Item{}
	after := []paging.Item{}
	prev, next := anchor, anchor

	if r := c.opts.WindowRadius; r > 0 {
		for i := 0; i < r; i++ {
			item, ok := c.source.ItemBefore(prev)
			if !ok {
				break
			}
			before = append(before, item)
			prev = item
		}
		for i := 0; i < r; i++ {
			item, ok := c.source.ItemAfter(next)
			if !ok {
				break
			}
			after = append(after, item)
			next = item
		}
		return joinWindow(before, anchor, after)
	}

	width := c.menu.Width()
	remaining := width
	for remaining > 0 {
		item, ok := c.source.ItemBefore(prev)
		if !ok {
			break
		}
		remaining -= c.itemWidth(item)
		before = append(before, item)
		prev = item
	}

	remaining += width
	for remaining > 0 {
		item, ok := c.source.ItemAfter(next)
		if !ok {
			break
		}
		remaining -= c.itemWidth(item)
		after = append(after, item)
		next = item
	}

	for remaining > 0 {
		item, ok := c.source.ItemBefore(prev)
		if !ok {
			break
		}
		remaining -= c.itemWidth(item)
		before = append(before, item)
		prev = item
	}
	return joinWindow(before, anchor, after)
}

// joinWindow builds the ordered window from items collected walking away
// from the anchor.
func joinWindow(before []paging.Item, anchor paging.Item, after []paging.Item) []paging.Item {
	out := make([]paging.Item, 0, len(before)+1+len(after))
	for i := len(before) - 1; i >= 0; i-- {
		out = append(out, before[i])
	}
	out = append(out, anchor)
	return append(out, after...)
}

func (c *Controller) itemWidth(item paging.Item) float64 {
	cur, ok := c.current()
	if !ok {
		return c.opts.ItemSize.BaseWidth()
	}
	return layout.ItemWidth(c.opts, c.sizes, item, cur.Equal(item))
}

func (c *Controller) measure() {
	if c.opts.ItemSize.Kind == paging.SizeSelfSizing {
		layout.Measure(c.items, c.sizes, c.measurer)
	}
}

func (c *Controller) relayout() {
	var width float64
	if c.menu != nil {
		width = c.menu.Width()
	}
	c.layout = layout.Compute(layout.Input{
		Options:   c.opts,
		State:     c.state,
		Items:     c.items,
		ViewWidth: width,
		Sizes:     c.sizes,
	})
}

// scrollTo moves the menu so item sits at the configured scroll position.
func (c *Controller) scrollTo(item paging.Item, animated bool) {
	f, ok := c.layout.FrameOf(item)
	if !ok {
		return
	}
	width := c.menu.Width()
	var x float64
	switch c.opts.ScrollPosition {
	case paging.ScrollLeft:
		x = f.MinX()
	case paging.ScrollRight:
		x = f.MaxX() - width
	default:
		x = f.MidX() - width/2
	}
	x = min(x, max(0, c.layout.ContentWidth-width))
	c.menu.SetContentOffset(max(0, x), animated)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
