// Package pager ties the menu controller to the content page manager. It
// creates a page view per item, forwards content scroll progress to the
// menu and commits or cancels transitions on both sides together.
package pager

import (
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/pagingmenu/internal/controller"
	"github.com/oakwood-commons/pagingmenu/internal/layout"
	"github.com/oakwood-commons/pagingmenu/internal/pageview"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// Observer is notified about content transitions in terms of items.
type Observer interface {
	WillScroll(from, to paging.Item)
	// IsScrolling reports progress; to is nil when scrolling past an edge.
	IsScrolling(from paging.Item, to *paging.Item, progress float64)
	DidFinishScrolling(from, to paging.Item, success bool)
	// DidSelect reports an accepted explicit selection.
	DidSelect(item paging.Item)
}

// Factory creates the page view for an item. Views must be distinct for
// distinct items.
type Factory[V comparable] func(item paging.Item) V

type config struct {
	observer   Observer
	log        logr.Logger
	controller []controller.Option
}

// Option configures a Pager.
type Option func(*config)

// WithObserver registers an observer for content transitions.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithLogger sets the logger. It is handed to the controller as well.
func WithLogger(log logr.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithControllerOptions passes options through to the menu controller.
func WithControllerOptions(opts ...controller.Option) Option {
	return func(c *config) { c.controller = append(c.controller, opts...) }
}

// Pager coordinates a menu and a content host for one item source.
type Pager[V comparable] struct {
	ctrl    *controller.Controller
	pages   *pageview.Manager[V]
	host    pageview.Applier[V]
	source  controller.Source
	factory Factory[V]
	obs     Observer
	log     logr.Logger

	items map[V]paging.Item
	views map[string]V
}

// New builds a pager. The host performs the page effects; the menu is
// driven by the controller.
func New[V comparable](
	opts paging.Options,
	menu controller.Menu,
	host pageview.Applier[V],
	source controller.Source,
	factory Factory[V],
	options ...Option,
) *Pager[V] {
	cfg := config{log: logr.Discard()}
	for _, o := range options {
		o(&cfg)
	}

	p := &Pager[V]{
		host:    host,
		source:  source,
		factory: factory,
		obs:     cfg.observer,
		log:     cfg.log,
		items:   map[V]paging.Item{},
		views:   map[string]V{},
	}
	p.pages = pageview.NewManager[V](pageSource[V]{p})
	ctrlOpts := append([]controller.Option{controller.WithLogger(cfg.log)}, cfg.controller...)
	p.ctrl = controller.New(opts, menu, content[V]{p}, source, ctrlOpts...)
	return p
}

// Controller exposes the menu controller.
func (p *Pager[V]) Controller() *controller.Controller { return p.ctrl }

// State returns the menu's paging state.
func (p *Pager[V]) State() paging.State { return p.ctrl.State() }

// Layout returns the current menu geometry.
func (p *Pager[V]) Layout() layout.Layout { return p.ctrl.Layout() }

// Current returns the selected item.
func (p *Pager[V]) Current() (paging.Item, bool) { return p.ctrl.State().Current() }

// Page returns the selected page view.
func (p *Pager[V]) Page() (V, bool) { return p.pages.Selected() }

// Pages returns the live page views in order.
func (p *Pager[V]) Pages() []V { return p.pages.Views() }

// PageState returns the page manager's state.
func (p *Pager[V]) PageState() pageview.State { return p.pages.State() }

// ItemOf returns the item a live page view shows.
func (p *Pager[V]) ItemOf(v V) (paging.Item, bool) {
	item, ok := p.items[v]
	return item, ok
}

// Select selects item, animating the content when animated is set.
func (p *Pager[V]) Select(item paging.Item, animated bool) bool {
	if !p.ctrl.Select(item, animated) {
		return false
	}
	if p.obs != nil {
		p.obs.DidSelect(item)
	}
	return true
}

// SelectNext selects the item after the current one.
func (p *Pager[V]) SelectNext(animated bool) bool {
	cur, ok := p.Current()
	if !ok {
		return false
	}
	next, ok := p.source.ItemAfter(cur)
	return ok && p.Select(next, animated)
}

// SelectPrevious selects the item before the current one.
func (p *Pager[V]) SelectPrevious(animated bool) bool {
	cur, ok := p.Current()
	if !ok {
		return false
	}
	prev, ok := p.source.ItemBefore(cur)
	return ok && p.Select(prev, animated)
}

// Reload rebuilds the menu and the content around the current item.
func (p *Pager[V]) Reload() {
	if item, ok := p.Current(); ok {
		p.ReloadAround(item)
	}
}

// ReloadAround rebuilds the menu and the content around item.
func (p *Pager[V]) ReloadAround(item paging.Item) { p.ctrl.ReloadData(item) }

// ReloadMenu rebuilds only the menu around the current item.
func (p *Pager[V]) ReloadMenu() {
	if item, ok := p.Current(); ok {
		p.ctrl.ReloadMenu(item)
	}
}

// RemoveAll clears the menu and the content.
func (p *Pager[V]) RemoveAll() { p.ctrl.RemoveAll() }

// Resize rebuilds the menu after the viewport changed size.
func (p *Pager[V]) Resize() { p.ctrl.TransitionSize() }

// MenuScrolled must be called whenever the menu's content offset changes
// through user interaction.
func (p *Pager[V]) MenuScrolled() { p.ctrl.MenuScrolled() }

// ViewWillAppear starts the appearance of the pager.
func (p *Pager[V]) ViewWillAppear(animated bool) {
	p.ctrl.ViewAppeared()
	p.apply(p.pages.ViewWillAppear(animated))
}

// ViewDidAppear completes the appearance of the pager.
func (p *Pager[V]) ViewDidAppear(animated bool) { p.apply(p.pages.ViewDidAppear(animated)) }

// ViewWillDisappear starts the disappearance of the pager.
func (p *Pager[V]) ViewWillDisappear(animated bool) { p.apply(p.pages.ViewWillDisappear(animated)) }

// ViewDidDisappear completes the disappearance of the pager.
func (p *Pager[V]) ViewDidDisappear(animated bool) { p.apply(p.pages.ViewDidDisappear(animated)) }

// WillBeginDragging marks the start of a content drag.
func (p *Pager[V]) WillBeginDragging() { p.pages.WillBeginDragging() }

// WillEndDragging marks the end of a content drag.
func (p *Pager[V]) WillEndDragging() { p.pages.WillEndDragging() }

// DidScroll reports the content's scroll progress relative to the selected
// page: one page forward is 1, one page back is -1.
func (p *Pager[V]) DidScroll(progress float64) { p.apply(p.pages.DidScroll(progress)) }

func (p *Pager[V]) view(item paging.Item) V {
	if v, ok := p.views[item.ID]; ok {
		return v
	}
	v := p.factory(item)
	p.views[item.ID] = v
	p.items[v] = item
	return v
}

// apply hands effects to the host one at a time and reacts to the scroll
// events among them. Views are forgotten only once the whole batch has run
// so later effects in the batch can still be resolved to items.
func (p *Pager[V]) apply(effects []pageview.Effect[V]) {
	var removed []V
	for i, e := range effects {
		pageview.Apply(p.host, effects[i:i+1])

		switch e.Kind {
		case pageview.EffectRemove:
			removed = append(removed, e.View)
		case pageview.EffectWillScroll:
			if p.obs != nil {
				p.obs.WillScroll(p.items[e.From], p.items[e.To])
			}
		case pageview.EffectIsScrolling:
			p.ctrl.ContentScrolled(e.Progress)
			if p.obs != nil {
				var to *paging.Item
				if e.HasTo {
					item := p.items[e.To]
					to = &item
				}
				p.obs.IsScrolling(p.items[e.From], to, e.Progress)
			}
		case pageview.EffectDidFinishScrolling:
			p.finish(e.Success)
			if p.obs != nil {
				p.obs.DidFinishScrolling(p.items[e.From], p.items[e.To], e.Success)
			}
		}
	}

	for _, v := range removed {
		item, ok := p.items[v]
		if !ok {
			continue
		}
		delete(p.items, v)
		if cur, ok := p.views[item.ID]; ok && cur == v {
			delete(p.views, item.ID)
		}
	}
}

func (p *Pager[V]) finish(success bool) {
	if !success {
		return
	}
	// A finished swipe past the edge has nothing to select; the menu only
	// has to settle back onto the current item.
	if s := p.ctrl.State(); s.Kind == paging.StateScrolling && s.Upcoming == nil {
		p.ctrl.TransitionSize()
		return
	}
	p.ctrl.ContentFinishedScrolling()
}

// content receives selection requests from the controller.
type content[V comparable] struct {
	p *Pager[V]
}

func (c content[V]) SelectContent(item paging.Item, dir paging.Direction, animated bool) {
	p := c.p
	if v, ok := p.pages.Selected(); ok {
		if cur, ok := p.items[v]; ok && cur.Equal(item) {
			return
		}
	}
	p.log.V(1).Info("select content", "item", item.ID, "direction", dir.String(), "animated", animated)

	switch {
	case dir.Kind == paging.DirectionForward && dir.Sibling:
		if _, ok := p.pages.Next(); ok {
			p.apply(p.pages.SelectNext(animated))
			return
		}
	case dir.Kind == paging.DirectionReverse && dir.Sibling:
		if _, ok := p.pages.Previous(); ok {
			p.apply(p.pages.SelectPrevious(animated))
			return
		}
	}
	p.apply(p.pages.Select(p.view(item), pageDirection(dir), animated))
}

func (c content[V]) RemoveContent() {
	c.p.apply(c.p.pages.RemoveAll())
}

func pageDirection(d paging.Direction) pageview.Direction {
	switch d.Kind {
	case paging.DirectionForward:
		return pageview.DirectionForward
	case paging.DirectionReverse:
		return pageview.DirectionReverse
	default:
		return pageview.DirectionNone
	}
}

// pageSource answers the page manager's neighbor queries through the item
// source.
type pageSource[V comparable] struct {
	p *Pager[V]
}

func (s pageSource[V]) Before(v V) (V, bool) {
	var zero V
	item, ok := s.p.items[v]
	if !ok {
		return zero, false
	}
	prev, ok := s.p.source.ItemBefore(item)
	if !ok {
		return zero, false
	}
	return s.p.view(prev), true
}

func (s pageSource[V]) After(v V) (V, bool) {
	var zero V
	item, ok := s.p.items[v]
	if !ok {
		return zero, false
	}
	next, ok := s.p.source.ItemAfter(item)
	if !ok {
		return zero, false
	}
	return s.p.view(next), true
}
