// Package pageview manages the three live content views of the pager: the
// previous, the selected and the next one. The manager is a pure state
// machine; every operation returns the ordered effects the host must apply.
package pageview

// Direction is the direction of a content transition.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionReverse
)

// State is the coarse state of the manager.
type State int

const (
	StateEmpty State = iota
	StateSelected
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateSelected:
		return "selected"
	case StateTransitioning:
		return "transitioning"
	default:
		return "empty"
	}
}

// DataSource resolves the neighbours of a view.
type DataSource[V comparable] interface {
	Before(v V) (V, bool)
	After(v V) (V, bool)
}

type appearance int

const (
	disappeared appearance = iota
	appearing
	appeared
	disappearing
)

type slot[V comparable] struct {
	view V
	ok   bool
}

func some[V comparable](v V) slot[V] { return slot[V]{view: v, ok: true} }

func (s slot[V]) is(v V) bool { return s.ok && s.view == v }

func (s slot[V]) same(o slot[V]) bool { return s.ok && o.ok && s.view == o.view }

// Manager owns the previous, selected and next views.
type Manager[V comparable] struct {
	source DataSource[V]

	previous slot[V]
	selected slot[V]
	next     slot[V]

	initialDirection Direction
	didReload        bool
	didSelect        bool

	appearance         appearance
	appearanceAnimated bool

	effects []Effect[V]
}

// NewManager creates a manager that resolves neighbours from source. The
// manager starts out disappeared: appearance transitions are held back until
// the container appears.
func NewManager[V comparable](source DataSource[V]) *Manager[V] {
	return &Manager[V]{source: source}
}

// State returns the coarse state.
func (m *Manager[V]) State() State {
	switch {
	case !m.selected.ok:
		return StateEmpty
	case m.initialDirection != DirectionNone && !m.didReload:
		return StateTransitioning
	default:
		return StateSelected
	}
}

// Selected returns the selected view.
func (m *Manager[V]) Selected() (V, bool) { return m.selected.view, m.selected.ok }

// Previous returns the view before the selected one.
func (m *Manager[V]) Previous() (V, bool) { return m.previous.view, m.previous.ok }

// Next returns the view after the selected one.
func (m *Manager[V]) Next() (V, bool) { return m.next.view, m.next.ok }

// Views returns the held views in order.
func (m *Manager[V]) Views() []V {
	var out []V
	for _, s := range []slot[V]{m.previous, m.selected, m.next} {
		if s.ok {
			out = append(out, s.view)
		}
	}
	return out
}

// Select makes v the selected view. Animated selections of a direct
// neighbour replace that neighbour and ask the host to scroll; the
// transition then completes through DidScroll. Everything else swaps the
// views in place.
func (m *Manager[V]) Select(v V, direction Direction, animated bool) []Effect[V] {
	if m.selected.is(v) {
		return nil
	}
	if !m.selected.ok || !animated {
		m.selectView(v, animated)
		return m.flush()
	}

	m.resetState()
	m.didSelect = true

	switch direction {
	case DirectionForward:
		if m.next.ok {
			m.emit(Remove(m.next.view))
		}
		m.emit(Add(v))
		m.next = some(v)
		m.layout()
		m.emit(ScrollForward[V]())
	case DirectionReverse:
		if m.previous.ok {
			m.emit(Remove(m.previous.view))
		}
		m.emit(Add(v))
		m.previous = some(v)
		m.layout()
		m.emit(ScrollReverse[V]())
	default:
		m.didSelect = false
		m.selectView(v, animated)
	}
	return m.flush()
}

// SelectNext moves to the next view.
func (m *Manager[V]) SelectNext(animated bool) []Effect[V] {
	if !m.selected.ok || !m.next.ok {
		return nil
	}
	if animated {
		m.resetState()
		m.emit(ScrollForward[V]())
		return m.flush()
	}

	oldSelected, next := m.selected, m.next
	newNext := m.after(next.view)

	m.beginAppearance(false, oldSelected.view, false)
	m.beginAppearance(true, next.view, false)
	if m.previous.ok {
		m.emit(Remove(m.previous.view))
	}
	if newNext.ok {
		m.emit(Add(newNext.view))
	}
	m.previous, m.selected, m.next = oldSelected, next, newNext
	m.layout()
	m.endAppearance(oldSelected.view)
	m.endAppearance(next.view)
	return m.flush()
}

// SelectPrevious moves to the previous view.
func (m *Manager[V]) SelectPrevious(animated bool) []Effect[V] {
	if !m.selected.ok || !m.previous.ok {
		return nil
	}
	if animated {
		m.resetState()
		m.emit(ScrollReverse[V]())
		return m.flush()
	}

	oldSelected, previous := m.selected, m.previous
	newPrevious := m.before(previous.view)

	m.beginAppearance(false, oldSelected.view, false)
	m.beginAppearance(true, previous.view, false)
	if m.next.ok {
		m.emit(Remove(m.next.view))
	}
	if newPrevious.ok {
		m.emit(Add(newPrevious.view))
	}
	m.previous, m.selected, m.next = newPrevious, previous, oldSelected
	m.layout()
	m.endAppearance(oldSelected.view)
	m.endAppearance(previous.view)
	return m.flush()
}

// RemoveAll tears down every held view.
func (m *Manager[V]) RemoveAll() []Effect[V] {
	if !m.selected.ok {
		return nil
	}
	sel := m.selected.view
	m.beginAppearance(false, sel, false)
	for _, s := range []slot[V]{m.selected, m.previous, m.next} {
		if s.ok {
			m.emit(Remove(s.view))
		}
	}
	m.previous, m.selected, m.next = slot[V]{}, slot[V]{}, slot[V]{}
	m.initialDirection = DirectionNone
	m.didReload = false
	m.didSelect = false
	m.layout()
	m.endAppearance(sel)
	return m.flush()
}

// ViewWillAppear is called when the container is about to appear.
func (m *Manager[V]) ViewWillAppear(animated bool) []Effect[V] {
	m.appearance = appearing
	m.appearanceAnimated = animated
	if m.selected.ok {
		m.beginAppearance(true, m.selected.view, animated)
		m.layout()
	}
	return m.flush()
}

// ViewDidAppear is called once the container has appeared.
func (m *Manager[V]) ViewDidAppear(bool) []Effect[V] {
	m.appearance = appeared
	if m.selected.ok {
		m.emit(EndAppearance(m.selected.view))
	}
	return m.flush()
}

// ViewWillDisappear is called when the container is about to disappear.
func (m *Manager[V]) ViewWillDisappear(animated bool) []Effect[V] {
	m.appearance = disappearing
	m.appearanceAnimated = animated
	if m.selected.ok {
		m.beginAppearance(false, m.selected.view, animated)
	}
	return m.flush()
}

// ViewDidDisappear is called once the container has disappeared.
func (m *Manager[V]) ViewDidDisappear(bool) []Effect[V] {
	m.appearance = disappeared
	if m.selected.ok {
		m.emit(EndAppearance(m.selected.view))
	}
	return m.flush()
}

// WillBeginDragging is called when a content drag starts.
func (m *Manager[V]) WillBeginDragging() { m.resetState() }

// WillEndDragging is called when a content drag is released.
func (m *Manager[V]) WillEndDragging() { m.resetState() }

// DidScroll tracks the content scroll progress. The sign of the first
// non-zero progress fixes the direction of the transition; returning to zero
// or flipping the sign cancels it and reaching ±1 completes it.
func (m *Manager[V]) DidScroll(progress float64) []Effect[V] {
	current := directionOf(progress)

	switch {
	case m.initialDirection == DirectionNone:
		switch current {
		case DirectionForward:
			m.initialDirection = DirectionForward
			m.onScroll(progress)
			m.willScrollForward()
		case DirectionReverse:
			m.initialDirection = DirectionReverse
			m.onScroll(progress)
			m.willScrollReverse()
		default:
			m.onScroll(progress)
		}
	case !m.didReload && current != DirectionNone && current != m.initialDirection:
		old := m.initialDirection
		m.initialDirection = current
		m.cancel(old)
		m.onScroll(progress)
		if current == DirectionForward {
			m.willScrollForward()
		} else {
			m.willScrollReverse()
		}
	default:
		m.onScroll(progress)
	}

	if !m.didReload {
		switch {
		case progress >= 1:
			m.didReload = true
			m.didScrollForward()
		case progress <= -1:
			m.didReload = true
			m.didScrollReverse()
		case progress == 0 && m.initialDirection != DirectionNone:
			m.didReload = true
			m.cancel(m.initialDirection)
		}
	}
	return m.flush()
}

func directionOf(progress float64) Direction {
	switch {
	case progress > 0:
		return DirectionForward
	case progress < 0:
		return DirectionReverse
	default:
		return DirectionNone
	}
}

func (m *Manager[V]) selectView(v V, animated bool) {
	oldPrevious, oldSelected, oldNext := m.previous, m.selected, m.next
	newPrevious := m.before(v)
	newNext := m.after(v)

	if oldSelected.ok {
		m.beginAppearance(false, oldSelected.view, animated)
	}
	m.beginAppearance(true, v, animated)

	if oldPrevious.ok && oldPrevious.view != v && !oldPrevious.same(newPrevious) && !oldPrevious.same(newNext) {
		m.emit(Remove(oldPrevious.view))
	}
	if oldSelected.ok && !oldSelected.same(newPrevious) && !oldSelected.same(newNext) {
		m.emit(Remove(oldSelected.view))
	}
	if oldNext.ok && oldNext.view != v && !oldNext.same(newPrevious) && !oldNext.same(newNext) {
		m.emit(Remove(oldNext.view))
	}

	if newPrevious.ok && !newPrevious.same(oldSelected) && !newPrevious.same(oldPrevious) && !newPrevious.same(oldNext) {
		m.emit(Add(newPrevious.view))
	}
	if !oldNext.is(v) && !oldPrevious.is(v) {
		m.emit(Add(v))
	}
	if newNext.ok && !newNext.same(oldSelected) && !newNext.same(oldPrevious) && !newNext.same(oldNext) {
		m.emit(Add(newNext.view))
	}

	m.previous, m.selected, m.next = newPrevious, some(v), newNext
	m.layout()

	if oldSelected.ok {
		m.endAppearance(oldSelected.view)
	}
	m.endAppearance(v)
}

func (m *Manager[V]) resetState() {
	if m.didReload {
		m.initialDirection = DirectionNone
	}
	m.didReload = false
}

func (m *Manager[V]) onScroll(progress float64) {
	if !m.selected.ok {
		return
	}
	var to slot[V]
	switch m.initialDirection {
	case DirectionForward:
		to = m.next
	case DirectionReverse:
		to = m.previous
	default:
		return
	}
	if to.ok {
		m.emit(IsScrolling(m.selected.view, to.view, progress))
	} else {
		m.emit(IsScrollingToEdge(m.selected.view, progress))
	}
}

func (m *Manager[V]) willScrollForward() {
	if m.selected.ok && m.next.ok {
		m.emit(WillScroll(m.selected.view, m.next.view))
		m.beginAppearance(true, m.next.view, true)
		m.beginAppearance(false, m.selected.view, true)
	}
}

func (m *Manager[V]) willScrollReverse() {
	if m.selected.ok && m.previous.ok {
		m.emit(WillScroll(m.selected.view, m.previous.view))
		m.beginAppearance(true, m.previous.view, true)
		m.beginAppearance(false, m.selected.view, true)
	}
}

func (m *Manager[V]) cancel(d Direction) {
	switch d {
	case DirectionForward:
		m.cancelScrollForward()
	case DirectionReverse:
		m.cancelScrollReverse()
	}
}

func (m *Manager[V]) cancelScrollForward() {
	sel, oldNext := m.selected, m.next
	if !sel.ok {
		return
	}
	if oldNext.ok {
		m.beginAppearance(true, sel.view, true)
		m.beginAppearance(false, oldNext.view, true)
	}
	if m.didSelect {
		newNext := m.after(sel.view)
		if oldNext.ok {
			m.emit(Remove(oldNext.view))
		}
		if newNext.ok {
			m.emit(Add(newNext.view))
		}
		m.next = newNext
		m.didSelect = false
		m.layout()
	}
	if oldNext.ok {
		m.endAppearance(sel.view)
		m.endAppearance(oldNext.view)
		m.emit(DidFinishScrolling(sel.view, oldNext.view, false))
	}
}

func (m *Manager[V]) cancelScrollReverse() {
	sel, oldPrevious := m.selected, m.previous
	if !sel.ok {
		return
	}
	if oldPrevious.ok {
		m.beginAppearance(true, sel.view, true)
		m.beginAppearance(false, oldPrevious.view, true)
	}
	if m.didSelect {
		newPrevious := m.before(sel.view)
		if oldPrevious.ok {
			m.emit(Remove(oldPrevious.view))
		}
		if newPrevious.ok {
			m.emit(Add(newPrevious.view))
		}
		m.previous = newPrevious
		m.didSelect = false
		m.layout()
	}
	if oldPrevious.ok {
		m.endAppearance(sel.view)
		m.endAppearance(oldPrevious.view)
		m.emit(DidFinishScrolling(sel.view, oldPrevious.view, false))
	}
}

func (m *Manager[V]) didScrollForward() {
	oldPrevious, oldSelected, oldNext := m.previous, m.selected, m.next
	if !oldSelected.ok || !oldNext.ok {
		return
	}
	m.emit(DidFinishScrolling(oldSelected.view, oldNext.view, true))

	newNext := m.after(oldNext.view)
	if oldPrevious.ok && !oldPrevious.same(newNext) {
		m.emit(Remove(oldPrevious.view))
	}
	if newNext.ok && !newNext.same(oldPrevious) {
		m.emit(Add(newNext.view))
	}

	if m.didSelect {
		newPrevious := m.before(oldNext.view)
		if !newPrevious.same(oldSelected) {
			m.emit(Remove(oldSelected.view))
			if newPrevious.ok {
				m.emit(Add(newPrevious.view))
			}
		}
		m.previous = newPrevious
	} else {
		m.previous = oldSelected
	}
	m.selected, m.next = oldNext, newNext
	m.layout()

	m.endAppearance(oldSelected.view)
	m.endAppearance(oldNext.view)
	m.didSelect = false
}

func (m *Manager[V]) didScrollReverse() {
	oldPrevious, oldSelected, oldNext := m.previous, m.selected, m.next
	if !oldSelected.ok || !oldPrevious.ok {
		return
	}
	m.emit(DidFinishScrolling(oldSelected.view, oldPrevious.view, true))

	newPrevious := m.before(oldPrevious.view)
	if oldNext.ok && !oldNext.same(newPrevious) {
		m.emit(Remove(oldNext.view))
	}
	if newPrevious.ok && !newPrevious.same(oldNext) {
		m.emit(Add(newPrevious.view))
	}

	if m.didSelect {
		newNext := m.after(oldPrevious.view)
		if !newNext.same(oldSelected) {
			m.emit(Remove(oldSelected.view))
			if newNext.ok {
				m.emit(Add(newNext.view))
			}
		}
		m.next = newNext
	} else {
		m.next = oldSelected
	}
	m.previous, m.selected = newPrevious, oldPrevious
	m.layout()

	m.endAppearance(oldSelected.view)
	m.endAppearance(oldPrevious.view)
	m.didSelect = false
}

func (m *Manager[V]) before(v V) slot[V] {
	if m.source == nil {
		return slot[V]{}
	}
	if b, ok := m.source.Before(v); ok {
		return some(b)
	}
	return slot[V]{}
}

func (m *Manager[V]) after(v V) slot[V] {
	if m.source == nil {
		return slot[V]{}
	}
	if a, ok := m.source.After(v); ok {
		return some(a)
	}
	return slot[V]{}
}

func (m *Manager[V]) layout() {
	m.emit(Layout(m.Views()...))
}

// beginAppearance forwards an appearance transition while the container is
// visible. While the container itself is appearing or disappearing the
// child follows the container's transition instead.
func (m *Manager[V]) beginAppearance(isAppearing bool, v V, animated bool) {
	switch m.appearance {
	case appeared:
		m.emit(BeginAppearance(isAppearing, v, animated))
	case appearing:
		m.emit(BeginAppearance(true, v, m.appearanceAnimated))
	case disappearing:
		m.emit(BeginAppearance(false, v, m.appearanceAnimated))
	}
}

func (m *Manager[V]) endAppearance(v V) {
	if m.appearance == appeared {
		m.emit(EndAppearance(v))
	}
}

func (m *Manager[V]) emit(e Effect[V]) {
	m.effects = append(m.effects, e)
}

func (m *Manager[V]) flush() []Effect[V] {
	out := m.effects
	m.effects = nil
	return out
}
