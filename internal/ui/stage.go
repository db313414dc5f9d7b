package ui

import (
	"github.com/go-logr/logr"
)

// stage carries out page effects for the terminal. It only records what
// the pager asked for; the model reads it back to draw and animate.
type stage struct {
	log logr.Logger

	live  map[*Page]bool
	order []*Page

	// pending is the scroll the pager requested and the model has not yet
	// started: 1 forward, -1 reverse.
	pending  int
	finished int
}

func newStage(log logr.Logger) *stage {
	return &stage{log: log, live: map[*Page]bool{}}
}

func (s *stage) AddView(v *Page) {
	s.live[v] = true
	s.log.V(2).Info("add page", "item", v.Item.ID, "page", v.ID)
}

func (s *stage) RemoveView(v *Page) {
	delete(s.live, v)
	v.visible = false
	s.log.V(2).Info("remove page", "item", v.Item.ID, "page", v.ID)
}

func (s *stage) LayoutViews(views []*Page) {
	s.order = append(s.order[:0], views...)
}

func (s *stage) BeginAppearance(appearing bool, v *Page, animated bool) {
	v.visible = appearing
	s.log.V(2).Info("begin appearance", "item", v.Item.ID, "appearing", appearing, "animated", animated)
}

func (s *stage) EndAppearance(v *Page) {
	s.log.V(2).Info("end appearance", "item", v.Item.ID, "visible", v.visible)
}

func (s *stage) ScrollForward() { s.pending = 1 }
func (s *stage) ScrollReverse() { s.pending = -1 }

func (s *stage) WillScroll(from, to *Page) {
	s.log.V(2).Info("will scroll", "from", from.Item.ID, "to", to.Item.ID)
}

func (s *stage) IsScrolling(*Page, *Page, bool, float64) {}

func (s *stage) DidFinishScrolling(from, to *Page, success bool) {
	s.finished++
	s.log.V(2).Info("did finish scrolling", "from", from.Item.ID, "to", to.Item.ID, "success", success)
}

// takePending returns and clears the requested scroll direction.
func (s *stage) takePending() int {
	d := s.pending
	s.pending = 0
	return d
}

// neighbor returns the live page next to v in direction dir.
func (s *stage) neighbor(v *Page, dir int) (*Page, bool) {
	for i, p := range s.order {
		if p != v {
			continue
		}
		j := i + dir
		if j < 0 || j >= len(s.order) {
			return nil, false
		}
		return s.order[j], true
	}
	return nil, false
}
