// Package ui is the terminal host for a pager: a bubbletea model that draws
// the menu strip above the selected page and animates page transitions.
package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/pagingmenu/internal/config"
	"github.com/oakwood-commons/pagingmenu/internal/controller"
	"github.com/oakwood-commons/pagingmenu/internal/pager"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
	"github.com/oakwood-commons/pagingmenu/internal/source"
)

// ErrNoItems is returned when the provider has nothing to show.
var ErrNoItems = errors.New("no items to show")

// bouncePeak is how far the content is pulled when paging past an edge.
const bouncePeak = 0.25

// Options configure a Model.
type Options struct {
	AppName  string
	Paging   paging.Options
	Provider source.Provider
	// Select is looked up in the provider and shown first instead of the
	// provider's start item.
	Select string

	Styles        Styles
	Animate       bool
	Steps         int
	Tick          time.Duration
	MarkdownStyle string
	Wrap          int

	// Width and Height size the model before any window size message.
	Width  int
	Height int

	Logger logr.Logger
}

// OptionsFromConfig builds model options from a loaded configuration.
func OptionsFromConfig(cfg config.Config, p source.Provider) (Options, error) {
	opts, err := cfg.Options()
	if err != nil {
		return Options{}, err
	}
	tick, err := cfg.TickInterval()
	if err != nil {
		return Options{}, err
	}
	style := cfg.UI.MarkdownStyle
	if cfg.UI.NoColor {
		style = "notty"
	}
	return Options{
		AppName:       cfg.App.Name,
		Paging:        opts,
		Provider:      p,
		Styles:        StylesFromTheme(cfg.UI.Theme, cfg.UI.NoColor),
		Animate:       cfg.UI.Animation.Enabled,
		Steps:         cfg.UI.Animation.Steps,
		Tick:          tick,
		MarkdownStyle: style,
		Wrap:          cfg.UI.Wrap,
	}, nil
}

type tickMsg struct{ seq int }

// animation is a running content transition. A bounce pulls the content
// towards a missing neighbour and lets it spring back.
type animation struct {
	seq       int
	dir       float64
	progress  float64
	bounce    bool
	returning bool
}

// Model is the bubbletea model.
type Model struct {
	opts  Options
	keys  keyMap
	log   logr.Logger
	pager *pager.Pager[*Page]
	strip *menuStrip
	stage *stage
	md    *markdownRenderer

	prompt    textinput.Model
	prompting bool
	fullHelp  bool

	start paging.Item
	anim  *animation
	seq   int

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// New builds a model for the provider in opts.
func New(opts Options) (*Model, error) {
	start, err := initialItem(opts.Provider, opts.Select)
	if err != nil {
		return nil, err
	}
	if opts.Steps <= 0 || opts.Tick <= 0 {
		opts.Animate = false
	}

	ti := textinput.New()
	ti.Prompt = "go to: "
	ti.Placeholder = "id, title or date"
	ti.CharLimit = 200

	m := &Model{
		opts:   opts,
		keys:   defaultKeyMap(),
		log:    opts.Logger,
		strip:  &menuStrip{},
		stage:  newStage(opts.Logger),
		md:     newMarkdownRenderer(opts.MarkdownStyle, opts.Wrap),
		prompt: ti,
		start:  start,
	}
	m.pager = pager.New(opts.Paging, m.strip, m.stage, opts.Provider, m.newPage,
		pager.WithLogger(opts.Logger),
		pager.WithObserver(m),
		pager.WithControllerOptions(controller.WithMeasurer(LabelMeasurer)),
	)
	if opts.Width > 0 && opts.Height > 0 {
		m.resize(opts.Width, opts.Height)
	}
	return m, nil
}

func initialItem(p source.Provider, ref string) (paging.Item, error) {
	if ref = strings.TrimSpace(ref); ref != "" {
		if item, ok := p.Lookup(ref); ok {
			return item, nil
		}
		return paging.Item{}, fmt.Errorf("no item matches %q", ref)
	}
	item, ok := p.Start()
	if !ok {
		return paging.Item{}, ErrNoItems
	}
	return item, nil
}

func (m *Model) newPage(item paging.Item) *Page {
	body, ok := m.opts.Provider.Body(item)
	if !ok {
		body = fmt.Sprintf("# %s\n\n`%s` at position %d\n", item.Label(), item.ID, item.Order)
	}
	return newPage(item, body)
}

// Pager exposes the underlying pager.
func (m *Model) Pager() *pager.Pager[*Page] { return m.pager }

// Current returns the selected item.
func (m *Model) Current() (paging.Item, bool) { return m.pager.Current() }

// Animating reports whether a content transition is running.
func (m *Model) Animating() bool { return m.anim != nil }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		return m, m.step(msg)
	case tea.KeyPressMsg:
		if m.prompting {
			return m, m.updatePrompt(msg)
		}
		return m, m.handleKey(msg)
	}
	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width, m.height = w, h
	m.strip.width = float64(w)
	m.prompt.SetWidth(max(w-lipgloss.Width(m.prompt.Prompt)-1, 1))

	if !m.strip.attached {
		m.strip.attached = true
		m.pager.Select(m.start, false)
		m.pager.ViewWillAppear(false)
		m.pager.ViewDidAppear(false)
		return
	}
	m.pager.Resize()
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.pager.ViewWillDisappear(false)
		m.pager.ViewDidDisappear(false)
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.fullHelp = !m.fullHelp
	case key.Matches(msg, m.keys.Next):
		return m.move(1)
	case key.Matches(msg, m.keys.Previous):
		return m.move(-1)
	case key.Matches(msg, m.keys.First):
		return m.selectItem(m.start)
	case key.Matches(msg, m.keys.MenuLeft):
		m.scrollMenu(-1)
	case key.Matches(msg, m.keys.MenuRight):
		m.scrollMenu(1)
	case key.Matches(msg, m.keys.LineUp):
		m.scrollPage(-1)
	case key.Matches(msg, m.keys.LineDown):
		m.scrollPage(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollPage(-m.contentHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.scrollPage(m.contentHeight())
	case key.Matches(msg, m.keys.Goto):
		m.prompting = true
		m.prompt.SetValue("")
		return m.prompt.Focus()
	case key.Matches(msg, m.keys.Reload):
		if m.anim == nil {
			m.pager.Reload()
			m.setStatus("reloaded", false)
		}
	}
	return nil
}

func (m *Model) updatePrompt(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return nil
	case key.Matches(msg, m.keys.Accept):
		query := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		if query == "" {
			return nil
		}
		item, ok := m.resolve(query)
		if !ok {
			m.setStatus(fmt.Sprintf("no item matches %q", query), true)
			return nil
		}
		return m.selectItem(item)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
}

// resolve finds the item for a go-to query: an exact provider lookup
// first, then the closest match among the known items.
func (m *Model) resolve(query string) (paging.Item, bool) {
	if item, ok := m.opts.Provider.Lookup(query); ok {
		return item, true
	}
	window := m.pager.Controller().Items().Items()
	return source.Closest(m.opts.Provider.Candidates(window), query)
}

func (m *Model) move(dir int) tea.Cmd {
	if m.anim != nil {
		return nil
	}
	var ok bool
	if dir > 0 {
		ok = m.pager.SelectNext(m.opts.Animate)
	} else {
		ok = m.pager.SelectPrevious(m.opts.Animate)
	}
	if !ok {
		if m.opts.Animate && m.pager.State().Kind == paging.StateSelected {
			return m.bounce(dir)
		}
		return nil
	}
	return m.startPending()
}

func (m *Model) selectItem(item paging.Item) tea.Cmd {
	if m.anim != nil {
		return nil
	}
	if !m.pager.Select(item, m.opts.Animate) {
		return nil
	}
	return m.startPending()
}

// startPending starts the scroll the pager asked the stage for, if any.
func (m *Model) startPending() tea.Cmd {
	d := m.stage.takePending()
	if d == 0 {
		return nil
	}
	m.seq++
	m.anim = &animation{seq: m.seq, dir: float64(d)}
	return m.tick()
}

func (m *Model) bounce(dir int) tea.Cmd {
	m.pager.WillBeginDragging()
	m.seq++
	m.anim = &animation{seq: m.seq, dir: float64(dir), bounce: true}
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	seq := m.anim.seq
	return tea.Tick(m.opts.Tick, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

// step advances the running animation by one frame.
func (m *Model) step(msg tickMsg) tea.Cmd {
	a := m.anim
	if a == nil || msg.seq != a.seq {
		return nil
	}
	delta := 1 / float64(m.opts.Steps)

	if a.bounce {
		mag := math.Abs(a.progress)
		if a.returning {
			mag = max(mag-delta, 0)
		} else {
			mag = min(mag+delta, bouncePeak)
			a.returning = mag >= bouncePeak
		}
		a.progress = mag * a.dir
		done := a.returning && mag == 0
		if done {
			m.anim = nil
		}
		m.pager.DidScroll(a.progress)
		if done {
			m.pager.WillEndDragging()
			return nil
		}
		return m.tick()
	}

	mag := min(math.Abs(a.progress)+delta, 1)
	a.progress = mag * a.dir
	if mag >= 1 {
		m.anim = nil
	}
	m.pager.DidScroll(a.progress)
	if m.anim == nil {
		return nil
	}
	return m.tick()
}

// scrollMenu scrolls the strip by a third of its width the way a user
// drag would.
func (m *Model) scrollMenu(dir int) {
	if m.anim != nil {
		return
	}
	m.strip.dragging = true
	if m.strip.scrollBy(float64(dir) * max(m.strip.width/3, 1)) {
		m.pager.MenuScrolled()
	}
	m.strip.dragging = false
}

func (m *Model) scrollPage(dy int) {
	if p, ok := m.pager.Page(); ok {
		p.render(m.md, m.width)
		p.scroll(dy, m.contentHeight())
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

// Observer

func (m *Model) WillScroll(from, to paging.Item) {
	m.log.V(1).Info("will scroll", "from", from.ID, "to", to.ID)
}

func (m *Model) IsScrolling(paging.Item, *paging.Item, float64) {}

func (m *Model) DidFinishScrolling(from, to paging.Item, success bool) {
	m.log.V(1).Info("did finish scrolling", "from", from.ID, "to", to.ID, "success", success)
	if !success {
		m.setStatus("", false)
	}
}

func (m *Model) DidSelect(item paging.Item) {
	m.log.V(1).Info("select", "item", item.ID)
	m.setStatus("", false)
}

// Rendering

func (m *Model) menuHeight() int {
	n := 1
	if m.opts.Paging.Indicator.Visible {
		n++
	}
	if m.opts.Paging.Border.Visible {
		n++
	}
	return n
}

func (m *Model) footerHeight() int {
	if m.fullHelp {
		return 2 + len(m.keys.FullHelp())
	}
	return 2
}

func (m *Model) contentHeight() int {
	return max(m.height-m.menuHeight()-m.footerHeight(), 0)
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m *Model) render() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := m.strip.rows(m.opts.Styles)
	rows = append(rows, m.contentRows()...)
	rows = append(rows, m.statusRow())
	rows = append(rows, m.footerRows()...)
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

// contentRows draws the selected page, sliding it against its neighbour
// while a transition runs.
func (m *Model) contentRows() []string {
	w, h := m.width, m.contentHeight()
	if h == 0 {
		return nil
	}
	cur, ok := m.pager.Page()
	if !ok {
		return make([]string, h)
	}
	cur.render(m.md, w)
	from := cur.view(w, h)

	a := m.anim
	if a == nil || a.progress == 0 {
		return from
	}
	shift := int(math.Round(math.Abs(a.progress) * float64(w)))
	to := blank(w, h)
	if next, ok := m.stage.neighbor(cur, int(a.dir)); ok {
		next.render(m.md, w)
		to = next.view(w, h)
	}

	out := make([]string, h)
	for i := range out {
		if a.dir > 0 {
			out[i] = cut(from[i], shift, w) + cut(to[i], 0, shift)
		} else {
			out[i] = cut(to[i], w-shift, w) + cut(from[i], 0, w-shift)
		}
	}
	return out
}

func cut(s string, left, right int) string {
	if right <= left {
		return ""
	}
	return fit(ansi.Cut(s, left, right), right-left)
}

func blank(w, h int) []string {
	out := make([]string, h)
	for i := range out {
		out[i] = strings.Repeat(" ", w)
	}
	return out
}

func (m *Model) statusRow() string {
	st := m.opts.Styles
	left := ""
	if item, ok := m.pager.Current(); ok {
		left = " " + item.Label()
		if l, ok := m.opts.Provider.List(); ok {
			if i, ok := l.IndexOf(item); ok {
				left += fmt.Sprintf("  %d/%d", i+1, l.Len())
			}
		}
	}

	right := m.status
	style := st.Status
	if m.statusErr {
		style = st.StatusErr
	} else if a := m.anim; a != nil && !a.bounce {
		right = fmt.Sprintf("%d%%", int(math.Round(math.Abs(a.progress)*100)))
	}
	if right != "" {
		right += " "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return st.Status.Render(fit(left, m.width))
	}
	return st.Status.Render(left+strings.Repeat(" ", gap)) + style.Render(right)
}

func (m *Model) footerRows() []string {
	st := m.opts.Styles
	if m.prompting {
		return []string{fit(m.prompt.View(), m.width)}
	}
	if !m.fullHelp {
		line := helpLine(st, m.keys.ShortHelp())
		if name := strings.TrimSpace(m.opts.AppName); name != "" {
			line = st.HelpValue.Render(name+"  ") + line
		}
		return []string{fit(line, m.width)}
	}
	groups := m.keys.FullHelp()
	out := make([]string, 0, len(groups)+1)
	for _, g := range groups {
		out = append(out, fit(helpLine(st, g), m.width))
	}
	return append(out, fit(st.HelpValue.Render(" press ? to close help"), m.width))
}
