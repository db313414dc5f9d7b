package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

type keyMap struct {
	Next      key.Binding
	Previous  key.Binding
	First     key.Binding
	MenuLeft  key.Binding
	MenuRight key.Binding
	LineUp    key.Binding
	LineDown  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Goto      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Accept    key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
		Previous:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "previous")),
		First:     key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "start")),
		MenuLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "scroll menu left")),
		MenuRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "scroll menu right")),
		LineUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		LineDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "space"), key.WithHelp("pgdn", "page down")),
		Goto:      key.NewBinding(key.WithKeys("/", "g"), key.WithHelp("/", "go to")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept:    key.NewBinding(key.WithKeys("enter")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Goto, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First},
		{k.MenuLeft, k.MenuRight},
		{k.LineUp, k.LineDown, k.PageUp, k.PageDown},
		{k.Goto, k.Reload, k.Help, k.Quit},
	}
}

// helpLine renders bindings as "key desc" pairs.
func helpLine(st Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() || b.Help().Key == "" {
			continue
		}
		parts = append(parts, st.HelpKey.Render(b.Help().Key)+" "+st.HelpValue.Render(b.Help().Desc))
	}
	return strings.Join(parts, st.HelpValue.Render(" • "))
}

// keyNames maps the names accepted by startup key lists to key codes.
var keyNames = map[string]rune{
	"right":  tea.KeyRight,
	"left":   tea.KeyLeft,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEscape,
	"tab":    tea.KeyTab,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"space":  tea.KeySpace,
}

// keyMsgs turns a startup key token into key presses. Named keys are
// written in angle brackets ("<right>"); anything else is typed as text.
func keyMsgs(token string) []tea.KeyPressMsg {
	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") && len(token) > 2 {
		name := strings.ToLower(token[1 : len(token)-1])
		if code, ok := keyNames[name]; ok {
			return []tea.KeyPressMsg{{Code: code}}
		}
	}
	msgs := make([]tea.KeyPressMsg, 0, len(token))
	for _, r := range token {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}
