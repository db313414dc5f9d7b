package ui

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Run starts an interactive program for opts. When opts carries a size it
// is used as the initial window size; otherwise the terminal's is.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	if opts.Width > 0 && opts.Height > 0 {
		progOpts = append(progOpts, tea.WithWindowSize(opts.Width, opts.Height))
	}
	progOpts = append(progOpts, tea.WithContext(ctx))

	prog := tea.NewProgram(m, progOpts...)
	_, err = prog.Run()
	return err
}

// Snapshot renders a single frame after replaying keys, without a
// terminal. Transitions started by the keys are run to completion. A
// missing size falls back to 80x24.
func Snapshot(opts Options, keys []string) (string, error) {
	if opts.Width <= 0 {
		opts.Width = fallbackWidth
	}
	if opts.Height <= 0 {
		opts.Height = fallbackHeight
	}
	m, err := New(opts)
	if err != nil {
		return "", err
	}
	ReplayKeys(m, keys)
	return m.render(), nil
}

// ReplayKeys feeds key tokens to m as if typed, settling every transition
// before the next key. Tokens in angle brackets name keys ("<right>").
func ReplayKeys(m *Model, keys []string) {
	for _, raw := range keys {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		for _, msg := range keyMsgs(token) {
			m.Update(msg)
			m.settle()
		}
	}
}

// settle runs the current animation to its end.
func (m *Model) settle() {
	for m.anim != nil {
		m.step(tickMsg{seq: m.anim.seq})
	}
}
