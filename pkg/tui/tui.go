// Package tui runs the paging menu in a terminal for host programs.
package tui

import (
	"context"
	"io"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/pagingmenu/internal/ui"
)

const (
	defaultFallbackTermWidth  = 80
	defaultFallbackTermHeight = 24
)

// DetectTerminalSize probes stdout, stderr and stdin, then the COLUMNS and
// LINES variables, and finally falls back to 80x24.
func DetectTerminalSize() (width int, height int) {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()} {
		if w, h, err := term.GetSize(int(fd)); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	width, height = defaultFallbackTermWidth, defaultFallbackTermHeight
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		width = w
	}
	if h, err := strconv.Atoi(os.Getenv("LINES")); err == nil && h > 0 {
		height = h
	}
	return width, height
}

// Run starts the interactive pager. Startup keys are replayed before the
// program takes over.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) error {
	mo, err := cfg.options()
	if err != nil {
		return err
	}
	if len(cfg.StartKeys) == 0 {
		return ui.Run(ctx, mo, opts...)
	}

	if mo.Width <= 0 || mo.Height <= 0 {
		mo.Width, mo.Height = fillSize(mo.Width, mo.Height)
	}
	m, err := ui.New(mo)
	if err != nil {
		return err
	}
	ui.ReplayKeys(m, cfg.StartKeys)
	opts = append(opts, tea.WithContext(ctx))
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}

// RenderSnapshot renders one frame without taking over the terminal. A
// size left at zero is detected.
func RenderSnapshot(cfg Config) (string, error) {
	mo, err := cfg.options()
	if err != nil {
		return "", err
	}
	mo.Width, mo.Height = fillSize(mo.Width, mo.Height)
	return ui.Snapshot(mo, cfg.StartKeys)
}

func fillSize(w, h int) (int, int) {
	if w > 0 && h > 0 {
		return w, h
	}
	dw, dh := DetectTerminalSize()
	if w <= 0 {
		w = dw
	}
	if h <= 0 {
		h = dh
	}
	return w, h
}

// WithIO returns program options for custom input and output.
func WithIO(in io.Reader, out io.Writer) []tea.ProgramOption {
	opts := []tea.ProgramOption{}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	return opts
}
