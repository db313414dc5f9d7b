package tui

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/pagingmenu/internal/config"
	"github.com/oakwood-commons/pagingmenu/internal/source"
	"github.com/oakwood-commons/pagingmenu/internal/ui"
)

// Config holds what a host program hands to Run or RenderSnapshot.
type Config struct {
	// File is the loaded configuration; the zero value means the embedded
	// defaults.
	File     *config.Config
	Provider source.Provider
	// Select names the item shown first.
	Select    string
	AppName   string
	Width     int
	Height    int
	NoColor   bool
	StartKeys []string
	Logger    logr.Logger
}

// options resolves c into model options.
func (c Config) options() (ui.Options, error) {
	file := c.File
	if file == nil {
		def, err := config.Default()
		if err != nil {
			return ui.Options{}, err
		}
		file = &def
	}
	cfg := *file
	if c.NoColor {
		cfg.UI.NoColor = true
	}

	opts, err := ui.OptionsFromConfig(cfg, c.Provider)
	if err != nil {
		return ui.Options{}, err
	}
	if name := strings.TrimSpace(c.AppName); name != "" {
		opts.AppName = name
	}
	opts.Select = c.Select
	opts.Width, opts.Height = c.Width, c.Height
	opts.Logger = c.Logger
	return opts, nil
}
