package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// DefaultYAML returns a copy of the embedded default configuration.
func DefaultYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default decodes the embedded defaults.
func Default() (Config, error) {
	var cfg Config
	if len(embeddedDefaultConfig) == 0 {
		return cfg, fmt.Errorf("embedded default config is empty")
	}
	if err := decodeYAML(embeddedDefaultConfig, &cfg); err != nil {
		return cfg, fmt.Errorf("decode default config: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults with the file at path decoded over them. An
// empty path returns the defaults. Files ending in .toml are read as TOML,
// everything else as YAML. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg)
	} else {
		err = decodeYAML(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	if _, err := c.TickInterval(); err != nil {
		return err
	}
	if c.UI.Animation.Steps < 0 {
		return fmt.Errorf("ui.animation.steps must be non-negative, got %d", c.UI.Animation.Steps)
	}
	if c.UI.Wrap < 0 {
		return fmt.Errorf("ui.wrap must be non-negative, got %d", c.UI.Wrap)
	}
	switch c.Source.Kind {
	case "index", "calendar", "markdown", "file":
	default:
		return fmt.Errorf("source.kind must be one of index, calendar, markdown, file; got %q", c.Source.Kind)
	}
	if c.Source.Count < 0 {
		return fmt.Errorf("source.count must be non-negative, got %d", c.Source.Count)
	}
	if c.Source.Min != nil && c.Source.Max != nil && *c.Source.Min > *c.Source.Max {
		return fmt.Errorf("source.min (%d) is greater than source.max (%d)", *c.Source.Min, *c.Source.Max)
	}
	if c.Source.HeadingLevel < 1 || c.Source.HeadingLevel > 6 {
		return fmt.Errorf("source.heading_level must be between 1 and 6, got %d", c.Source.HeadingLevel)
	}
	return nil
}

// TickInterval parses the animation tick.
func (c Config) TickInterval() (time.Duration, error) {
	if c.UI.Animation.Tick == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.UI.Animation.Tick)
	if err != nil {
		return 0, fmt.Errorf("ui.animation.tick: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("ui.animation.tick must be non-negative, got %s", d)
	}
	return d, nil
}

// Options converts the menu section and validates the result.
func (c Config) Options() (paging.Options, error) {
	m := c.Menu
	var opts paging.Options

	switch m.ItemSize.Kind {
	case "fixed":
		opts.ItemSize = paging.Fixed(m.ItemSize.Width, m.ItemSize.Height)
	case "size_to_fit", "":
		opts.ItemSize = paging.SizeToFitWidth(m.ItemSize.MinWidth, m.ItemSize.Height)
	case "self_sizing":
		opts.ItemSize = paging.SelfSizing(m.ItemSize.EstimatedWidth, m.ItemSize.Height)
	default:
		return opts, fmt.Errorf("menu.item_size.kind must be fixed, size_to_fit or self_sizing; got %q", m.ItemSize.Kind)
	}

	switch m.Alignment {
	case "left", "":
		opts.Alignment = paging.AlignLeft
	case "center":
		opts.Alignment = paging.AlignCenter
	default:
		return opts, fmt.Errorf("menu.alignment must be left or center; got %q", m.Alignment)
	}

	pos, err := ParseScrollPosition(m.ScrollPosition)
	if err != nil {
		return opts, err
	}
	opts.ScrollPosition = pos

	switch m.Transition {
	case "scroll_alongside", "":
		opts.Transition = paging.TransitionScrollAlongside
	case "animate_after":
		opts.Transition = paging.TransitionAnimateAfter
	default:
		return opts, fmt.Errorf("menu.transition must be scroll_alongside or animate_after; got %q", m.Transition)
	}

	opts.ItemSpacing = m.ItemSpacing
	opts.Insets = m.Insets
	opts.Indicator = paging.IndicatorOptions{
		Visible: m.Indicator.Visible,
		Height:  m.Indicator.Height,
		Spacing: paging.Spacing{Left: m.Indicator.Spacing.Left, Right: m.Indicator.Spacing.Right},
		Insets:  m.Indicator.Insets,
	}
	opts.Border = paging.BorderOptions{
		Visible: m.Border.Visible,
		Height:  m.Border.Height,
		Insets:  m.Border.Insets,
	}
	opts.WindowRadius = m.WindowRadius

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// ParseScrollPosition accepts the file spelling and the camel case one.
func ParseScrollPosition(s string) (paging.ScrollPosition, error) {
	switch s {
	case "left", "":
		return paging.ScrollLeft, nil
	case "right":
		return paging.ScrollRight, nil
	case "prefer_centered", "preferCentered":
		return paging.ScrollPreferCentered, nil
	case "center":
		return paging.ScrollCenter, nil
	default:
		return paging.ScrollLeft, fmt.Errorf("menu.scroll_position must be left, right, prefer_centered or center; got %q", s)
	}
}
