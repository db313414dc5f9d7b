// Package config holds the pagingmenu configuration: menu layout options,
// terminal UI settings and the default item source. Defaults come from the
// embedded default_config.yaml; a user file in YAML or TOML is decoded on
// top of them.
package config

import "github.com/oakwood-commons/pagingmenu/internal/paging"

// Config is the whole configuration file.
type Config struct {
	App    AppConfig    `yaml:"app" toml:"app"`
	Menu   MenuConfig   `yaml:"menu" toml:"menu"`
	UI     UIConfig     `yaml:"ui" toml:"ui"`
	Source SourceConfig `yaml:"source" toml:"source"`
}

// AppConfig is shown in the help footer and the version command.
type AppConfig struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
}

// MenuConfig mirrors paging.Options in file form.
type MenuConfig struct {
	ItemSize       ItemSizeConfig  `yaml:"item_size" toml:"item_size"`
	ItemSpacing    float64         `yaml:"item_spacing" toml:"item_spacing"`
	Insets         paging.Insets   `yaml:"insets" toml:"insets"`
	Alignment      string          `yaml:"alignment" toml:"alignment"`             // left|center
	ScrollPosition string          `yaml:"scroll_position" toml:"scroll_position"` // left|right|prefer_centered|center
	Indicator      IndicatorConfig `yaml:"indicator" toml:"indicator"`
	Border         BorderConfig    `yaml:"border" toml:"border"`
	Transition     string          `yaml:"transition" toml:"transition"` // scroll_alongside|animate_after
	WindowRadius   int             `yaml:"window_radius" toml:"window_radius"`
}

// ItemSizeConfig selects how menu cells are sized. Only the width field
// matching Kind is used.
type ItemSizeConfig struct {
	Kind           string  `yaml:"kind" toml:"kind"` // fixed|size_to_fit|self_sizing
	Width          float64 `yaml:"width" toml:"width"`
	MinWidth       float64 `yaml:"min_width" toml:"min_width"`
	EstimatedWidth float64 `yaml:"estimated_width" toml:"estimated_width"`
	Height         float64 `yaml:"height" toml:"height"`
}

type IndicatorConfig struct {
	Visible bool          `yaml:"visible" toml:"visible"`
	Height  float64       `yaml:"height" toml:"height"`
	Spacing SpacingConfig `yaml:"spacing" toml:"spacing"`
	Insets  paging.Insets `yaml:"insets" toml:"insets"`
}

type SpacingConfig struct {
	Left  float64 `yaml:"left" toml:"left"`
	Right float64 `yaml:"right" toml:"right"`
}

type BorderConfig struct {
	Visible bool          `yaml:"visible" toml:"visible"`
	Height  float64       `yaml:"height" toml:"height"`
	Insets  paging.Insets `yaml:"insets" toml:"insets"`
}

// UIConfig configures the terminal host.
type UIConfig struct {
	Theme         ThemeConfig     `yaml:"theme" toml:"theme"`
	NoColor       bool            `yaml:"no_color" toml:"no_color"`
	Animation     AnimationConfig `yaml:"animation" toml:"animation"`
	MarkdownStyle string          `yaml:"markdown_style" toml:"markdown_style"` // glamour style name: dark|light|notty|ascii|...
	Wrap          int             `yaml:"wrap" toml:"wrap"`                     // 0 wraps at the terminal width
}

// ThemeConfig holds lipgloss colours as ANSI numbers or hex strings.
type ThemeConfig struct {
	Item       string `yaml:"item" toml:"item"`
	Selected   string `yaml:"selected" toml:"selected"`
	Indicator  string `yaml:"indicator" toml:"indicator"`
	Border     string `yaml:"border" toml:"border"`
	Status     string `yaml:"status" toml:"status"`
	StatusBG   string `yaml:"status_bg" toml:"status_bg"`
	StatusErr  string `yaml:"status_error" toml:"status_error"`
	HelpKey    string `yaml:"help_key" toml:"help_key"`
	HelpValue  string `yaml:"help_value" toml:"help_value"`
	PageBorder string `yaml:"page_border" toml:"page_border"`
}

// AnimationConfig drives the content transition. Steps frames are shown
// Tick apart; zero steps or Enabled false jumps straight to the target.
type AnimationConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Steps   int    `yaml:"steps" toml:"steps"`
	Tick    string `yaml:"tick" toml:"tick"`
}

// SourceConfig selects the default item source.
type SourceConfig struct {
	Kind         string `yaml:"kind" toml:"kind"` // index|calendar|markdown|file
	Count        int    `yaml:"count" toml:"count"`
	Start        int    `yaml:"start" toml:"start"`
	Min          *int   `yaml:"min,omitempty" toml:"min,omitempty"`
	Max          *int   `yaml:"max,omitempty" toml:"max,omitempty"`
	HeadingLevel int    `yaml:"heading_level" toml:"heading_level"`
	ScanLimit    int    `yaml:"scan_limit" toml:"scan_limit"`
}
