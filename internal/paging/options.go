package paging

import "fmt"

// SizeKind selects how menu cells are sized.
type SizeKind int

const (
	// SizeFixed gives every cell the same width.
	SizeFixed SizeKind = iota
	// SizeToFit uses a minimum width and stretches the cells to fill the
	// viewport when they would not cover it.
	SizeToFit
	// SizeSelfSizing asks each cell for its intrinsic width.
	SizeSelfSizing
)

func (k SizeKind) String() string {
	switch k {
	case SizeToFit:
		return "sizeToFit"
	case SizeSelfSizing:
		return "selfSizing"
	default:
		return "fixed"
	}
}

// ItemSize is the menu sizing policy. Width is the fixed width, MinWidth the
// size-to-fit minimum and EstimatedWidth the placeholder used for self-sizing
// cells that have not been measured yet.
type ItemSize struct {
	Kind           SizeKind
	Width          float64
	MinWidth       float64
	EstimatedWidth float64
	Height         float64
}

// Fixed returns a fixed sizing policy.
func Fixed(width, height float64) ItemSize {
	return ItemSize{Kind: SizeFixed, Width: width, Height: height}
}

// SizeToFitWidth returns a size-to-fit policy.
func SizeToFitWidth(minWidth, height float64) ItemSize {
	return ItemSize{Kind: SizeToFit, MinWidth: minWidth, Height: height}
}

// SelfSizing returns a self-sizing policy.
func SelfSizing(estimatedWidth, height float64) ItemSize {
	return ItemSize{Kind: SizeSelfSizing, EstimatedWidth: estimatedWidth, Height: height}
}

// BaseWidth is the width the policy assigns to a cell before any measured or
// delegate provided width is known.
func (s ItemSize) BaseWidth() float64 {
	switch s.Kind {
	case SizeToFit:
		return s.MinWidth
	case SizeSelfSizing:
		return s.EstimatedWidth
	default:
		return s.Width
	}
}

// Alignment controls where the cells go when they do not fill the viewport.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// ScrollPosition controls where the selected cell is placed in the viewport.
type ScrollPosition int

const (
	ScrollLeft ScrollPosition = iota
	ScrollRight
	ScrollPreferCentered
	// ScrollCenter always centers the selection, padding the content on both
	// sides so the first and last cells can reach the middle.
	ScrollCenter
)

func (p ScrollPosition) String() string {
	switch p {
	case ScrollRight:
		return "right"
	case ScrollPreferCentered:
		return "preferCentered"
	case ScrollCenter:
		return "center"
	default:
		return "left"
	}
}

// Transition controls when the menu follows the content.
type Transition int

const (
	// TransitionScrollAlongside scrolls the menu while the content moves.
	TransitionScrollAlongside Transition = iota
	// TransitionAnimateAfter leaves the menu alone until the content settles.
	TransitionAnimateAfter
)

// Spacing is the horizontal gap between a cell edge and the indicator.
type Spacing struct {
	Left  float64
	Right float64
}

// IndicatorOptions configure the selection indicator.
type IndicatorOptions struct {
	Visible bool
	Height  float64
	Spacing Spacing
	Insets  Insets
}

// BorderOptions configure the border under the menu.
type BorderOptions struct {
	Visible bool
	Height  float64
	Insets  Insets
}

// Options configure the menu layout and the controller.
type Options struct {
	ItemSize       ItemSize
	ItemSpacing    float64
	Insets         Insets
	Alignment      Alignment
	ScrollPosition ScrollPosition
	Indicator      IndicatorOptions
	Border         BorderOptions
	Transition     Transition
	// WindowRadius fixes the number of items materialized on each side of
	// the anchor. Zero fills the viewport instead.
	WindowRadius int
}

// DefaultOptions returns options sized for a terminal, where one unit is
// one column.
func DefaultOptions() Options {
	return Options{
		ItemSize:       SizeToFitWidth(12, 1),
		ScrollPosition: ScrollPreferCentered,
		Indicator:      IndicatorOptions{Visible: true, Height: 1},
		Border:         BorderOptions{Visible: true, Height: 1},
	}
}

// MenuHeight is the height of the whole menu strip.
func (o Options) MenuHeight() float64 {
	return o.ItemSize.Height + o.Insets.Top + o.Insets.Bottom
}

// Validate checks for values the layout cannot work with.
func (o Options) Validate() error {
	switch o.ItemSize.Kind {
	case SizeFixed:
		if o.ItemSize.Width <= 0 {
			return fmt.Errorf("menu item width must be positive, got %v", o.ItemSize.Width)
		}
	case SizeToFit:
		if o.ItemSize.MinWidth <= 0 {
			return fmt.Errorf("menu item min width must be positive, got %v", o.ItemSize.MinWidth)
		}
	case SizeSelfSizing:
		if o.ItemSize.EstimatedWidth <= 0 {
			return fmt.Errorf("menu item estimated width must be positive, got %v", o.ItemSize.EstimatedWidth)
		}
	default:
		return fmt.Errorf("unknown menu item size kind %d", o.ItemSize.Kind)
	}
	if o.ItemSize.Height < 0 {
		return fmt.Errorf("menu item height must be non-negative, got %v", o.ItemSize.Height)
	}
	if o.ItemSpacing < 0 {
		return fmt.Errorf("menu item spacing must be non-negative, got %v", o.ItemSpacing)
	}
	if o.WindowRadius < 0 {
		return fmt.Errorf("window radius must be non-negative, got %d", o.WindowRadius)
	}
	if o.Indicator.Height < 0 || o.Border.Height < 0 {
		return fmt.Errorf("indicator and border heights must be non-negative")
	}
	return nil
}
