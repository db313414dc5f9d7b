package paging

// Rect is a frame in menu content coordinates. The menu only scrolls
// horizontally so most of the math is on X and Width.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MinX returns the leading edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the trailing edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// Offset returns the rect moved horizontally by dx.
func (r Rect) Offset(dx float64) Rect {
	r.X += dx
	return r
}

// Insets are edge insets.
type Insets struct {
	Top    float64 `yaml:"top" toml:"top"`
	Left   float64 `yaml:"left" toml:"left"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
	Right  float64 `yaml:"right" toml:"right"`
}
