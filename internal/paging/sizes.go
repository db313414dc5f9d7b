package paging

// SizeSource provides per item widths that depend on the selection state.
// When present it takes precedence over the static sizing policy.
type SizeSource interface {
	Width(item Item, selected bool) float64
}

// SizeFunc adapts a plain function to SizeSource.
type SizeFunc func(item Item, selected bool) float64

// Width implements SizeSource.
func (f SizeFunc) Width(item Item, selected bool) float64 { return f(item, selected) }

type widthKey struct {
	id       string
	selected bool
}

// SizeCache memoizes widths from an optional SizeSource and stores widths
// measured for self-sizing cells. It is cleared whenever the data or the
// viewport changes.
type SizeCache struct {
	source    SizeSource
	widths    map[widthKey]float64
	preferred map[string]float64
}

// NewSizeCache creates a cache around source, which may be nil.
func NewSizeCache(source SizeSource) *SizeCache {
	return &SizeCache{
		source:    source,
		widths:    map[widthKey]float64{},
		preferred: map[string]float64{},
	}
}

// HasSource reports whether a size source is configured.
func (c *SizeCache) HasSource() bool {
	return c != nil && c.source != nil
}

// Width returns the source width for item. It must only be called when
// HasSource is true.
func (c *SizeCache) Width(item Item, selected bool) float64 {
	k := widthKey{id: item.ID, selected: selected}
	if w, ok := c.widths[k]; ok {
		return w
	}
	w := c.source.Width(item, selected)
	c.widths[k] = w
	return w
}

// SetPreferred records the measured width of a self-sizing cell.
func (c *SizeCache) SetPreferred(item Item, width float64) {
	c.preferred[item.ID] = width
}

// Preferred returns the measured width of a self-sizing cell.
func (c *SizeCache) Preferred(item Item) (float64, bool) {
	if c == nil {
		return 0, false
	}
	w, ok := c.preferred[item.ID]
	return w, ok
}

// Clear drops every cached width.
func (c *SizeCache) Clear() {
	c.widths = map[widthKey]float64{}
	c.preferred = map[string]float64{}
}
