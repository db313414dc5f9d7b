package limiter

import "fmt"

// Config holds the item-limiting parameters.
type Config struct {
	Limit  int // Keep only this many items (0 = unlimited)
	Offset int // Skip the first N items (0 = no skip)
	Tail   int // Keep only the last N items (0 = disabled); mutually exclusive with Limit
}

// Validate checks for conflicting flag combinations and returns an error if invalid.
// Rules:
// - Limit and Tail are mutually exclusive
// - If Tail is set, Offset is ignored
// - All numeric values must be non-negative
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", c.Offset)
	}
	if c.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", c.Tail)
	}
	if c.Limit > 0 && c.Tail > 0 {
		return fmt.Errorf("--limit and --tail are mutually exclusive")
	}
	return nil
}

// IsActive returns true if any limiting is configured.
func (c Config) IsActive() bool {
	return c.Limit > 0 || c.Offset > 0 || c.Tail > 0
}

// Range returns the half-open range [start, end) of a sequence of length n
// that survives the limits.
func (c Config) Range(n int) (int, int) {
	if c.Tail > 0 {
		return max(0, n-c.Tail), n
	}
	start := min(c.Offset, n)
	end := n
	if c.Limit > 0 {
		end = min(start+c.Limit, n)
	}
	return start, end
}

// Bounds maps the limits onto an unbounded index sequence starting at
// first. It reports the inclusive last index when Limit caps the sequence.
// Tail has no meaning without an end and is rejected.
func (c Config) Bounds(first int) (lo, hi int, capped bool, err error) {
	if c.Tail > 0 {
		return 0, 0, false, fmt.Errorf("--tail needs a finite source")
	}
	lo = first + c.Offset
	if c.Limit > 0 {
		return lo, lo + c.Limit - 1, true, nil
	}
	return lo, 0, false, nil
}

// Apply returns the sub-slice of items that survives the limits. The result
// shares the backing array with items.
func Apply[T any](c Config, items []T) []T {
	if !c.IsActive() {
		return items
	}
	start, end := c.Range(len(items))
	return items[start:end]
}
