package svg2font

import "runtime"

// UnitsPerEm is the design grid of generated fonts: one em is 1000 units.
const UnitsPerEm = 1000

// Default generator parameters, all in font design units where applicable.
const (
	// DefaultTolerance is the maximum deviation allowed when a cubic
	// segment is replaced by quadratics.
	DefaultTolerance = 1.0

	// DefaultMargin is the gap kept between the icon and the em-square
	// edge on the longer axis.
	DefaultMargin = 0.0

	// DefaultSideBearing is the horizontal space added on each side of a
	// glyph when deriving its advance width.
	DefaultSideBearing = 0

	// DefaultMaxSplitDepth bounds cubic subdivision recursion. 2^8 quads
	// per cubic is far beyond any sane icon already.
	DefaultMaxSplitDepth = 8
)

// Option configures a Generator during creation.
//
// Example:
//
//	// Default settings
//	gen := svg2font.New()
//
//	// Tighter curves, sequential execution
//	gen := svg2font.New(svg2font.WithTolerance(0.25), svg2font.WithWorkers(1))
type Option func(*config)

// config holds resolved generator settings.
type config struct {
	tolerance     float64
	margin        float64
	sideBearing   int
	workers       int
	maxSplitDepth int
	failFast      bool
}

// defaultConfig returns the default generator configuration.
func defaultConfig() config {
	return config{
		tolerance:     DefaultTolerance,
		margin:        DefaultMargin,
		sideBearing:   DefaultSideBearing,
		workers:       runtime.GOMAXPROCS(0),
		maxSplitDepth: DefaultMaxSplitDepth,
	}
}

// WithTolerance sets the maximum deviation, in font design units, allowed
// when approximating a cubic segment with quadratics. Smaller values produce
// more curve points.
func WithTolerance(t float64) Option {
	return func(c *config) {
		if t > 0 {
			c.tolerance = t
		}
	}
}

// WithMargin sets the margin, in font design units, kept between the icon
// and the em-square edge. The icon is scaled to fit the em square minus the
// margin on both sides.
func WithMargin(m float64) Option {
	return func(c *config) {
		if m >= 0 {
			c.margin = m
		}
	}
}

// WithSideBearing sets the fixed horizontal bearing, in font design units,
// added on each side of a glyph. The advance width of a glyph is its scaled
// width plus twice this value, so spacing stays visually uniform across
// icons of different aspect ratios.
func WithSideBearing(sb int) Option {
	return func(c *config) {
		if sb >= 0 {
			c.sideBearing = sb
		}
	}
}

// WithWorkers sets the number of goroutines used for per-icon work.
// Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithMaxSplitDepth bounds the cubic subdivision recursion of the degree
// reducer. On reaching the bound the best approximation found is accepted
// instead of failing the icon.
func WithMaxSplitDepth(d int) Option {
	return func(c *config) {
		if d > 0 {
			c.maxSplitDepth = d
		}
	}
}

// WithFailFast aborts the whole run on the first per-icon geometry fault
// instead of skipping the icon and reporting it. Run-level faults
// (duplicate names, codepoint exhaustion, serialization) always abort
// regardless of this setting.
func WithFailFast() Option {
	return func(c *config) {
		c.failFast = true
	}
}
