package welch

import (
	"math"

	"github.com/rconan/welch-sde/dsp/window"
)

const (
	// defaultMinSegments is the segment count the default heuristic aims for.
	defaultMinSegments = 4
	// defaultOverlapFraction is the fraction of each segment shared with its
	// neighbor when no overlap is configured.
	defaultOverlapFraction = 0.5
	// maxDefaultDFTSize caps the DFT size chosen by the heuristic. Explicitly
	// configured segment lengths are not capped.
	maxDefaultDFTSize = 4096
)

// Option configures an estimator at construction.
type Option func(*config)

type config struct {
	segmentLen  int
	hasSegment  bool
	overlap     int
	overlapFrac float64
	hasOverlap  bool
	hasFraction bool
	windowType  window.Type
	hasWindow   bool
	workers     int
}

// WithSegmentLength overrides the heuristic segment length. The length must
// be positive and must not exceed the signal length.
func WithSegmentLength(l int) Option {
	return func(c *config) {
		c.segmentLen = l
		c.hasSegment = true
	}
}

// WithOverlap sets the overlap between adjacent segments as an absolute
// sample count in [0, segment length).
func WithOverlap(samples int) Option {
	return func(c *config) {
		if samples >= 0 {
			c.overlap = samples
			c.hasOverlap = true
			c.hasFraction = false
		}
	}
}

// WithOverlapFraction sets the overlap as a fraction of the segment length
// in [0, 1). The default is 0.5.
func WithOverlapFraction(a float64) Option {
	return func(c *config) {
		c.overlapFrac = a
		c.hasFraction = true
		c.hasOverlap = false
	}
}

// WithWindow selects the tapering window family. The default is Hann for
// spectral density and rectangular for power spectrum.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
		c.hasWindow = true
	}
}

// WithWorkers bounds the number of goroutines used to process segments.
// The default is GOMAXPROCS, additionally capped at the segment count.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{overlapFrac: defaultOverlapFraction}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// defaultSegmentLength derives a segment length from the signal length so
// that at least defaultMinSegments segments of overlap fraction a fit:
// L = trunc(N / (k*(1-a) + a)). When that length would push the DFT beyond
// maxDefaultDFTSize it is clamped to maxDefaultDFTSize and the extra samples
// become additional segments instead.
func defaultSegmentLength(n int, a float64) int {
	k := float64(defaultMinSegments)
	l := int(float64(n) / (k*(1-a) + a))

	if nextPowerOfTwo(l) > maxDefaultDFTSize {
		l = maxDefaultDFTSize
	}

	return l
}

// resolveOverlap turns the configured overlap into an absolute sample count
// for segment length l.
func (c *config) resolveOverlap(l int) (int, error) {
	if c.hasOverlap {
		return c.overlap, nil
	}

	a := c.overlapFrac
	if a < 0 || a >= 1 || math.IsNaN(a) {
		return 0, ErrOverlapFraction
	}

	o := int(math.Round(a * float64(l)))
	if o >= l {
		o = l - 1
	}

	return o, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
