package welch

import (
	"fmt"
	"runtime"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/rconan/welch-sde/dsp/segment"
	"github.com/rconan/welch-sde/dsp/window"
)

// EstimatorT is a configured, immutable Welch estimator over a borrowed
// signal. F is the signal precision and C its complex counterpart.
type EstimatorT[F algofft.Float, C algofft.Complex] struct {
	signal  []F
	fs      float64
	density bool
	win     *window.Taper[F]
	plan    *segment.Plan
	dftSize int
	workers int
}

// Estimator is the float64 specialization of EstimatorT.
type Estimator = EstimatorT[float64, complex128]

// Estimator32 is the float32 specialization of EstimatorT.
type Estimator32 = EstimatorT[float32, complex64]

// NewSpectralDensityT creates a generic spectral-density estimator for a
// signal sampled at fs Hz. The periodogram is normalized to
// signal-units^2/Hz and the frequency axis is in Hz.
func NewSpectralDensityT[F algofft.Float, C algofft.Complex](signal []F, fs float64, opts ...Option) (*EstimatorT[F, C], error) {
	if fs <= 0 {
		return nil, ErrSampleRate
	}

	return build[F, C](signal, fs, true, opts)
}

// NewSpectralDensity creates a float64 spectral-density estimator.
func NewSpectralDensity(signal []float64, fs float64, opts ...Option) (*Estimator, error) {
	return NewSpectralDensityT[float64, complex128](signal, fs, opts...)
}

// NewSpectralDensity32 creates a float32 spectral-density estimator.
func NewSpectralDensity32(signal []float32, fs float64, opts ...Option) (*Estimator32, error) {
	return NewSpectralDensityT[float32, complex64](signal, fs, opts...)
}

// NewPowerSpectrumT creates a generic power-spectrum estimator. No sampling
// frequency is required; the periodogram is normalized to signal-units^2 and
// the frequency axis is the normalized range [0, 0.5].
func NewPowerSpectrumT[F algofft.Float, C algofft.Complex](signal []F, opts ...Option) (*EstimatorT[F, C], error) {
	return build[F, C](signal, 1, false, opts)
}

// NewPowerSpectrum creates a float64 power-spectrum estimator.
func NewPowerSpectrum(signal []float64, opts ...Option) (*Estimator, error) {
	return NewPowerSpectrumT[float64, complex128](signal, opts...)
}

// NewPowerSpectrum32 creates a float32 power-spectrum estimator.
func NewPowerSpectrum32(signal []float32, opts ...Option) (*Estimator32, error) {
	return NewPowerSpectrumT[float32, complex64](signal, opts...)
}

// build resolves defaults and validates every invariant eagerly, so that
// Periodogram never has to report a configuration problem.
func build[F algofft.Float, C algofft.Complex](signal []F, fs float64, density bool, opts []Option) (*EstimatorT[F, C], error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	cfg := applyOptions(opts)

	heuristicFrac := defaultOverlapFraction
	if cfg.hasFraction {
		if cfg.overlapFrac < 0 || cfg.overlapFrac >= 1 {
			return nil, ErrOverlapFraction
		}
		heuristicFrac = cfg.overlapFrac
	}

	segmentLen := cfg.segmentLen
	if !cfg.hasSegment {
		segmentLen = defaultSegmentLength(n, heuristicFrac)
		if segmentLen < 1 {
			return nil, ErrShortSignal
		}
	}

	overlap, err := cfg.resolveOverlap(segmentLen)
	if err != nil {
		return nil, err
	}

	plan, err := segment.New(n, segmentLen, overlap)
	if err != nil {
		return nil, configError(err)
	}

	windowType := cfg.windowType
	if !cfg.hasWindow {
		if density {
			windowType = window.TypeHann
		} else {
			windowType = window.TypeRectangular
		}
	}

	win, err := window.New[F](windowType, segmentLen)
	if err != nil {
		return nil, configError(err)
	}

	dftSize := nextPowerOfTwo(segmentLen)

	// Validate the transform size now; workers plan the same size later.
	if _, err := algofft.NewPlanT[C](dftSize); err != nil {
		return nil, configError(err)
	}

	workers := cfg.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > plan.Count() {
		workers = plan.Count()
	}

	return &EstimatorT[F, C]{
		signal:  signal,
		fs:      fs,
		density: density,
		win:     win,
		plan:    plan,
		dftSize: dftSize,
		workers: workers,
	}, nil
}

// SegmentLength returns the resolved segment length L.
func (e *EstimatorT[F, C]) SegmentLength() int { return e.plan.Len() }

// Overlap returns the resolved overlap in samples.
func (e *EstimatorT[F, C]) Overlap() int { return e.plan.Overlap() }

// Segments returns the number of averaged segments K.
func (e *EstimatorT[F, C]) Segments() int { return e.plan.Count() }

// DFTSize returns the zero-padded transform length M.
func (e *EstimatorT[F, C]) DFTSize() int { return e.dftSize }

// Bins returns the one-sided periodogram length, M/2 + 1.
func (e *EstimatorT[F, C]) Bins() int { return e.dftSize/2 + 1 }

// WindowType returns the tapering window family.
func (e *EstimatorT[F, C]) WindowType() window.Type { return e.win.Type() }

// SampleRate returns the sampling frequency for the spectral-density
// variant, or 1 for the power-spectrum variant.
func (e *EstimatorT[F, C]) SampleRate() float64 { return e.fs }

// Resolution returns the frequency bin spacing: fs/M in Hz for spectral
// density, 1/M in normalized frequency for power spectrum.
func (e *EstimatorT[F, C]) Resolution() float64 {
	return e.fs / float64(e.dftSize)
}

// Summary returns a human-readable description of the resolved
// configuration, intended for logging or display by the caller.
func (e *EstimatorT[F, C]) Summary() string {
	var b strings.Builder

	if e.density {
		b.WriteString("Welch spectral density estimator:\n")
	} else {
		b.WriteString("Welch power spectrum estimator:\n")
	}

	fmt.Fprintf(&b, " - segment length : %6d\n", e.SegmentLength())
	fmt.Fprintf(&b, " - overlap        : %6d\n", e.Overlap())
	fmt.Fprintf(&b, " - segments       : %6d\n", e.Segments())
	fmt.Fprintf(&b, " - dft size       : %6d\n", e.DFTSize())
	fmt.Fprintf(&b, " - window         : %6s", e.WindowType())

	if e.density {
		fmt.Fprintf(&b, "\n - resolution     : %.6g Hz", e.Resolution())
	}

	return b.String()
}
