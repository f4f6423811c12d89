package welch

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/rconan/welch-sde/dsp/spectrum"
)

// Periodogram computes the one-sided averaged periodogram.
//
// The returned slice has Bins() elements, all non-negative, and is owned by
// the caller; the estimator keeps no state between calls, so repeated calls
// yield identical results.
func (e *EstimatorT[F, C]) Periodogram() ([]F, error) {
	mean, err := e.meanPeriodogram()
	if err != nil {
		return nil, err
	}

	folded := spectrum.FoldOneSided(mean)

	var u float64
	if e.density {
		u = 1 / (e.fs * e.win.SumSq())
	} else {
		u = 1 / (e.win.Sum() * e.win.Sum())
	}

	vecmath.ScaleBlock(folded, folded, u)

	out := make([]F, len(folded))
	for i, v := range folded {
		out[i] = F(v)
	}

	return out, nil
}

// Frequency returns the frequency axis matching Periodogram bin for bin:
// k*fs/M in Hz for spectral density, k/M normalized for power spectrum.
func (e *EstimatorT[F, C]) Frequency() []F {
	out := make([]F, e.Bins())
	df := e.Resolution()

	for k := range out {
		out[k] = F(float64(k) * df)
	}

	return out
}

// meanPeriodogram accumulates |DFT(w*segment)|^2 across all segments and
// divides by the segment count, producing the two-sided mean periodogram.
//
// Segments are split into contiguous chunks, one per worker. Every worker
// accumulates its chunk into a private float64 sum (high precision even for
// float32 signals), and partial sums are combined in worker order, so the
// result does not depend on goroutine scheduling.
func (e *EstimatorT[F, C]) meanPeriodogram() ([]float64, error) {
	k := e.plan.Count()
	workers := min(e.workers, k)

	partials := make([][]float64, workers)
	errs := make([]error, workers)
	chunk := (k + workers - 1) / workers

	var wg sync.WaitGroup

	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, k)
		if lo >= hi {
			continue
		}

		partials[w] = make([]float64, e.dftSize)

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			errs[w] = e.accumulateRange(lo, hi, partials[w])
		}(w, lo, hi)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	total := make([]float64, e.dftSize)
	for _, partial := range partials {
		if partial != nil {
			vecmath.AddBlockInPlace(total, partial)
		}
	}

	vecmath.ScaleBlock(total, total, 1/float64(k))

	return total, nil
}

// accumulateRange processes segments [lo, hi) into sum. Each call owns its
// FFT plan and scratch buffers, so ranges can run concurrently.
func (e *EstimatorT[F, C]) accumulateRange(lo, hi int, sum []float64) error {
	plan, err := algofft.NewPlanT[C](e.dftSize)
	if err != nil {
		return fmt.Errorf("welch: FFT plan (size=%d): %w", e.dftSize, err)
	}

	l := e.plan.Len()
	win := e.win.Coeffs()

	// in[l:] stays zero across iterations: only [0, l) is ever rewritten.
	in := make([]C, e.dftSize)
	out := make([]C, e.dftSize)
	power := make([]float64, e.dftSize)

	for i := lo; i < hi; i++ {
		off := e.plan.Offset(i)
		seg := e.signal[off : off+l]

		for j, v := range seg {
			in[j] = toComplex[F, C](v * win[j])
		}

		if err := plan.Forward(out, in); err != nil {
			return fmt.Errorf("welch: forward FFT failed: %w", err)
		}

		spectrum.PowerInto(power, out)
		vecmath.AddBlockInPlace(sum, power)
	}

	return nil
}

func toComplex[F algofft.Float, C algofft.Complex](v F) C {
	return C(complex(float64(v), 0))
}
