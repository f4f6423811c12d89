package spectrum

import (
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// PowerInto computes |X[k]|^2 for each complex bin into dst.
//
// Results are accumulated in float64 regardless of the bin precision, so
// single-precision spectra can feed a double-precision running sum. The
// elementwise square uses SIMD-optimized kernels when available (AVX2, SSE2,
// NEON); scratch buffers for the real/imaginary unpacking are pooled, so in
// steady state this allocates nothing.
func PowerInto[C algofft.Complex](dst []float64, in []C) {
	if len(dst) != len(in) {
		panic("spectrum: PowerInto length mismatch")
	}
	if len(in) == 0 {
		return
	}

	re, im, buf := getScratch(len(in))

	for i, c := range in {
		x := complex128(c)
		re[i] = real(x)
		im[i] = imag(x)
	}

	vecmath.Power(dst, re, im)
	putScratch(buf)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power[C algofft.Complex](in []C) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	PowerInto(out, in)
	return out
}

// MagnitudeInto computes |X[k]| for each complex bin into dst.
func MagnitudeInto[C algofft.Complex](dst []float64, in []C) {
	if len(dst) != len(in) {
		panic("spectrum: MagnitudeInto length mismatch")
	}
	if len(in) == 0 {
		return
	}

	re, im, buf := getScratch(len(in))

	for i, c := range in {
		x := complex128(c)
		re[i] = real(x)
		im[i] = imag(x)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude[C algofft.Complex](in []C) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	MagnitudeInto(out, in)
	return out
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// This is the zero-allocation fast path for callers that already have real
// and imaginary parts in separate slices. All three slices must have the
// same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}
