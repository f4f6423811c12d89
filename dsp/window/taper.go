package window

import (
	algofft "github.com/MeKo-Christian/algo-fft"
)

// Taper holds generated window coefficients together with the coefficient
// sums needed to normalize averaged periodograms.
type Taper[F algofft.Float] struct {
	typ    Type
	coeffs []F
	sum    float64
	sumSq  float64
}

// New generates a window of the given length and caches its coefficient sums.
//
// The sums are accumulated in float64 regardless of F so that scaling factors
// derived from them do not depend on the signal precision. Windows whose
// coefficients sum to zero (for example a length-2 Hann window, which is zero
// at both endpoints) are rejected: they carry no signal energy and would make
// the periodogram scaling divide by zero.
func New[F algofft.Float](t Type, length int) (*Taper[F], error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	coeffs := Generate[F](t, length)

	sum := 0.0
	sumSq := 0.0

	for _, c := range coeffs {
		v := float64(c)
		sum += v
		sumSq += v * v
	}

	if sum <= 0 || sumSq <= 0 {
		return nil, errDegenerate(t, length)
	}

	return &Taper[F]{typ: t, coeffs: coeffs, sum: sum, sumSq: sumSq}, nil
}

// Type returns the window family.
func (w *Taper[F]) Type() Type { return w.typ }

// Len returns the number of coefficients.
func (w *Taper[F]) Len() int { return len(w.coeffs) }

// Coeffs returns the coefficient slice. Callers must not modify it.
func (w *Taper[F]) Coeffs() []F { return w.coeffs }

// Sum returns the sum of the coefficients.
func (w *Taper[F]) Sum() float64 { return w.sum }

// SumSq returns the sum of the squared coefficients.
func (w *Taper[F]) SumSq() float64 { return w.sumSq }

// ENBW returns the equivalent noise bandwidth of the window in bins.
func (w *Taper[F]) ENBW() float64 {
	return float64(len(w.coeffs)) * w.sumSq / (w.sum * w.sum)
}

// Apply multiplies src elementwise by the window coefficients into dst.
// dst and src may alias; both must have the window's length.
func (w *Taper[F]) Apply(dst, src []F) error {
	if len(dst) != len(w.coeffs) || len(src) != len(w.coeffs) {
		return errMismatchedLength
	}

	for i, c := range w.coeffs {
		dst[i] = src[i] * c
	}

	return nil
}
