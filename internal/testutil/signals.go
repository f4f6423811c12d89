// Package testutil provides deterministic signals and assertion helpers
// shared by spectral-estimation tests.
package testutil

import "math"

// OnBinSine generates a sine whose frequency falls exactly on DFT bin k of
// an m-point transform, so its spectrum concentrates in a single bin pair.
func OnBinSine(k, m int, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * float64(k) / float64(m)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position. Its power
// spectrum is flat, which makes scaling errors easy to spot.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal. All its power sits in bin 0.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
