// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides the
// squared-magnitude extraction and one-sided folding used by periodogram
// estimators.
package spectrum
