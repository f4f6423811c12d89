// Package welch estimates the power spectral density or power spectrum of a
// stationary, zero-mean, real-valued signal using Welch's averaged, modified
// periodogram method.
//
// The signal is split into overlapping segments, each segment is multiplied
// by a tapering window and zero-padded to a power-of-two DFT size, and the
// squared magnitudes of the per-segment transforms are averaged. Averaging K
// overlapping segments trades frequency resolution (bin spacing fs/M instead
// of fs/N) for a K-fold reduction in estimator variance.
//
// Two estimator variants share the pipeline and differ only in their final
// normalization:
//
//   - spectral density (NewSpectralDensity): bins are divided by
//     fs * sum(w^2), yielding signal-units^2 per Hz against a frequency axis
//     in Hz;
//   - power spectrum (NewPowerSpectrum): bins are divided by (sum(w))^2,
//     yielding signal-units^2 against a normalized frequency axis in
//     [0, 0.5].
//
// Both produce a one-sided spectrum of M/2+1 bins with the power of the
// mirrored negative-frequency bins folded in.
//
// Estimators are generic over the signal precision: EstimatorT pairs a float
// type with its complex counterpart, and the NewSpectralDensity /
// NewPowerSpectrum constructors (plus their ...32 forms) cover the common
// instantiations. All parameters are validated eagerly by the constructors;
// a built estimator is immutable and safe for concurrent use.
package welch
