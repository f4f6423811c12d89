package spectrum

// OneSidedLen returns the number of non-negative-frequency bins for a
// two-sided spectrum of length n: floor(n/2) + 1.
func OneSidedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n/2 + 1
}

// FoldOneSided folds a two-sided power spectrum into its one-sided form.
//
// Bin k of the result is twoSided[k] + twoSided[n-k]: the power of the
// mirrored negative-frequency bin is folded in. DC keeps its value, and so
// does the Nyquist bin when n is even, since neither has a mirror image.
// For the real-input spectra this package deals with, folding is equivalent
// to doubling the interior bins.
//
// The returned slice has length OneSidedLen(len(twoSided)).
func FoldOneSided(twoSided []float64) []float64 {
	n := len(twoSided)
	if n == 0 {
		return nil
	}

	out := make([]float64, OneSidedLen(n))
	out[0] = twoSided[0]

	for k := 1; k < len(out); k++ {
		out[k] = twoSided[k]
		if mirror := n - k; mirror != k {
			out[k] += twoSided[mirror]
		}
	}

	return out
}
