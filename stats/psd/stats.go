// Package psd computes summary statistics of one-sided power spectra,
// as produced by the welch package.
package psd

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rconan/welch-sde/dsp/core"
)

// Stats holds statistics computed from a one-sided power spectrum or
// spectral density. Bin i sits at frequency i*resolution.
type Stats struct {
	BinCount int

	DC    float64 // bin 0 power
	DC_dB float64

	Peak          float64 // largest bin
	PeakBin       int
	PeakFrequency float64
	Peak_dB       float64

	Min    float64
	MinBin int

	Total    float64 // sum over all bins
	Mean     float64
	Mean_dB  float64
	Variance float64 // Total scaled by resolution; signal variance for a density

	NoiseFloor    float64 // median bin power
	NoiseFloor_dB float64

	Centroid float64 // power-weighted mean frequency
	Spread   float64 // power-weighted standard deviation around the centroid
}

// Calculate computes statistics from a one-sided power spectrum (linear
// scale, NOT dB). resolution is the frequency spacing between bins: fs/M
// in Hz for a spectral density, 1/M for a normalized power spectrum.
func Calculate(power []float64, resolution float64) Stats {
	n := len(power)
	if n == 0 {
		return Stats{
			DC_dB:         math.Inf(-1),
			Peak_dB:       math.Inf(-1),
			Mean_dB:       math.Inf(-1),
			NoiseFloor_dB: math.Inf(-1),
		}
	}

	var s Stats
	s.BinCount = n
	s.DC = power[0]
	s.DC_dB = core.LinearPowerToDB(s.DC)

	s.Min = power[0]
	s.Peak = power[0]
	for i, v := range power {
		s.Total += v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}
	s.PeakFrequency = float64(s.PeakBin) * resolution
	s.Peak_dB = core.LinearPowerToDB(s.Peak)
	s.Mean = s.Total / float64(n)
	s.Mean_dB = core.LinearPowerToDB(s.Mean)
	s.Variance = s.Total * resolution

	s.NoiseFloor = noiseFloor(power)
	s.NoiseFloor_dB = core.LinearPowerToDB(s.NoiseFloor)

	s.Centroid = centroid(power, resolution, s.Total)
	s.Spread = spread(power, resolution, s.Centroid, s.Total)

	return s
}

// PeakFrequency returns the frequency of the largest bin.
func PeakFrequency(power []float64, resolution float64) float64 {
	peakBin := 0
	for i, v := range power {
		if v > power[peakBin] {
			peakBin = i
		}
	}
	return float64(peakBin) * resolution
}

// NoiseFloor returns the median bin power. The median is robust against a
// small number of strong tonal peaks, so for a tone-in-noise spectrum it
// tracks the broadband floor.
func NoiseFloor(power []float64) float64 {
	return noiseFloor(power)
}

func noiseFloor(power []float64) float64 {
	if len(power) == 0 {
		return 0
	}
	sorted := make([]float64, len(power))
	copy(sorted, power)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Centroid returns the power-weighted mean frequency.
//
//	centroid = sum(f_i * P_i) / sum(P_i)
func Centroid(power []float64, resolution float64) float64 {
	sum := 0.0
	for _, v := range power {
		sum += v
	}
	return centroid(power, resolution, sum)
}

func centroid(power []float64, resolution float64, total float64) float64 {
	if len(power) < 2 || total == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range power {
		weighted += float64(i) * resolution * v
	}
	return weighted / total
}

// spread computes the power-weighted standard deviation of frequency
// around the centroid.
func spread(power []float64, resolution float64, cent float64, total float64) float64 {
	if len(power) < 2 || total == 0 {
		return 0
	}
	weightedSq := 0.0
	for i, v := range power {
		diff := float64(i)*resolution - cent
		weightedSq += diff * diff * v
	}
	return math.Sqrt(weightedSq / total)
}
