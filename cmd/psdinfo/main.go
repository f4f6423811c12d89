// Command psdinfo estimates and summarizes the power spectrum of a
// generated test signal using Welch's method.
//
// Usage:
//
//	psdinfo [flags]
//	psdinfo list-windows
//
// Examples:
//
//	psdinfo -f 1000 -a 1 -s 0.1
//	psdinfo -r 8192 -n 100000 -l 4096 -w blackman
//	psdinfo -power -top 10
package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/integrii/flaggy"

	"github.com/rconan/welch-sde/dsp/signal"
	"github.com/rconan/welch-sde/dsp/window"
	"github.com/rconan/welch-sde/stats/psd"
	"github.com/rconan/welch-sde/welch"
)

const (
	appName = "psdinfo"
	appDesc = "Welch spectral estimation of a sine-in-noise test signal"
)

var version = "unknown"

type config struct {
	sampleRate float64
	samples    int
	seed       int

	toneFreq  float64
	toneAmp   float64
	noiseStd  float64
	noiseOnly bool

	segmentLen  int
	overlap     int
	overlapSet  bool
	windowName  string
	workers     int
	powerSpec   bool
	topBins     int
	showSpectra bool
}

func main() {
	cfg := config{
		sampleRate: 8192,
		samples:    1 << 17,
		seed:       1,
		toneFreq:   1024,
		toneAmp:    1,
		noiseStd:   0.1,
		overlap:    -1,
		windowName: "",
		topBins:    5,
	}

	if doFlags(&cfg) {
		return
	}

	sig := makeSignal(&cfg)

	est, err := buildEstimator(&cfg, sig)
	chk(err, "failed to build estimator")

	p, err := est.Periodogram()
	chk(err, "failed to compute periodogram")

	fmt.Println(est.Summary())
	fmt.Println()

	printStats(p, est.Resolution(), cfg.powerSpec)

	if cfg.topBins > 0 {
		fmt.Println()
		printTopBins(p, est.Resolution(), cfg.topBins, cfg.powerSpec)
	}

	if cfg.showSpectra {
		fmt.Println()
		printSpectrum(p, est.Resolution())
	}
}

func doFlags(cfg *config) bool {
	parser := flaggy.NewParser(appName)
	parser.Description = appDesc
	parser.Version = version

	listWindowsCmd := flaggy.Subcommand{
		Name:        "list-windows",
		ShortName:   "lw",
		Description: "list available window functions",
	}

	parser.AttachSubcommand(&listWindowsCmd, 1)

	parser.Float64(&cfg.sampleRate, "r", "rate", "sampling frequency in Hz")
	parser.Int(&cfg.samples, "n", "samples", "signal length in samples")
	parser.Int(&cfg.seed, "seed", "noise-seed", "random seed for the noise generator")
	parser.Float64(&cfg.toneFreq, "f", "frequency", "tone frequency in Hz")
	parser.Float64(&cfg.toneAmp, "a", "amplitude", "tone amplitude")
	parser.Float64(&cfg.noiseStd, "s", "sigma", "noise standard deviation")
	parser.Bool(&cfg.noiseOnly, "N", "noise-only", "generate noise without the tone")
	parser.Int(&cfg.segmentLen, "l", "segment", "segment length (0 for automatic)")
	parser.Int(&cfg.overlap, "o", "overlap", "overlap in samples (-1 for half a segment)")
	parser.String(&cfg.windowName, "w", "window", "window function (see list-windows)")
	parser.Int(&cfg.workers, "j", "workers", "worker goroutines (0 for automatic)")
	parser.Bool(&cfg.powerSpec, "p", "power", "estimate a power spectrum instead of a density")
	parser.Int(&cfg.topBins, "top", "top-bins", "number of strongest bins to print (0 to skip)")
	parser.Bool(&cfg.showSpectra, "d", "dump", "dump the full spectrum, one bin per line")

	chk(parser.Parse(), "failed to parse arguments")

	cfg.overlapSet = cfg.overlap >= 0

	if listWindowsCmd.Used {
		for _, t := range []window.Type{
			window.TypeRectangular,
			window.TypeHann,
			window.TypeHamming,
			window.TypeBlackman,
		} {
			fmt.Printf("- %s\n", t)
		}
		return true
	}

	return false
}

func makeSignal(cfg *config) []float64 {
	gen := signal.NewGenerator(
		signal.WithSampleRate(cfg.sampleRate),
		signal.WithSeed(int64(cfg.seed)),
	)

	if cfg.noiseOnly {
		sig, err := gen.GaussianNoise(cfg.noiseStd, cfg.samples)
		chk(err, "failed to generate noise")
		return sig
	}

	sig, err := gen.SineInNoise(cfg.toneFreq, cfg.toneAmp, cfg.noiseStd, cfg.samples)
	chk(err, "failed to generate signal")
	return sig
}

func buildEstimator(cfg *config, sig []float64) (*welch.Estimator, error) {
	var opts []welch.Option
	if cfg.segmentLen > 0 {
		opts = append(opts, welch.WithSegmentLength(cfg.segmentLen))
	}
	if cfg.overlapSet {
		opts = append(opts, welch.WithOverlap(cfg.overlap))
	}
	if cfg.windowName != "" {
		t, err := window.Parse(cfg.windowName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, welch.WithWindow(t))
	}
	if cfg.workers > 0 {
		opts = append(opts, welch.WithWorkers(cfg.workers))
	}

	if cfg.powerSpec {
		return welch.NewPowerSpectrum(sig, opts...)
	}
	return welch.NewSpectralDensity(sig, cfg.sampleRate, opts...)
}

func printStats(p []float64, resolution float64, powerSpec bool) {
	s := psd.Calculate(p, resolution)

	unit := "Hz"
	if powerSpec {
		unit = "cycles/sample"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "peak\t%.6g (%.4g dB) at %.6g %s\n", s.Peak, s.Peak_dB, s.PeakFrequency, unit)
	fmt.Fprintf(tw, "noise floor\t%.6g (%.4g dB)\n", s.NoiseFloor, s.NoiseFloor_dB)
	fmt.Fprintf(tw, "total power\t%.6g\n", s.Variance)
	fmt.Fprintf(tw, "centroid\t%.6g %s\n", s.Centroid, unit)
	fmt.Fprintf(tw, "spread\t%.6g %s\n", s.Spread, unit)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printTopBins(p []float64, resolution float64, count int, powerSpec bool) {
	type bin struct {
		index int
		value float64
	}

	// Partial selection is overkill for a few thousand bins.
	bins := make([]bin, len(p))
	for i, v := range p {
		bins[i] = bin{i, v}
	}
	for i := 0; i < count && i < len(bins); i++ {
		best := i
		for j := i + 1; j < len(bins); j++ {
			if bins[j].value > bins[best].value {
				best = j
			}
		}
		bins[i], bins[best] = bins[best], bins[i]
	}

	unit := "Hz"
	if powerSpec {
		unit = "cycles/sample"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFrequency [%s]\tPower\n", unit)
	fmt.Fprintf(tw, "---\t--------------\t-----\n")
	for i := 0; i < count && i < len(bins); i++ {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\n", bins[i].index, float64(bins[i].index)*resolution, bins[i].value)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSpectrum(p []float64, resolution float64) {
	for i, v := range p {
		fmt.Printf("%.6g %.6g\n", float64(i)*resolution, v)
	}
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
