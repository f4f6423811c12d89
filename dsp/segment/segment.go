// Package segment splits a signal into equal-length, possibly overlapping
// views without copying sample data.
//
// A Plan is pure index arithmetic: iterating it twice yields the same
// segments, and the trailing part of the signal that does not fill a whole
// segment is discarded rather than zero-padded, so every segment contributes
// the same amount of data to downstream averaging.
package segment

import (
	"iter"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Plan describes how a signal of length N splits into Count overlapping
// segments of length Len, each starting Stride samples after the previous.
type Plan struct {
	signalLen  int
	segmentLen int
	overlap    int
	stride     int
	count      int
}

// New validates the segmentation parameters and returns a Plan.
//
// The plan covers count = floor((n-overlap)/(segmentLen-overlap)) segments;
// segment i starts at i*(segmentLen-overlap).
func New(n, segmentLen, overlap int) (*Plan, error) {
	if err := validate(n, segmentLen, overlap); err != nil {
		return nil, err
	}

	stride := segmentLen - overlap
	count := (n - overlap) / stride

	if count < 1 {
		return nil, errNoSegments(n, segmentLen, overlap)
	}

	return &Plan{
		signalLen:  n,
		segmentLen: segmentLen,
		overlap:    overlap,
		stride:     stride,
		count:      count,
	}, nil
}

// SignalLen returns the signal length the plan was built for.
func (p *Plan) SignalLen() int { return p.signalLen }

// Len returns the segment length.
func (p *Plan) Len() int { return p.segmentLen }

// Overlap returns the number of samples shared by adjacent segments.
func (p *Plan) Overlap() int { return p.overlap }

// Stride returns the hop between segment start offsets.
func (p *Plan) Stride() int { return p.stride }

// Count returns the number of full segments.
func (p *Plan) Count() int { return p.count }

// Offset returns the start index of segment i.
func (p *Plan) Offset(i int) int { return i * p.stride }

// All returns a restartable iterator over (index, segment) pairs. Segments
// are subslices of signal; callers must not mutate them.
func All[F algofft.Float](p *Plan, signal []F) iter.Seq2[int, []F] {
	return func(yield func(int, []F) bool) {
		for i := range p.count {
			off := p.Offset(i)
			if !yield(i, signal[off:off+p.segmentLen]) {
				return
			}
		}
	}
}
