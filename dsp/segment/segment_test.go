package segment

import (
	"testing"
)

func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestPlanCount(t *testing.T) {
	cases := []struct {
		n, l, o int
		count   int
		stride  int
	}{
		{10, 4, 2, 4, 2},
		{10, 10, 0, 1, 10},
		{10, 4, 0, 2, 4},
		{10, 4, 3, 7, 1},
		{11, 4, 2, 4, 2}, // trailing sample discarded
		{1, 1, 0, 1, 1},
	}

	for _, tc := range cases {
		p, err := New(tc.n, tc.l, tc.o)
		if err != nil {
			t.Fatalf("New(%d,%d,%d) error: %v", tc.n, tc.l, tc.o, err)
		}

		if p.Count() != tc.count {
			t.Fatalf("New(%d,%d,%d) count=%d want=%d", tc.n, tc.l, tc.o, p.Count(), tc.count)
		}

		if p.Stride() != tc.stride {
			t.Fatalf("New(%d,%d,%d) stride=%d want=%d", tc.n, tc.l, tc.o, p.Stride(), tc.stride)
		}

		last := p.Offset(p.Count()-1) + p.Len()
		if last > tc.n {
			t.Fatalf("New(%d,%d,%d) last segment ends at %d beyond signal", tc.n, tc.l, tc.o, last)
		}
	}
}

func TestAllYieldsExpectedViews(t *testing.T) {
	sig := ramp(10)

	p, err := New(len(sig), 4, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	n := 0
	for i, seg := range All(p, sig) {
		if len(seg) != 4 {
			t.Fatalf("segment %d length=%d want=4", i, len(seg))
		}

		if seg[0] != float64(2*i) {
			t.Fatalf("segment %d starts with %f want=%f", i, seg[0], float64(2*i))
		}

		n++
	}

	if n != p.Count() {
		t.Fatalf("iterated %d segments want=%d", n, p.Count())
	}
}

func TestAllRestartable(t *testing.T) {
	sig := ramp(100)

	p, err := New(len(sig), 16, 8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	first := make([]float64, 0, p.Count())
	for _, seg := range All(p, sig) {
		first = append(first, seg[0])
	}

	second := make([]float64, 0, p.Count())
	for _, seg := range All(p, sig) {
		second = append(second, seg[0])
	}

	if len(first) != len(second) {
		t.Fatalf("restarted iteration yielded %d segments want=%d", len(second), len(first))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("restarted iteration differs at segment %d", i)
		}
	}
}

func TestAllEarlyBreak(t *testing.T) {
	sig := ramp(100)

	p, err := New(len(sig), 10, 5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	seen := 0
	for range All(p, sig) {
		seen++
		if seen == 2 {
			break
		}
	}

	if seen != 2 {
		t.Fatalf("early break iterated %d segments want=2", seen)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(10, 0, 0); err == nil {
		t.Fatalf("expected error for zero segment length")
	}

	if _, err := New(10, 11, 0); err == nil {
		t.Fatalf("expected error for segment longer than signal")
	}

	if _, err := New(10, 4, 4); err == nil {
		t.Fatalf("expected error for overlap >= segment length")
	}

	if _, err := New(10, 4, -1); err == nil {
		t.Fatalf("expected error for negative overlap")
	}
}

func TestMaxOverlap(t *testing.T) {
	// overlap = L-1 walks the signal one sample at a time.
	p, err := New(16, 8, 7)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if p.Count() != 9 {
		t.Fatalf("count=%d want=9", p.Count())
	}

	if p.Offset(8)+p.Len() != 16 {
		t.Fatalf("last segment does not end at signal end")
	}
}
