package window

import (
	"math"
	"testing"

	godsp "github.com/mjibson/go-dsp/window"
)

func TestGenerateHannShape(t *testing.T) {
	w := Generate[float64](TypeHann, 4)
	want := []float64{0, 0.75, 0.75, 0}

	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("hann[%d]=%f want=%f", i, w[i], want[i])
		}
	}
}

func TestGenerateRectangular(t *testing.T) {
	w := Generate[float64](TypeRectangular, 8)
	for i, v := range w {
		if v != 1 {
			t.Fatalf("rectangular[%d]=%f want=1", i, v)
		}
	}
}

func TestGenerateSymmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		w := Generate[float64](typ, 65)
		for i := range w {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-12 {
				t.Fatalf("%s asymmetric at %d: %f != %f", typ, i, w[i], w[j])
			}
		}
	}
}

func TestGenerateRange(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		for _, v := range Generate[float64](typ, 128) {
			if v < -1e-12 || v > 1+1e-12 {
				t.Fatalf("%s coefficient out of [0,1]: %f", typ, v)
			}
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate[float64](TypeHann, 0); w != nil {
		t.Fatalf("expected nil for zero length, got %v", w)
	}
}

// Cross-check coefficient formulas against the go-dsp reference implementation.
func TestGenerateMatchesGoDSP(t *testing.T) {
	cases := []struct {
		typ Type
		ref func(int) []float64
	}{
		{TypeHann, godsp.Hann},
		{TypeHamming, godsp.Hamming},
		{TypeBlackman, godsp.Blackman},
	}

	for _, tc := range cases {
		got := Generate[float64](tc.typ, 257)
		want := tc.ref(257)

		if len(got) != len(want) {
			t.Fatalf("%s length mismatch: %d != %d", tc.typ, len(got), len(want))
		}

		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Fatalf("%s[%d]=%.12f reference=%.12f", tc.typ, i, got[i], want[i])
			}
		}
	}
}

func TestNewSums(t *testing.T) {
	w, err := New[float64](TypeHann, 1024)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range w.Coeffs() {
		sum += c
		sumSq += c * c
	}

	if math.Abs(w.Sum()-sum) > 1e-9 || math.Abs(w.SumSq()-sumSq) > 1e-9 {
		t.Fatalf("cached sums mismatch: %f/%f vs %f/%f", w.Sum(), w.SumSq(), sum, sumSq)
	}
}

func TestNewRejectsZeroLength(t *testing.T) {
	if _, err := New[float64](TypeHann, 0); err == nil {
		t.Fatalf("expected error for zero length")
	}
}

func TestNewRejectsDegenerateWindow(t *testing.T) {
	// Length-2 symmetric Hann is zero at both endpoints.
	if _, err := New[float64](TypeHann, 2); err == nil {
		t.Fatalf("expected error for zero-energy window")
	}
}

func TestENBW(t *testing.T) {
	w, err := New[float64](TypeRectangular, 512)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if math.Abs(w.ENBW()-1) > 1e-12 {
		t.Fatalf("rectangular ENBW=%f want=1", w.ENBW())
	}

	h, err := New[float64](TypeHann, 4096)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Hann ENBW converges to 1.5 bins for long windows.
	if math.Abs(h.ENBW()-1.5) > 1e-2 {
		t.Fatalf("hann ENBW=%f want~1.5", h.ENBW())
	}
}

func TestApply(t *testing.T) {
	w, err := New[float64](TypeHann, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	buf := []float64{1, 1, 1, 1}
	if err := w.Apply(buf, buf); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := []float64{0, 0.75, 0.75, 0}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("applied[%d]=%f want=%f", i, buf[i], want[i])
		}
	}

	if err := w.Apply(buf, buf[:2]); err == nil {
		t.Fatalf("expected error for mismatched length")
	}
}

func TestGenerateFloat32(t *testing.T) {
	w64 := Generate[float64](TypeBlackman, 31)
	w32 := Generate[float32](TypeBlackman, 31)

	for i := range w64 {
		if math.Abs(w64[i]-float64(w32[i])) > 1e-6 {
			t.Fatalf("precision mismatch at %d: %f vs %f", i, w64[i], w32[i])
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Type{
		"hann":        TypeHann,
		"Hanning":     TypeHann,
		"hamming":     TypeHamming,
		"blackman":    TypeBlackman,
		"rect":        TypeRectangular,
		"rectangular": TypeRectangular,
	}

	for name, want := range cases {
		got, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("Parse(%q)=%v want=%v", name, got, want)
		}
	}

	if _, err := Parse("kaiser"); err == nil {
		t.Fatalf("expected error for unsupported window")
	}
}
