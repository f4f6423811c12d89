package window

import "testing"

func BenchmarkGenerateHann(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		_ = Generate[float64](TypeHann, 4096)
	}
}

func BenchmarkTaperApply(b *testing.B) {
	w, err := New[float64](TypeBlackman, 4096)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}

	buf := make([]float64, 4096)
	for i := range buf {
		buf[i] = 1
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_ = w.Apply(buf, buf)
	}
}
