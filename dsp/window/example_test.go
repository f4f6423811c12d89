package window_test

import (
	"fmt"

	"github.com/rconan/welch-sde/dsp/window"
)

func ExampleGenerate() {
	w := window.Generate[float64](window.TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleNew() {
	w, _ := window.New[float64](window.TypeRectangular, 8)
	fmt.Printf("%s sum=%.0f sumsq=%.0f enbw=%.1f\n", w.Type(), w.Sum(), w.SumSq(), w.ENBW())
	// Output:
	// rectangular sum=8 sumsq=8 enbw=1.0
}

func ExampleParse() {
	t, _ := window.Parse("Hanning")
	fmt.Println(t)
	// Output:
	// hann
}
