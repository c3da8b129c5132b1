package pd_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/arrowpoly/pd"
	"github.com/katalvlaran/arrowpoly/ring"
)

// BenchmarkNewDiagram measures expansion and reduction of a 12-kink chain
// (4096 states), sequentially and on all CPUs.
func BenchmarkNewDiagram(b *testing.B) {
	crossings := kinkChain(12, pd.Positive)
	r := ring.NewLaurent()
	for _, tc := range []struct {
		name    string
		workers int
	}{
		{"Sequential", 1},
		{"Parallel", runtime.GOMAXPROCS(0)},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := pd.NewDiagram[ring.Poly](r, crossings, pd.WithWorkers(tc.workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkArrowPolynomial measures state-sum assembly only.
func BenchmarkArrowPolynomial(b *testing.B) {
	d := mustDiagram(b, kinkChain(10, pd.Negative))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.ArrowPolynomial()
	}
}
