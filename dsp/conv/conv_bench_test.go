package conv

import (
	"math/rand"
	"testing"
)

func benchSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

func BenchmarkDirect(b *testing.B) {
	signal := benchSignal(4096, 1)
	kernel := benchSignal(49, 2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Direct(signal, kernel)
	}
}

func BenchmarkOverlapAdd(b *testing.B) {
	signal := benchSignal(4096, 1)
	kernel := benchSignal(256, 2)

	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = oa.Process(signal)
	}
}

func BenchmarkConvolveAuto(b *testing.B) {
	signal := benchSignal(4096, 1)
	kernel := benchSignal(110, 2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Convolve(signal, kernel)
	}
}
