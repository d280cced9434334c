package rois

import (
	"math"
	"testing"
)

func BenchmarkDetect(b *testing.B) {
	const fs = 44100.0
	sig := make([]float64, int(10*fs))
	begin, end := int(4.75*fs), int(5.25*fs)
	step := 2 * math.Pi * 5000 / fs
	for i := begin; i < end; i++ {
		sig[i] = math.Sin(step * float64(i-begin))
	}

	cfg := Config{
		SampleRate:  fs,
		Band:        Band{Low: 2000, High: 8000},
		EventLength: 0.5,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Detect(sig, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
